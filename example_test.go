package numsum_test

import (
	"fmt"
	"log"

	"github.com/arloliu/numsum"
	"github.com/arloliu/numsum/blob"
	"github.com/arloliu/numsum/format"
)

func ExampleLinearRegression() {
	fit, err := numsum.LinearRegression([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("slope=%.2f intercept=%.2f r2=%.2f\n", fit.Slope, fit.Intercept, fit.RSquared)

	// Output:
	// slope=0.60 intercept=2.20 r2=0.60
}

func ExampleAnalyzeBlob() {
	data, err := numsum.EncodeSample("latency_ms", []float64{12, 15, 11, 14, 13, 95},
		blob.WithValueEncoding(format.TypeGorilla),
		blob.WithCompression(format.CompressionS2),
	)
	if err != nil {
		log.Fatal(err)
	}

	analyzer, err := numsum.AnalyzeBlob(data)
	if err != nil {
		log.Fatal(err)
	}

	outliers, err := analyzer.OutlierValues()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(analyzer.Name(), analyzer.Len(), outliers)

	// Output:
	// latency_ms 6 [95]
}
