package stats_test

import (
	"fmt"
	"log"

	"github.com/arloliu/numsum/stats"
)

func ExampleMeanStd() {
	mean, std, err := stats.MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("mean=%.2f std=%.2f\n", mean, std)

	// Output:
	// mean=5.00 std=2.00
}

func ExampleNormalize() {
	scaled, err := stats.Normalize([]float64{1, 2, 3}, stats.MethodMinMax)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(scaled)

	// Output:
	// [0 0.5 1]
}

func ExampleDescribe() {
	s, err := stats.Describe([]float64{1, 2, 3, 4, 5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("min=%g median=%.4g max=%g iqr=%.3f\n", s.Min, s.Median, s.Max, s.IQR())

	// Output:
	// min=1 median=3 max=5 iqr=2.667
}

func ExampleAnalyzer() {
	a, err := stats.NewAnalyzer([]float64{10, 12, 11, 13, 12, 100}, stats.WithName("latency_ms"))
	if err != nil {
		log.Fatal(err)
	}

	outliers, err := a.OutlierValues()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: n=%d outliers=%v\n", a.Name(), a.Len(), outliers)

	// Output:
	// latency_ms: n=6 outliers=[100]
}
