package compress

import (
	"fmt"
	"testing"
)

func BenchmarkCodecs(b *testing.B) {
	sizes := []int{128, 1024, 16384} // values per payload

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}

		for _, n := range sizes {
			payload := rawSamplePayload(n)
			compressed, err := codec.Compress(payload)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/Compress/%d", ct, n), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(payload)
				}
			})

			b.Run(fmt.Sprintf("%s/Decompress/%d", ct, n), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(compressed)
				}
			})
		}
	}
}
