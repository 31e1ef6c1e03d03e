// Package compress provides the payload codecs used by sample blobs.
//
// A sample blob first encodes its values (raw IEEE-754 or Gorilla XOR, see
// package encoding) and then optionally compresses the encoded payload:
//
//   - None: payload stored as-is
//   - Zstd: best ratio, github.com/klauspost/compress/zstd (or the cgo
//     github.com/valyala/gozstd binding when built with -tags gozstd)
//   - S2: balanced speed and ratio, github.com/klauspost/compress/s2
//   - LZ4: fastest decompression, github.com/pierrec/lz4/v4
//   - Snappy: github.com/golang/snappy, for consumers without S2 support
//
// Raw payloads of slowly changing series compress well; Gorilla payloads are
// already dense and usually gain little from a second stage.
//
// All codecs are stateless values that pool their internal encoders and are
// safe for concurrent use. Use GetCodec to look one up by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
