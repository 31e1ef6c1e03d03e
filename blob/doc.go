// Package blob encodes named float64 samples into a compact, self-verifying
// binary container and decodes them back.
//
// A sample blob is laid out as
//
//	header (32 bytes) | name (NameLength bytes) | payload (PayloadLength bytes)
//
// See package section for the header layout. The payload holds the values
// encoded as raw IEEE-754 words or Gorilla XOR bits, optionally compressed
// with zstd, S2 or LZ4.
//
// Encoding:
//
//	enc, err := blob.NewSampleEncoder("latency_ms",
//		blob.WithValueEncoding(format.TypeGorilla),
//		blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//		return err
//	}
//	_ = enc.AddValues(values)
//	data, err := enc.Finish()
//
// Decoding verifies the checksum, the sample ID and the value count:
//
//	sample, err := blob.DecodeSample(data)
//	for i, v := range sample.All() {
//		...
//	}
//
// Values round-trip bit-exactly, NaN payloads included.
package blob
