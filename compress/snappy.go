package compress

import (
	"github.com/golang/snappy"

	"github.com/arloliu/numsum/format"
)

// SnappyCompressor compresses payloads with the Snappy block format.
//
// S2 reads Snappy blocks, but S2 output is not readable by Snappy decoders;
// use this codec when the consumer only speaks Snappy.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy compressor.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress compresses data using Snappy.
func (c SnappyCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return snappy.Encode(nil, data), nil
}

// Decompress decompresses Snappy data.
func (c SnappyCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, unlimited)
}

// DecompressLimit decompresses Snappy data after checking the decoded length
// stored in the block preamble against maxSize.
func (c SnappyCompressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxSize {
		return nil, errTooLarge(format.CompressionSnappy, n, maxSize)
	}

	return snappy.Decode(nil, data)
}
