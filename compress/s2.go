package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/arloliu/numsum/format"
)

// S2Compressor compresses payloads with S2, a Snappy-compatible format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data using S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2 data.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, unlimited)
}

// DecompressLimit decompresses S2 data after checking the decoded length
// stored in the block preamble against maxSize.
func (c S2Compressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxSize {
		return nil, errTooLarge(format.CompressionS2, n, maxSize)
	}

	return s2.Decode(nil, data)
}
