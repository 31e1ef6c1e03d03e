package compress

import "github.com/arloliu/numsum/format"

// NoOpCompressor stores payloads uncompressed.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data itself, or an error when it is longer than maxSize.
func (c NoOpCompressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) > maxSize {
		return nil, errTooLarge(format.CompressionNone, len(data), maxSize)
	}

	return data, nil
}
