package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/numsum/format"
)

// lz4MaxDecompressedSize bounds the decompression buffer for corrupted input.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses LZ4 block data of up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, lz4MaxDecompressedSize)
}

// DecompressLimit decompresses LZ4 block data of up to maxSize bytes.
//
// The block format does not store the original size, so the buffer starts at
// 4x the input and doubles on ErrInvalidSourceShortBuffer up to maxSize.
func (c LZ4Compressor) DecompressLimit(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := min(maxSize, lz4MaxDecompressedSize)
	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if bufSize >= limit {
			return nil, errTooLarge(format.CompressionLZ4, bufSize+1, maxSize)
		}
		bufSize = min(bufSize*2, limit)
	}
}
