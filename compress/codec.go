package compress

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
)

// Compressor compresses an encoded sample payload.
//
// The returned slice is owned by the caller; the input slice is never modified.
// The NoOp implementation returns its input unchanged.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input or input produced by a different algorithm returns an error.
// Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	// DecompressLimit is Decompress with an upper bound on the output size.
	// It fails with errs.ErrPayloadTooLarge once the output would exceed
	// maxSize bytes, without allocating the oversized output.
	DecompressLimit(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats records the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize, or 0 for an empty payload.
// Values below 1.0 mean the payload shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
// It is negative when compression made the payload larger.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCompressor(),
	format.CompressionZstd:   NewZstdCompressor(),
	format.CompressionS2:     NewS2Compressor(),
	format.CompressionLZ4:    NewLZ4Compressor(),
	format.CompressionSnappy: NewSnappyCompressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// Measure compresses data with the built-in codec for compressionType and
// reports the resulting sizes.
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return compressed, CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

// errTooLarge reports output of at least size bytes against maxSize.
func errTooLarge(algorithm format.CompressionType, size, maxSize int) error {
	return fmt.Errorf("%w: %s output of %d bytes, limit %d", errs.ErrPayloadTooLarge, algorithm, size, maxSize)
}

// unlimited is the maxSize used by Decompress.
const unlimited = math.MaxInt

// readLimited reads r to EOF, failing once more than maxSize bytes arrive.
func readLimited(r io.Reader, algorithm format.CompressionType, maxSize int) ([]byte, error) {
	limit := int64(maxSize)
	if limit < math.MaxInt64 {
		limit++
	}

	out, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", algorithm, err)
	}
	if len(out) > maxSize {
		return nil, errTooLarge(algorithm, len(out), maxSize)
	}

	return out, nil
}
