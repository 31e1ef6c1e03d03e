package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress/zstd codec by default, or the cgo gozstd binding when
// built with cgo and the gozstd tag. Both produce standard zstd frames, so
// blobs written by one build are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
