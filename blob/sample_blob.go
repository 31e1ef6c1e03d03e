package blob

import (
	"iter"

	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/section"
)

// SampleBlob is a decoded sample: a name, its ID and the values in order.
//
// A SampleBlob is immutable and safe for concurrent reads.
type SampleBlob struct {
	name   string
	id     uint64
	flag   section.SampleFlag
	values []float64
}

// Name returns the sample name.
func (b SampleBlob) Name() string {
	return b.name
}

// ID returns the sample ID, the xxHash64 of the name.
func (b SampleBlob) ID() uint64 {
	return b.id
}

// Len returns the number of values.
func (b SampleBlob) Len() int {
	return len(b.values)
}

// Values returns a copy of the decoded values.
func (b SampleBlob) Values() []float64 {
	out := make([]float64, len(b.values))
	copy(out, b.values)

	return out
}

// All returns an iterator over index and value pairs.
func (b SampleBlob) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range b.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// At returns the value at index.
//
// Returns:
//   - float64: Value at index
//   - bool: false if index is out of range
func (b SampleBlob) At(index int) (float64, bool) {
	if index < 0 || index >= len(b.values) {
		return 0, false
	}

	return b.values[index], true
}

// ValueEncoding returns the value encoding the blob was written with.
func (b SampleBlob) ValueEncoding() format.EncodingType {
	return b.flag.ValueEncoding()
}

// Compression returns the payload compression the blob was written with.
func (b SampleBlob) Compression() format.CompressionType {
	return b.flag.Compression()
}

// IsBigEndian reports whether the blob was written big-endian.
func (b SampleBlob) IsBigEndian() bool {
	return b.flag.IsBigEndian()
}
