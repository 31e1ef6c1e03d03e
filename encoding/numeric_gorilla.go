package encoding

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/numsum/internal/pool"
)

const (
	gorillaLeadingBits = 5  // width of the leading-zero count field
	gorillaLengthBits  = 6  // width of the meaningful-bit length field
	gorillaMaxLeading  = 31 // largest leading-zero count the 5-bit field holds
)

// NumericGorillaEncoder implements the Gorilla XOR compression for float64 values.
//
// The first value is stored as 64 raw bits. Each following value is XORed with
// its predecessor:
//   - XOR == 0: a single '0' bit
//   - meaningful bits fit inside the previous block: '10' + the block bits
//   - otherwise: '11' + 5 bits leading zeros + 6 bits length + meaningful bits
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf.
type NumericGorillaEncoder struct {
	w            bitWriter
	prevValue    uint64
	prevLeading  int
	prevTrailing int
	count        int
	hasBlock     bool
}

var _ ColumnarEncoder[float64] = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a new Gorilla encoder.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{
		w: bitWriter{buf: pool.GetBlobBuffer()},
	}
}

// Write encodes a single value.
func (e *NumericGorillaEncoder) Write(val float64) {
	if e.w.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	valBits := math.Float64bits(val)
	if e.count == 0 {
		e.w.writeBits(valBits, 64)
	} else {
		e.writeXOR(valBits ^ e.prevValue)
	}
	e.prevValue = valBits
	e.count++
}

// WriteSlice encodes values in order.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	if e.w.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	e.w.buf.Grow(len(values) * 2)
	for _, v := range values {
		e.Write(v)
	}
}

func (e *NumericGorillaEncoder) writeXOR(xor uint64) {
	if xor == 0 {
		e.w.writeBits(0, 1)
		return
	}

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)
	if leading > gorillaMaxLeading {
		leading = gorillaMaxLeading
	}

	if e.hasBlock && leading >= e.prevLeading && trailing >= e.prevTrailing {
		// '10': reuse the previous block window
		e.w.writeBits(0b10, 2)
		blockSize := 64 - e.prevLeading - e.prevTrailing
		e.w.writeBits(xor>>uint(e.prevTrailing), blockSize)

		return
	}

	// '11': new block window; a length of 64 is stored as 0
	blockSize := 64 - leading - trailing
	e.w.writeBits(0b11, 2)
	e.w.writeBits(uint64(leading), gorillaLeadingBits)
	e.w.writeBits(uint64(blockSize&0x3f), gorillaLengthBits)
	e.w.writeBits(xor>>uint(trailing), blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.hasBlock = true
}

// Bytes returns the payload including the final partial byte.
//
// The pending bits are exposed without being committed, so writing may continue
// after Bytes is called.
func (e *NumericGorillaEncoder) Bytes() []byte {
	if e.w.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.w.view()
}

// Len returns the number of encoded values.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes including the final partial byte.
func (e *NumericGorillaEncoder) Size() int {
	if e.w.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return len(e.w.view())
}

// Finish returns the buffer to the pool and resets the encoder state.
func (e *NumericGorillaEncoder) Finish() {
	if e.w.buf != nil {
		pool.PutBlobBuffer(e.w.buf)
	}
	*e = NumericGorillaEncoder{}
}

// NumericGorillaDecoder decodes payloads written by NumericGorillaEncoder.
type NumericGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a new Gorilla decoder.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// All yields up to count values, stopping early on truncated or malformed data.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		r := bitReader{data: data}
		var st gorillaState
		for i := range count {
			val, ok := st.next(&r, i == 0)
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// At returns the value at index by decoding the payload from the start.
func (d NumericGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	r := bitReader{data: data}
	var st gorillaState
	var val float64
	for i := 0; i <= index; i++ {
		v, ok := st.next(&r, i == 0)
		if !ok {
			return 0, false
		}
		val = v
	}

	return val, true
}

type gorillaState struct {
	prev      uint64
	leading   int
	blockSize int
	hasBlock  bool
}

func (s *gorillaState) next(r *bitReader, first bool) (float64, bool) {
	if first {
		v, ok := r.readBits(64)
		if !ok {
			return 0, false
		}
		s.prev = v

		return math.Float64frombits(v), true
	}

	changed, ok := r.readBits(1)
	if !ok {
		return 0, false
	}
	if changed == 0 {
		return math.Float64frombits(s.prev), true
	}

	ctrl, ok := r.readBits(1)
	if !ok {
		return 0, false
	}
	if ctrl == 1 {
		leading, ok1 := r.readBits(gorillaLeadingBits)
		size, ok2 := r.readBits(gorillaLengthBits)
		if !ok1 || !ok2 {
			return 0, false
		}
		if size == 0 {
			size = 64
		}
		if int(leading)+int(size) > 64 {
			return 0, false
		}
		s.leading = int(leading)
		s.blockSize = int(size)
		s.hasBlock = true
	} else if !s.hasBlock {
		return 0, false
	}

	block, ok := r.readBits(s.blockSize)
	if !ok {
		return 0, false
	}
	trailing := 64 - s.leading - s.blockSize
	s.prev ^= block << uint(trailing)

	return math.Float64frombits(s.prev), true
}

// bitWriter appends bits MSB-first into a pooled byte buffer.
type bitWriter struct {
	buf *pool.ByteBuffer
	acc uint64 // pending bits, left-aligned
	n   int    // number of pending bits, always < 8 between calls
}

// writeBits writes the low nbits bits of v, most significant first.
func (w *bitWriter) writeBits(v uint64, nbits int) {
	for nbits > 0 {
		free := 64 - w.n
		take := min(nbits, free)
		chunk := (v >> uint(nbits-take)) & lowMask(take)
		w.acc |= chunk << uint(free-take)
		w.n += take
		nbits -= take

		for w.n >= 8 {
			_ = w.buf.WriteByte(byte(w.acc >> 56))
			w.acc <<= 8
			w.n -= 8
		}
	}
}

// view returns the committed bytes followed by the pending partial byte, if any.
func (w *bitWriter) view() []byte {
	if w.n == 0 {
		return w.buf.Bytes()
	}

	committed := w.buf.Len()
	w.buf.Grow(1)
	out := w.buf.B[:committed+1]
	out[committed] = byte(w.acc >> 56)

	return out
}

func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// bitReader reads bits MSB-first from a byte slice.
type bitReader struct {
	data []byte
	pos  int // bit position
}

func (r *bitReader) readBits(n int) (uint64, bool) {
	if n == 0 {
		return 0, true
	}
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		bitOff := r.pos & 7
		take := min(8-bitOff, n)
		b := r.data[r.pos>>3] << uint(bitOff)
		v = v<<uint(take) | uint64(b>>uint(8-take))
		r.pos += take
		n -= take
	}

	return v, true
}
