package encoding

import "iter"

// ColumnarEncoder appends a column of values to an internal buffer.
type ColumnarEncoder[T comparable] interface {
	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes values in order.
	WriteSlice(values []T)

	// Bytes returns the encoded payload written so far.
	// The slice is valid until the next Write, WriteSlice or Finish call and must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Finish returns the buffer to the pool. The encoder must not be used afterwards;
	// Write, WriteSlice, Bytes and Size panic after Finish.
	Finish()
}

// ColumnarDecoder reads values from a payload produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count decoded values. Malformed or truncated data ends the sequence early.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is outside [0, count) or data is malformed.
	At(data []byte, index int, count int) (T, bool)
}
