package section

import (
	"github.com/arloliu/numsum/errs"
)

// SampleHeader represents the fixed-size header at the start of a sample blob.
//
// Multi-byte fields after the flag use the byte order selected by the flag.
type SampleHeader struct {
	// Flag is a packed field for options, magic number, encoding and compression.
	Flag SampleFlag // byte offset 0-3
	// NameLength is the length in bytes of the sample name that follows the header.
	NameLength uint16 // byte offset 4-5
	// Reserved must be zero.
	Reserved uint16 // byte offset 6-7
	// Count is the number of values in the sample.
	Count uint32 // byte offset 8-11
	// PayloadLength is the length of the encoded, possibly compressed, value payload.
	PayloadLength uint32 // byte offset 12-15
	// SampleID is the xxHash64 of the sample name.
	SampleID uint64 // byte offset 16-23
	// Checksum is the xxHash64 of header bytes 0-23, the name and the payload.
	Checksum uint64 // byte offset 24-31
}

// NewSampleHeader creates a SampleHeader with the default flag.
// Lengths, count, ID and checksum are set by the encoder.
func NewSampleHeader() *SampleHeader {
	return &SampleHeader{Flag: NewSampleFlag()}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, flag validation errors,
//     or ErrInvalidHeaderFlags when the reserved field is non-zero
func (h *SampleHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian so the byte order can be read before anything else
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.NameLength = engine.Uint16(data[4:6])
	h.Reserved = engine.Uint16(data[6:8])
	h.Count = engine.Uint32(data[8:12])
	h.PayloadLength = engine.Uint32(data[12:16])
	h.SampleID = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint64(data[24:32])

	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the SampleHeader into a new 32-byte slice.
func (h *SampleHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.PutBytes(b)

	return b
}

// PutBytes serializes the header into b, which must hold at least HeaderSize bytes.
func (h *SampleHeader) PutBytes(b []byte) {
	_ = b[HeaderSize-1]

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType
	engine.PutUint16(b[4:6], h.NameLength)
	engine.PutUint16(b[6:8], h.Reserved)
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadLength)
	engine.PutUint64(b[16:24], h.SampleID)
	engine.PutUint64(b[24:32], h.Checksum)
}

// BlobSize returns the total blob size described by the header.
func (h *SampleHeader) BlobSize() int {
	return HeaderSize + int(h.NameLength) + int(h.PayloadLength)
}

// ParseSampleHeader parses a SampleHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - SampleHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseSampleHeader(data []byte) (SampleHeader, error) {
	if len(data) < HeaderSize {
		return SampleHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SampleHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return SampleHeader{}, err
	}

	return h, nil
}
