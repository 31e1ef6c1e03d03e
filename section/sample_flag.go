package section

import (
	"github.com/arloliu/numsum/endian"
	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
)

// SampleFlag represents the packed flag field at the start of a sample header.
type SampleFlag struct {
	// Options is a packed field for various options, always stored little-endian.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number:
	//   - 0x5A10 (0b0101_1010_0001_0000): sample blob format v1
	Options uint16

	// EncodingType is the value encoding of the payload.
	EncodingType uint8
	// CompressionType is the compression applied to the encoded payload.
	CompressionType uint8
}

// NewSampleFlag creates a SampleFlag with default settings:
// little-endian, raw values, no compression.
func NewSampleFlag() SampleFlag {
	return SampleFlag{
		Options:         MagicSampleV1Opt,
		EncodingType:    uint8(format.TypeRaw),
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f SampleFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f SampleFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *SampleFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *SampleFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f SampleFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f SampleFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Version returns the format version encoded in the magic number.
func (f SampleFlag) Version() int {
	return int((f.Options & VersionMask) >> 4)
}

// ValueEncoding returns the value encoding type.
func (f SampleFlag) ValueEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetValueEncoding sets the value encoding type.
func (f *SampleFlag) SetValueEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the payload compression type.
func (f SampleFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *SampleFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks the flag in order: format family, version, reserved bits,
// value encoding and compression.
func (f SampleFlag) Validate() error {
	if f.Options&MagicFamilyMask != MagicSampleFamily {
		return errs.ErrInvalidMagicNumber
	}
	if f.Version() != SampleVersion {
		return errs.ErrUnsupportedVersion
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.ValueEncoding().Valid() || !f.Compression().Valid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
