package blob

import (
	"fmt"

	"github.com/arloliu/numsum/compress"
	"github.com/arloliu/numsum/endian"
	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/internal/options"
	"github.com/arloliu/numsum/section"
)

// SampleEncoderConfig holds the header under construction and the codecs
// selected by the encoder options.
type SampleEncoderConfig struct {
	header *section.SampleHeader
	engine endian.EndianEngine
	codec  compress.Codec
}

// newSampleEncoderConfig returns the default config: little-endian, raw values, no compression.
func newSampleEncoderConfig() *SampleEncoderConfig {
	header := section.NewSampleHeader()

	return &SampleEncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}
}

// setValueEncoding sets the value encoding type.
func (c *SampleEncoderConfig) setValueEncoding(enc format.EncodingType) error {
	if !enc.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, uint8(enc))
	}
	c.header.Flag.SetValueEncoding(enc)

	return nil
}

// setCompression sets the payload compression type.
func (c *SampleEncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(comp))
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

// setEndianess sets the endianness option.
func (c *SampleEncoderConfig) setEndianess(endiness endianness) {
	switch endiness {
	case bigEndianOpt:
		c.header.Flag.WithBigEndian()
	default:
		c.header.Flag.WithLittleEndian()
	}

	// Update the engine after changing endianness
	c.engine = c.header.Flag.GetEndianEngine()
}

// setCodec resolves the compression codec from the header flag.
func (c *SampleEncoderConfig) setCodec() error {
	codec, err := compress.GetCodec(c.header.Flag.Compression())
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// ValueEncoding returns the configured value encoding.
func (c *SampleEncoderConfig) ValueEncoding() format.EncodingType {
	return c.header.Flag.ValueEncoding()
}

// Compression returns the configured payload compression.
func (c *SampleEncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.Compression()
}

// IsBigEndian reports whether the blob is written big-endian.
func (c *SampleEncoderConfig) IsBigEndian() bool {
	return endian.IsBigEndian(c.engine)
}

type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// SampleEncoderOption represents a functional option for configuring the SampleEncoderConfig.
type SampleEncoderOption = options.Option[*SampleEncoderConfig]

// WithLittleEndian writes multi-byte fields and raw values little-endian. This is the default.
func WithLittleEndian() SampleEncoderOption {
	return options.NoError(func(c *SampleEncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian writes multi-byte fields and raw values big-endian.
func WithBigEndian() SampleEncoderOption {
	return options.NoError(func(c *SampleEncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithNativeEndian writes the blob in the host byte order.
func WithNativeEndian() SampleEncoderOption {
	return options.NoError(func(c *SampleEncoderConfig) {
		if endian.IsLittleEndian(endian.GetNativeEngine()) {
			c.setEndianess(littleEndianOpt)
		} else {
			c.setEndianess(bigEndianOpt)
		}
	})
}

// WithValueEncoding selects the value encoding. Defaults to format.TypeRaw.
func WithValueEncoding(enc format.EncodingType) SampleEncoderOption {
	return options.New(func(c *SampleEncoderConfig) error {
		return c.setValueEncoding(enc)
	})
}

// WithCompression selects the payload compression. Defaults to format.CompressionNone.
func WithCompression(comp format.CompressionType) SampleEncoderOption {
	return options.New(func(c *SampleEncoderConfig) error {
		return c.setCompression(comp)
	})
}
