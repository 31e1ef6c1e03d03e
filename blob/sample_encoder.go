package blob

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/numsum/encoding"
	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/internal/hash"
	"github.com/arloliu/numsum/internal/options"
	"github.com/arloliu/numsum/section"
)

// SampleEncoder encodes one named sample into the sample blob format.
//
// Note: The SampleEncoder is NOT thread-safe. Each encoder instance should be used by a single goroutine at a time.
//
// Note: The SampleEncoder is NOT reusable. After calling Finish, a new encoder must be created for further encoding.
type SampleEncoder struct {
	*SampleEncoderConfig

	name       string
	valEncoder encoding.ColumnarEncoder[float64]
	finished   bool
}

// NewSampleEncoder creates an encoder for a sample called name.
//
// The name must be non-blank valid UTF-8 of at most section.MaxNameLength bytes;
// its xxHash64 becomes the sample ID.
//
// Parameters:
//   - name: Sample name stored in the blob
//   - opts: Encoding options (endianness, value encoding, compression)
//
// Returns:
//   - *SampleEncoder: New encoder instance
//   - error: errs.ErrInvalidName, errs.ErrInvalidEncoding or errs.ErrInvalidCompression
func NewSampleEncoder(name string, opts ...SampleEncoderOption) (*SampleEncoder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	config := newSampleEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}
	if err := config.setCodec(); err != nil {
		return nil, err
	}

	encoder := &SampleEncoder{
		SampleEncoderConfig: config,
		name:                name,
	}

	switch config.ValueEncoding() {
	case format.TypeGorilla:
		encoder.valEncoder = encoding.NewNumericGorillaEncoder()
	default:
		encoder.valEncoder = encoding.NewNumericRawEncoder(config.engine)
	}

	return encoder, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", errs.ErrInvalidName)
	}
	if len(name) > section.MaxNameLength {
		return fmt.Errorf("%w: name is %d bytes, maximum is %d", errs.ErrInvalidName, len(name), section.MaxNameLength)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: name is not valid UTF-8", errs.ErrInvalidName)
	}

	return nil
}

// Name returns the sample name.
func (e *SampleEncoder) Name() string {
	return e.name
}

// Len returns the number of values added so far.
func (e *SampleEncoder) Len() int {
	if e.finished {
		return 0
	}

	return e.valEncoder.Len()
}

// AddValue appends a single value. Any float64 is accepted, including NaN and ±Inf,
// and is stored bit-exactly.
func (e *SampleEncoder) AddValue(v float64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if e.valEncoder.Len() >= section.MaxValueCount {
		return errs.ErrTooManyValues
	}

	e.valEncoder.Write(v)

	return nil
}

// AddValues appends values in order. Nothing is added when the batch would
// exceed section.MaxValueCount.
func (e *SampleEncoder) AddValues(values []float64) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if uint64(e.valEncoder.Len())+uint64(len(values)) > section.MaxValueCount {
		return errs.ErrTooManyValues
	}

	e.valEncoder.WriteSlice(values)

	return nil
}

// Finish compresses the payload and returns the complete blob.
//
// The returned slice is owned by the caller. The encoder releases its
// buffers and cannot be used afterwards.
func (e *SampleEncoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer e.valEncoder.Finish()

	payload, err := e.codec.Compress(e.valEncoder.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s payload: %w", e.Compression(), err)
	}
	if len(payload) > section.MaxPayloadSize {
		return nil, errs.ErrTooManyValues
	}

	header := *e.header
	header.NameLength = uint16(len(e.name))
	header.Count = uint32(e.valEncoder.Len())
	header.PayloadLength = uint32(len(payload))
	header.SampleID = hash.ID(e.name)

	blob := make([]byte, header.BlobSize())
	copy(blob[section.NameOffset:], e.name)
	copy(blob[section.NameOffset+len(e.name):], payload)

	header.PutBytes(blob)
	header.Checksum = hash.Checksum(blob[:section.ChecksumOffset], blob[section.HeaderSize:])
	e.engine.PutUint64(blob[section.ChecksumOffset:section.HeaderSize], header.Checksum)

	return blob, nil
}

// EncodeSample encodes values as a blob named name in one call.
func EncodeSample(name string, values []float64, opts ...SampleEncoderOption) ([]byte, error) {
	encoder, err := NewSampleEncoder(name, opts...)
	if err != nil {
		return nil, err
	}

	if err := encoder.AddValues(values); err != nil {
		_, _ = encoder.Finish()
		return nil, err
	}

	return encoder.Finish()
}
