package blob

import (
	"fmt"

	"github.com/arloliu/numsum/compress"
	"github.com/arloliu/numsum/encoding"
	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/format"
	"github.com/arloliu/numsum/internal/hash"
	"github.com/arloliu/numsum/section"
)

// SampleDecoder decodes a sample blob produced by SampleEncoder.
//
// Note: The SampleDecoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type SampleDecoder struct {
	data   []byte
	header section.SampleHeader
}

// NewSampleDecoder creates a decoder for data.
//
// The header, total length, checksum and sample ID are verified here; the
// payload is decompressed and decoded by Decode.
//
// Parameters:
//   - data: Encoded blob byte slice
//
// Returns:
//   - *SampleDecoder: Decoder ready for Decode
//   - error: Header errors, errs.ErrInvalidPayloadLength, errs.ErrChecksumMismatch
//     or errs.ErrHashMismatch
func NewSampleDecoder(data []byte) (*SampleDecoder, error) {
	header, err := section.ParseSampleHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) != header.BlobSize() {
		return nil, fmt.Errorf("%w: header describes %d bytes, got %d",
			errs.ErrInvalidPayloadLength, header.BlobSize(), len(data))
	}

	sum := hash.Checksum(data[:section.ChecksumOffset], data[section.HeaderSize:])
	if sum != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	nameEnd := section.NameOffset + int(header.NameLength)
	if hash.ID(string(data[section.NameOffset:nameEnd])) != header.SampleID {
		return nil, errs.ErrHashMismatch
	}

	return &SampleDecoder{data: data, header: header}, nil
}

// Header returns the parsed blob header.
func (d *SampleDecoder) Header() section.SampleHeader {
	return d.header
}

// Decode decompresses and decodes the payload into a SampleBlob.
//
// The returned blob does not reference the decoder's input.
func (d *SampleDecoder) Decode() (SampleBlob, error) {
	flag := d.header.Flag
	nameEnd := section.NameOffset + int(d.header.NameLength)

	codec, err := compress.GetCodec(flag.Compression())
	if err != nil {
		return SampleBlob{}, err
	}

	count := int(d.header.Count)
	limit := maxPayloadSize(flag.ValueEncoding(), count)

	payload, err := codec.DecompressLimit(d.data[nameEnd:], limit)
	if err != nil {
		return SampleBlob{}, fmt.Errorf("failed to decompress %s payload: %w", flag.Compression(), err)
	}

	if err := checkPayloadSize(flag.ValueEncoding(), len(payload), count); err != nil {
		return SampleBlob{}, err
	}

	var dec encoding.ColumnarDecoder[float64]
	switch flag.ValueEncoding() {
	case format.TypeGorilla:
		dec = encoding.NewNumericGorillaDecoder()
	default:
		dec = encoding.NewNumericRawDecoder(flag.GetEndianEngine())
	}

	values := make([]float64, 0, count)
	for v := range dec.All(payload, count) {
		values = append(values, v)
	}
	if len(values) != count {
		return SampleBlob{}, fmt.Errorf("%w: header has %d, decoded %d",
			errs.ErrDataPointCountMismatch, count, len(values))
	}

	return SampleBlob{
		name:   string(d.data[section.NameOffset:nameEnd]),
		id:     d.header.SampleID,
		flag:   flag,
		values: values,
	}, nil
}

// gorillaMaxValueBits is the widest gorilla value after the first: '11' control,
// 5 leading-zero bits, 6 length bits and 64 meaningful bits.
const gorillaMaxValueBits = 2 + 5 + 6 + 64

// maxPayloadSize returns the largest decoded payload count values can occupy.
func maxPayloadSize(enc format.EncodingType, count int) int {
	if count == 0 {
		return 0
	}
	if enc == format.TypeGorilla {
		return (64 + gorillaMaxValueBits*(count-1) + 7) / 8
	}

	return count * 8
}

// checkPayloadSize rejects payloads that cannot hold count values before anything is allocated.
func checkPayloadSize(enc format.EncodingType, size int, count int) error {
	switch enc {
	case format.TypeGorilla:
		// first value takes 64 bits, every later value at least one
		if count > 0 && uint64(size)*8 < 64+uint64(count)-1 {
			return fmt.Errorf("%w: %d bytes cannot hold %d gorilla values",
				errs.ErrInvalidPayloadLength, size, count)
		}
	default:
		if uint64(size) != uint64(count)*8 {
			return fmt.Errorf("%w: raw payload is %d bytes, expected %d",
				errs.ErrInvalidPayloadLength, size, uint64(count)*8)
		}
	}

	return nil
}

// DecodeSample verifies and decodes a sample blob in one call.
func DecodeSample(data []byte) (SampleBlob, error) {
	decoder, err := NewSampleDecoder(data)
	if err != nil {
		return SampleBlob{}, err
	}

	return decoder.Decode()
}
