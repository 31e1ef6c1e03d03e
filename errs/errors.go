// Package errs defines the sentinel errors shared by numsum packages.
//
// Input-validation sentinels wrap ErrInvalidInput, so callers can match either
// the broad kind or the specific condition:
//
//	if errors.Is(err, errs.ErrInvalidInput) { ... }
//	if errors.Is(err, errs.ErrZeroVariance) { ... }
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind for rejected inputs.
var ErrInvalidInput = errors.New("invalid input")

// Sample and regression input errors.
var (
	ErrEmptySample       = fmt.Errorf("%w: empty sample", ErrInvalidInput)
	ErrLengthMismatch    = fmt.Errorf("%w: x and y must have the same length", ErrInvalidInput)
	ErrInsufficientData  = fmt.Errorf("%w: insufficient data points", ErrInvalidInput)
	ErrNonFiniteValue    = fmt.Errorf("%w: sample contains NaN or Inf", ErrInvalidInput)
	ErrZeroVariance      = fmt.Errorf("%w: zero variance", ErrInvalidInput)
	ErrZeroRange         = fmt.Errorf("%w: zero range (max equals min)", ErrInvalidInput)
	ErrUnknownMethod     = fmt.Errorf("%w: unknown method", ErrInvalidInput)
	ErrInvalidThreshold  = fmt.Errorf("%w: threshold must be finite and positive", ErrInvalidInput)
	ErrInvalidName       = fmt.Errorf("%w: invalid sample name", ErrInvalidInput)
	ErrOutOfDomain       = fmt.Errorf("%w: data outside model domain", ErrInvalidInput)
	ErrNumericOverflow   = fmt.Errorf("%w: result not representable as float64", ErrInvalidInput)
	ErrSingularSystem    = fmt.Errorf("%w: singular normal equations", ErrInvalidInput)
	ErrNoModel           = fmt.Errorf("%w: no regression model could be fitted", ErrInvalidInput)
	ErrInvalidModelType  = fmt.Errorf("%w: invalid model type", ErrInvalidInput)
	ErrCoefficientsCount = fmt.Errorf("%w: wrong number of coefficients", ErrInvalidInput)
)

// Sample blob encoding errors.
var (
	ErrInvalidEncoding    = fmt.Errorf("%w: unsupported value encoding", ErrInvalidInput)
	ErrInvalidCompression = fmt.Errorf("%w: unsupported compression", ErrInvalidInput)
	ErrTooManyValues      = fmt.Errorf("%w: too many values for a single blob", ErrInvalidInput)
)

// Sample blob decoding errors for malformed data. They do not wrap ErrInvalidInput.
var (
	ErrInvalidHeaderSize      = errors.New("invalid blob header size")
	ErrInvalidMagicNumber     = errors.New("invalid blob magic number")
	ErrUnsupportedVersion     = errors.New("unsupported blob version")
	ErrInvalidHeaderFlags     = errors.New("invalid blob header flags")
	ErrInvalidPayloadLength   = errors.New("invalid blob payload length")
	ErrChecksumMismatch       = errors.New("blob checksum mismatch")
	ErrHashMismatch           = errors.New("sample ID does not match sample name")
	ErrDataPointCountMismatch = errors.New("decoded value count does not match header")
)

// ErrPayloadTooLarge is returned when a payload decompresses past the size its
// header allows. It wraps ErrInvalidPayloadLength.
var ErrPayloadTooLarge = fmt.Errorf("%w: decompressed payload exceeds limit", ErrInvalidPayloadLength)

// ErrEncoderFinished is returned when an encoder is used after Finish.
var ErrEncoderFinished = errors.New("encoder already finished")
