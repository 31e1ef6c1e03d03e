// Package format defines the enumerations stored in sample blob headers.
package format

import "strings"

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores IEEE-754 values as-is.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores XOR-compressed values.

	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionSnappy CompressionType = 0x5 // CompressionSnappy represents Snappy compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known encoding.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionSnappy:
		return "Snappy"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionSnappy
}

// ParseEncodingType maps a case-insensitive name to an EncodingType.
func ParseEncodingType(name string) (EncodingType, bool) {
	switch strings.ToLower(name) {
	case "raw":
		return TypeRaw, true
	case "gorilla":
		return TypeGorilla, true
	default:
		return 0, false
	}
}

// ParseCompressionType maps a case-insensitive name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	case "snappy":
		return CompressionSnappy, true
	default:
		return 0, false
	}
}
