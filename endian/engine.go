// Package endian provides the byte order engines used by the sample blob format.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so
// encoders can append fixed-width fields without temporary buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// All engines are stateless and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsLittleEndian reports whether engine writes little-endian data.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// IsBigEndian reports whether engine writes big-endian data.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
