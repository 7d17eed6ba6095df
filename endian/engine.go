// Package endian provides the little-endian byte I/O primitives NEPAK uses
// to read and write the fixed-width integers in its header, index, and
// footer regions.
//
// # Basic usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from the standard
// library into one interface, so callers can both decode fixed buffers and
// append to a growing one without juggling two types.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. NEPAK v1 is
// defined entirely in little-endian; every integer field in the format
// uses this engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. NEPAK v1 never
// constructs this; it exists so a future format revision could swap byte
// order without changing any call site that takes an EndianEngine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
