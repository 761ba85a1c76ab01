package store

import (
	"encoding/binary"
	"math"
)

// ───────────────────────────────────────────────────────────────────────────
// Little-endian scalar codec
// ───────────────────────────────────────────────────────────────────────────
//
// All multi-byte fields in the file format are little-endian. Strings are a
// fixed 255 bytes: the logical value is UTF-8 bytes right-padded with 0x00,
// decoded as the prefix up to (exclusive) the first 0x00 byte.

const stringFieldSize = 255

func putU8(buf []byte, v uint8) { buf[0] = v }
func getU8(buf []byte) uint8    { return buf[0] }

func putU16(buf []byte, v uint16) { binary.LittleEndian.PutUint16(buf, v) }
func getU16(buf []byte) uint16    { return binary.LittleEndian.Uint16(buf) }

func putU32(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) }
func getU32(buf []byte) uint32    { return binary.LittleEndian.Uint32(buf) }

func putI32(buf []byte, v int32) { binary.LittleEndian.PutUint32(buf, uint32(v)) }
func getI32(buf []byte) int32    { return int32(binary.LittleEndian.Uint32(buf)) }

func putF32(buf []byte, v float32) { binary.LittleEndian.PutUint32(buf, math.Float32bits(v)) }
func getF32(buf []byte) float32    { return math.Float32frombits(binary.LittleEndian.Uint32(buf)) }

// putFixedName encodes s into buf[:NameMax], null-padded. Bytes beyond
// NameMax are cut off without an error — callers must validate length
// beforehand via checkName.
func putFixedName(buf []byte, s string) {
	clear(buf[:NameMax])
	copy(buf[:NameMax], s)
}

// getFixedName decodes a NameMax-byte null-padded field.
func getFixedName(buf []byte) string {
	return decodeNullPadded(buf[:NameMax])
}

// putFixedString encodes s into a 255-byte null-padded field. Callers must
// validate len(s) <= stringFieldSize beforehand.
func putFixedString(buf []byte, s string) {
	clear(buf[:stringFieldSize])
	copy(buf[:stringFieldSize], s)
}

// getFixedString decodes a 255-byte null-padded string field.
func getFixedString(buf []byte) string {
	return decodeNullPadded(buf[:stringFieldSize])
}

// decodeNullPadded returns the prefix of buf up to (exclusive) the first
// 0x00 byte, interpreted as UTF-8. If there is no 0x00 byte, the whole
// buffer is the value.
func decodeNullPadded(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
