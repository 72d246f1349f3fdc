// Package ioutil provides the little-endian 32-bit-word encode/decode
// helpers shared by dbm/minigraph's wire format and priced's cost tail, so
// the binary layout logic isn't duplicated between the two.
package ioutil

import "encoding/binary"

// PutWord appends a little-endian 32-bit word to buf.
func PutWord(buf []byte, w uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], w)
	return append(buf, tmp[:]...)
}

// PutHalfWord appends a little-endian 16-bit word to buf.
func PutHalfWord(buf []byte, w uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], w)
	return append(buf, tmp[:]...)
}

// Word reads a little-endian 32-bit word at offset off.
func Word(b []byte, off int) (uint32, bool) {
	if off+4 > len(b) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[off:]), true
}

// HalfWord reads a little-endian 16-bit word at offset off.
func HalfWord(b []byte, off int) (uint16, bool) {
	if off+2 > len(b) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b[off:]), true
}
