// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"math"
)

// PutU32 appends the fixed 32-bit big-endian encoding of val. Used inside
// VECTOR_INT/VECTOR_UINT payloads and by the pack/unpack 'I'/'U' codes.
func PutU32(buf []byte, val uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], val)
	return append(buf, tmp[:]...)
}

// DecodeU32 reads a fixed 32-bit big-endian integer at buf[pos:pos+4].
func DecodeU32(buf []byte, pos int) (uint32, error) {
	if pos+4 > len(buf) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint32(buf[pos : pos+4]), nil
}

// PutDouble appends the big-endian IEEE-754 binary64 encoding of val.
func PutDouble(buf []byte, val float64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(val))
	return append(buf, tmp[:]...)
}

// DecodeDouble reads a big-endian IEEE-754 binary64 at buf[pos:pos+8].
func DecodeDouble(buf []byte, pos int) (float64, error) {
	if pos+8 > len(buf) {
		return 0, ErrShortBuffer
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[pos : pos+8])), nil
}
