package wire64

import (
	"encoding/binary"
	"fmt"
)

// Size is the width of a 64-bit wire field in bytes.
const Size = 8

const (
	noOffsetBits = 1<<64 - 1 // two's complement of -1
	earliestBits = 1<<64 - 2 // two's complement of -2
)

// The fixed bit patterns the sentinels put on the wire.
var (
	noOffsetPattern = [Size]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	earliestPattern = [Size]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}
)

// Encode returns the 8-byte big-endian wire form of v. The output is
// bit-for-bit identical to a native 64-bit two's-complement pack of the
// same logical value. Sentinels are matched before the general path so
// their patterns stay auditable.
func Encode(v Value) []byte {
	switch v.sentinel {
	case SentinelNoOffset:
		b := noOffsetPattern
		return b[:]
	case SentinelEarliest:
		b := earliestPattern
		return b[:]
	}
	b := make([]byte, Size)
	binary.BigEndian.PutUint64(b, v.magnitude)
	return b
}

// Bytes returns the 8-byte big-endian wire form of v.
func (v Value) Bytes() []byte {
	return Encode(v)
}

// Append appends the 8-byte wire form of v to dst and returns the
// extended slice, for callers assembling a larger wire message.
func Append(dst []byte, v Value) []byte {
	return append(dst, Encode(v)...)
}

// Decode reads a Value from exactly 8 big-endian bytes. Any other length
// fails with ErrInvalidLength.
//
// Decode is strictly unsigned: it never reconstructs a sentinel. Decoding
// the bytes Encode produced for NoOffset yields the unsigned magnitude
// 2^64-1, not -1. Callers that need sentinel semantics on the read side
// re-apply that interpretation themselves.
func Decode(buf []byte) (Value, error) {
	if len(buf) != Size {
		return Value{}, fmt.Errorf("expected %d bytes, got %d: %w", Size, len(buf), ErrInvalidLength)
	}
	return Value{magnitude: binary.BigEndian.Uint64(buf)}, nil
}
