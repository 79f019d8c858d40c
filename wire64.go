// Package wire64 encodes and decodes the 8-byte big-endian 64-bit integer
// fields of binary wire protocols (log offsets, timestamps, millisecond
// timeouts), bit-compatible with peers using native two's-complement 64-bit
// integers.
//
// The codec accepts every unsigned magnitude in [0, 2^64-1] plus exactly two
// negative sentinel values, -1 and -2, which wire protocols reserve for
// special meanings ("no offset", "earliest"). Arbitrary negative values are
// rejected rather than encoded.
package wire64

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Sentinel identifies the reserved negative wire values. The zero value
// SentinelNone means the Value is an ordinary unsigned magnitude.
type Sentinel int8

const (
	SentinelNone Sentinel = iota

	// SentinelNoOffset is native -1: eight bytes of 0xFF on the wire.
	SentinelNoOffset

	// SentinelEarliest is native -2: seven bytes of 0xFF then 0xFE.
	SentinelEarliest
)

// String returns the sentinel's name for debugging.
func (s Sentinel) String() string {
	switch s {
	case SentinelNoOffset:
		return "NoOffset"
	case SentinelEarliest:
		return "Earliest"
	}
	return "None"
}

// Value represents a logical 64-bit wire integer: an unsigned magnitude in
// [0, 2^64-1], or one of the two negative sentinels. Values are immutable
// and safe for unrestricted concurrent use.
type Value struct {
	magnitude uint64
	sentinel  Sentinel
}

// FromUint64 creates a Value from an unsigned 64-bit magnitude.
func FromUint64(u uint64) Value {
	return Value{magnitude: u}
}

// FromInt64 creates a Value from a signed 64-bit integer. Non-negative
// inputs become ordinary magnitudes; -1 and -2 become their sentinels.
// Any other negative input fails with ErrUnsupportedNegative.
func FromInt64(n int64) (Value, error) {
	switch {
	case n >= 0:
		return Value{magnitude: uint64(n)}, nil
	case n == -1:
		return NoOffset(), nil
	case n == -2:
		return Earliest(), nil
	default:
		return Value{}, fmt.Errorf("value %d: %w", n, ErrUnsupportedNegative)
	}
}

// NoOffset returns the -1 sentinel value.
func NoOffset() Value {
	return Value{magnitude: noOffsetBits, sentinel: SentinelNoOffset}
}

// Earliest returns the -2 sentinel value.
func Earliest() Value {
	return Value{magnitude: earliestBits, sentinel: SentinelEarliest}
}

// FromBigInt creates a Value from an arbitrary-precision integer.
// A nil input fails with ErrInvalidOperand, a negative other than -1/-2
// fails with ErrUnsupportedNegative, and a magnitude above 2^64-1 fails
// with ErrOutOfRange.
func FromBigInt(n *big.Int) (Value, error) {
	if n == nil {
		return Value{}, fmt.Errorf("nil big integer: %w", ErrInvalidOperand)
	}
	if n.Sign() < 0 {
		if n.IsInt64() {
			switch n.Int64() {
			case -1:
				return NoOffset(), nil
			case -2:
				return Earliest(), nil
			}
		}
		return Value{}, fmt.Errorf("value %s: %w", n, ErrUnsupportedNegative)
	}
	if !n.IsUint64() {
		return Value{}, fmt.Errorf("value %s: %w", n, ErrOutOfRange)
	}
	return Value{magnitude: n.Uint64()}, nil
}

// Parse interprets s as an unsigned decimal magnitude or one of the
// sentinel spellings "-1" and "-2".
func Parse(s string) (Value, error) {
	switch s {
	case "-1":
		return NoOffset(), nil
	case "-2":
		return Earliest(), nil
	}
	if strings.HasPrefix(s, "-") {
		return Value{}, fmt.Errorf("value %s: %w", s, ErrUnsupportedNegative)
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("value %s: %w", s, ErrOutOfRange)
		}
		return Value{}, fmt.Errorf("parse %q: %w", s, ErrNotANumber)
	}
	return Value{magnitude: u}, nil
}

// Uint64 returns the value's 64-bit pattern. Sentinels yield their
// two's-complement patterns: 2^64-1 for NoOffset, 2^64-2 for Earliest.
func (v Value) Uint64() uint64 {
	return v.magnitude
}

// Int64 returns the signed two's-complement reinterpretation of the value's
// bit pattern. Sentinels yield -1 and -2; magnitudes at or above 2^63 come
// back negative, exactly as a native 64-bit peer would read them.
func (v Value) Int64() int64 {
	return int64(v.magnitude)
}

// BigInt returns the logical value at arbitrary precision: -1/-2 for the
// sentinels, the unsigned magnitude otherwise.
func (v Value) BigInt() *big.Int {
	switch v.sentinel {
	case SentinelNoOffset:
		return big.NewInt(-1)
	case SentinelEarliest:
		return big.NewInt(-2)
	}
	return new(big.Int).SetUint64(v.magnitude)
}

// Sentinel reports which sentinel, if any, the value carries.
func (v Value) Sentinel() Sentinel {
	return v.sentinel
}

// IsSentinel reports whether the value is one of the reserved negatives.
func (v Value) IsSentinel() bool {
	return v.sentinel != SentinelNone
}

// Compare orders two values by their unsigned 64-bit patterns, the order
// peers see on the wire. Returns -1 if v < other, 0 if equal, 1 if v > other.
func Compare(v, other Value) int {
	if v.magnitude < other.magnitude {
		return -1
	} else if v.magnitude > other.magnitude {
		return 1
	}
	return 0
}

// Equals checks equality by bit pattern. A sentinel and the unsigned
// magnitude sharing its pattern are equal, as they are on the wire.
func (v Value) Equals(other Value) bool {
	return Compare(v, other) == 0
}

// String returns a string representation for debugging.
func (v Value) String() string {
	if v.IsSentinel() {
		return fmt.Sprintf("Value(%d)", v.Int64())
	}
	return fmt.Sprintf("Value(%d)", v.magnitude)
}

// MarshalJSON implements the json.Marshaler interface.
// Encodes the value as a 16-digit hex string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Hex())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts either a 16-digit hex string or an unsigned numeric value.
// Like Decode, it is strictly unsigned and never reconstructs a sentinel.
func (v *Value) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err == nil {
		parsed, err := FromHex(hexStr)
		if err != nil {
			return fmt.Errorf("failed to parse hex string: %w", err)
		}
		*v = parsed
		return nil
	}

	var num uint64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("unmarshal Value: expected hex string or unsigned number: %w", ErrNotANumber)
	}
	*v = Value{magnitude: num}
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns the 8-byte wire form for storage as BLOB/BYTEA.
func (v Value) Value() (driver.Value, error) {
	return v.Bytes(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts int64, uint64, an 8-byte slice, or nil.
func (v *Value) Scan(value interface{}) error {
	if value == nil {
		*v = Value{}
		return nil
	}

	switch src := value.(type) {
	case int64:
		parsed, err := FromInt64(src)
		if err != nil {
			return fmt.Errorf("failed to scan int64: %w", err)
		}
		*v = parsed
		return nil
	case uint64:
		*v = Value{magnitude: src}
		return nil
	case []byte:
		parsed, err := Decode(src)
		if err != nil {
			return fmt.Errorf("failed to scan bytes: %w", err)
		}
		*v = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Value: %w", value, ErrInvalidOperand)
	}
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (v Value) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// It expects 8 big-endian bytes and, like Decode, reads them unsigned.
func (v *Value) UnmarshalBinary(data []byte) error {
	parsed, err := Decode(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
