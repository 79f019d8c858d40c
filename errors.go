package wire64

import "errors"

var (
	// ErrInvalidOperand reports an argument that is not a usable numeric
	// value where one is required (e.g. a nil *big.Int, or advancing from
	// a sentinel).
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrInvalidLength reports a decode input that is not exactly 8 bytes.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnsupportedNegative reports a negative value other than the two
	// sentinels -1 and -2. The codec does not implement general
	// two's-complement encoding for arbitrary negatives.
	ErrUnsupportedNegative = errors.New("unsupported negative value")

	// ErrNotANumber reports input that could not be interpreted as a
	// number at all.
	ErrNotANumber = errors.New("not a number")

	// ErrOutOfRange reports a value or sum that cannot be represented in
	// 64 bits. The value is rejected rather than wrapped or truncated.
	ErrOutOfRange = errors.New("value out of 64-bit range")
)
