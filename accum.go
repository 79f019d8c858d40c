package wire64

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Advance returns current + delta, the next expected offset after
// consuming an entry of delta encoded bytes. The sum is exact: it is
// never wrapped, truncated, or clamped. A sum that no longer fits in 64
// bits fails with ErrOutOfRange, and advancing from a sentinel fails
// with ErrInvalidOperand, since a sentinel is not a position.
func Advance(current Value, delta uint64) (Value, error) {
	if current.IsSentinel() {
		return Value{}, fmt.Errorf("cannot advance from sentinel %s: %w", current.sentinel, ErrInvalidOperand)
	}
	sum, carry := bits.Add64(current.magnitude, delta, 0)
	if carry != 0 {
		return Value{}, fmt.Errorf("%d + %d exceeds 64 bits: %w", current.magnitude, delta, ErrOutOfRange)
	}
	return Value{magnitude: sum}, nil
}

// Sum returns the exact arbitrary-precision sum a + b, for callers whose
// arithmetic may legitimately leave the 64-bit range. A nil operand fails
// with ErrInvalidOperand. Neither input is modified.
func Sum(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("nil operand: %w", ErrInvalidOperand)
	}
	return new(big.Int).Add(a, b), nil
}
