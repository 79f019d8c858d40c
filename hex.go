package wire64

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// hexDigits is the width of a 64-bit field in hex characters.
const hexDigits = Size * 2

// Hex returns the value's bit pattern as 16 uppercase hex digits,
// left-zero-padded. Sentinels render their two's-complement patterns
// (FFFFFFFFFFFFFFFF, FFFFFFFFFFFFFFFE).
func (v Value) Hex() string {
	return fmt.Sprintf("%016X", v.magnitude)
}

// FromHex parses a 16-digit hex bit pattern into a Value. Accepts
// uppercase or lowercase and an optional "0x" prefix. Like Decode, it is
// strictly unsigned and never reconstructs a sentinel.
func FromHex(hexStr string) (Value, error) {
	h := hexStr
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	if len(h) != hexDigits {
		return Value{}, fmt.Errorf("hex must be %d chars, got %d: %w", hexDigits, len(h), ErrInvalidLength)
	}

	for i, r := range h {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return Value{}, fmt.Errorf("non-hex character %q at position %d: %w", r, i, ErrNotANumber)
		}
	}

	bytes, err := hex.DecodeString(h)
	if err != nil {
		return Value{}, fmt.Errorf("failed to decode hex: %w", err)
	}

	return Decode(bytes)
}
