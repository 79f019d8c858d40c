package wire64

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		{"zero", 0},
		{"one", 1},
		{"max uint32", math.MaxUint32},
		{"2^32", 1 << 32},
		{"max int64", math.MaxInt64},
		{"2^63", 1 << 63},
		{"max uint64", math.MaxUint64},
		{"mixed bytes", 0x123456789ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Encode(FromUint64(tt.value))
			if len(buf) != Size {
				t.Fatalf("Encode() emitted %d bytes, want %d", len(buf), Size)
			}

			got, err := Decode(buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Uint64() != tt.value {
				t.Errorf("Decode(Encode(%d)) = %d, want %d", tt.value, got.Uint64(), tt.value)
			}
		})
	}
}

func TestEncode_KnownBytes(t *testing.T) {
	buf := Encode(FromUint64(1311768467294899695))
	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	if !bytes.Equal(buf, want) {
		t.Errorf("Encode(1311768467294899695) = % X, want % X", buf, want)
	}

	got, err := Decode(want)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Uint64() != 1311768467294899695 {
		t.Errorf("Decode() = %d, want 1311768467294899695", got.Uint64())
	}
}

func TestEncode_Sentinels(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  []byte
	}{
		{"no offset", NoOffset(), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"earliest", Earliest(), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.value); !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%v) = % X, want % X", tt.value, got, tt.want)
			}
		})
	}
}

// Decoding a sentinel's bytes yields the unsigned magnitude, never the
// sentinel itself. Callers reinterpret on the read side.
func TestDecode_SentinelAsymmetry(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  uint64
	}{
		{"no offset decodes unsigned", NoOffset(), math.MaxUint64},
		{"earliest decodes unsigned", Earliest(), math.MaxUint64 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(Encode(tt.value))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.IsSentinel() {
				t.Errorf("Decode() reconstructed sentinel %v", got.Sentinel())
			}
			if got.Uint64() != tt.want {
				t.Errorf("Decode() = %d, want %d", got.Uint64(), tt.want)
			}
		})
	}
}

func TestDecode_LengthEnforcement(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"7 bytes", make([]byte, 7)},
		{"9 bytes", make([]byte, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.buf); !errors.Is(err, ErrInvalidLength) {
				t.Errorf("Decode(%d bytes) error = %v, want ErrInvalidLength", len(tt.buf), err)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	dst := []byte{0x01, 0x02}
	dst = Append(dst, FromUint64(0x123456789ABCDEF0))
	dst = Append(dst, NoOffset())

	want := []byte{
		0x01, 0x02,
		0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("Append chain = % X, want % X", dst, want)
	}
}

func TestValue_Bytes(t *testing.T) {
	v := FromUint64(42)
	if got := v.Bytes(); !bytes.Equal(got, Encode(v)) {
		t.Errorf("Bytes() = % X, want % X", got, Encode(v))
	}
}
