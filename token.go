package wire64

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// tokenIVLength is the length of the initialization vector for
	// AES-GCM (96 bits).
	tokenIVLength = 12

	// TokenLength is the total length of a sealed token:
	// IV + ciphertext + tag.
	TokenLength = tokenIVLength + Size + 16 // 36 bytes total
)

// Token is an authenticated encrypted wrapper for a wire value, used to
// hand a resume position to an untrusted party as an opaque cursor.
// Payload layout: 12-byte IV || 8-byte ciphertext || 16-byte GCM tag.
type Token struct {
	// The wire value the token carries.
	Value Value

	// The raw sealed payload (IV ‖ cipher+tag).
	payload []byte
}

// Hex returns the 36-byte payload as 72-char uppercase hex.
func (t Token) Hex() string {
	return strings.ToUpper(hex.EncodeToString(t.payload))
}

// Bytes returns a defensive copy of the raw payload bytes.
func (t Token) Bytes() []byte {
	result := make([]byte, len(t.payload))
	copy(result, t.payload)
	return result
}

// TokenConfig holds the cipher for sealing and opening tokens.
// It is immutable after construction and safe for concurrent use.
type TokenConfig struct {
	gcm cipher.AEAD
}

// NewTokenConfig creates a configuration for sealed offset tokens.
// The aesKey must be 16, 24, or 32 bytes for AES-128, AES-192, or
// AES-256 respectively.
func NewTokenConfig(aesKey []byte) (*TokenConfig, error) {
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &TokenConfig{gcm: gcm}, nil
}

// generateIV generates a fresh 96-bit random IV.
func (c *TokenConfig) generateIV() ([]byte, error) {
	iv := make([]byte, tokenIVLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// Seal encrypts a wire value into an authenticated payload.
func (c *TokenConfig) Seal(v Value) (*Token, error) {
	iv, err := c.generateIV()
	if err != nil {
		return nil, err
	}

	ciphertext := c.gcm.Seal(nil, iv, Encode(v), nil)

	if len(ciphertext) != Size+16 {
		return nil, fmt.Errorf("unexpected AES-GCM output length: %d", len(ciphertext))
	}

	// Construct payload: IV + ciphertext (includes tag)
	payload := make([]byte, TokenLength)
	copy(payload[0:], iv)
	copy(payload[tokenIVLength:], ciphertext)

	return &Token{
		Value:   v,
		payload: payload,
	}, nil
}

// Open decrypts a raw 36-byte payload. The recovered value is read the
// way Decode reads it: strictly unsigned, never a sentinel.
func (c *TokenConfig) Open(payload []byte) (*Token, error) {
	if len(payload) != TokenLength {
		return nil, fmt.Errorf("sealed payload must be %d bytes, got %d: %w", TokenLength, len(payload), ErrInvalidLength)
	}

	iv := payload[:tokenIVLength]
	ciphertext := payload[tokenIVLength:]

	plaintext, err := c.gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	v, err := Decode(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode decrypted bytes: %w", err)
	}

	// Make a defensive copy of the payload
	buf := make([]byte, len(payload))
	copy(buf, payload)

	return &Token{
		Value:   v,
		payload: buf,
	}, nil
}

// OpenHex decrypts from a 72-char hex payload.
func (c *TokenConfig) OpenHex(encHex string) (*Token, error) {
	h := encHex
	if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	payload, err := hex.DecodeString(h)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}

	return c.Open(payload)
}
