package trit

import (
	"errors"
	"fmt"
)

// ErrInvalidTrit is returned by Decode when a byte does not encode a valid
// trit value.
var ErrInvalidTrit = errors.New("trit: byte is not a valid trit (-1, 0 or 1)")

// Encode serializes a slice of trits to the on-disk binary format: one
// signed byte per trit (0xFF, 0x00, 0x01 for N, Z, P respectively), LSB
// trit of tryte 0 first. There is no header and no checksum.
func Encode(trits []Trit) []byte {
	out := make([]byte, len(trits))
	for i, t := range trits {
		out[i] = byte(int8(t))
	}
	return out
}

// Decode parses a byte stream produced by Encode back into trits. Every
// byte, interpreted as signed 8-bit, must lie in {-1, 0, 1}; the first
// violation is reported wrapping ErrInvalidTrit.
func Decode(b []byte) ([]Trit, error) {
	out := make([]Trit, len(b))
	for i, raw := range b {
		v := int8(raw)
		t, ok := FromInt(int(v))
		if !ok {
			return nil, fmt.Errorf("trit: invalid byte %d at offset %d: %w", v, i, ErrInvalidTrit)
		}
		out[i] = t
	}
	return out, nil
}
