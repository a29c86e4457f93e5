package encoding

import (
	"errors"
	"fmt"
)

const ONE byte = '1'
const ZERO byte = '0'

var (
	ErrLength = errors.New("wrong number of bits")
	ErrSymbol = errors.New("non-binary character")
)

// Parse turns a string of exactly n '0'/'1' characters into bit values.
func Parse(s string, n int) ([]byte, error) {
	if len(s) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLength, len(s), n)
	}
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case ZERO:
			bits[i] = 0
		case ONE:
			bits[i] = 1
		default:
			return nil, fmt.Errorf("%w %q at position %d", ErrSymbol, s[i], i)
		}
	}
	return bits, nil
}

func Format(bits []byte) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		if b == 0 {
			out[i] = ZERO
		} else {
			out[i] = ONE
		}
	}
	return string(out)
}

// Flip inverts bit k of a binary string of any length.
func Flip(s string, k int) (string, error) {
	bits, err := Parse(s, len(s))
	if err != nil {
		return "", err
	}
	if k < 0 || k >= len(bits) {
		return "", fmt.Errorf("bit index %d out of range [0,%d)", k, len(bits))
	}
	bits[k] ^= 1
	return Format(bits), nil
}
