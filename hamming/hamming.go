package hamming

import (
	"github.com/harlequix/hamming/internal/encoding"
)

const (
	PayloadLen  = encoding.PayloadLen
	CodewordLen = encoding.CodewordLen
)

// Encode maps a 4-bit payload to its 7-bit codeword.
func Encode(payload string) (string, error) {
	data, err := encoding.Parse(payload, PayloadLen)
	if err != nil {
		return "", &InputError{Op: "encode", Input: payload, Err: err}
	}
	bitfield := make([]byte, CodewordLen)
	for i, pos := range encoding.DataPositions {
		bitfield[pos] = data[i]
	}
	for _, p := range encoding.ParityPositions {
		bitfield[p] = encoding.Parity(bitfield, p)
	}
	return encoding.Format(bitfield), nil
}

// Decode returns the payload carried by codeword after correcting at most one
// flipped bit.
func Decode(codeword string) (string, error) {
	bits, _, err := correct("decode", codeword)
	if err != nil {
		return "", err
	}
	return encoding.Format(stripCode(bits)), nil
}

// Correct returns codeword with the bit named by its syndrome flipped, along
// with the syndrome itself. A zero syndrome leaves the codeword unchanged.
func Correct(codeword string) (string, int, error) {
	bits, syndrome, err := correct("correct", codeword)
	if err != nil {
		return "", 0, err
	}
	return encoding.Format(bits), syndrome, nil
}

// Syndrome returns the 1-indexed position of the erroneous bit, or 0 when all
// parity checks pass.
func Syndrome(codeword string) (int, error) {
	bits, err := encoding.Parse(codeword, CodewordLen)
	if err != nil {
		return 0, &InputError{Op: "syndrome", Input: codeword, Err: err}
	}
	return syndrome(bits), nil
}

func correct(op, codeword string) ([]byte, int, error) {
	bits, err := encoding.Parse(codeword, CodewordLen)
	if err != nil {
		return nil, 0, &InputError{Op: op, Input: codeword, Err: err}
	}
	errorPlace := syndrome(bits)
	if errorPlace != 0 {
		bits[errorPlace-1] ^= 1
	}
	return bits, errorPlace, nil
}

func syndrome(bits []byte) int {
	errorPlace := 0
	for _, p := range encoding.ParityPositions {
		if encoding.Parity(bits, p) != bits[p] {
			errorPlace |= p + 1
		}
	}
	return errorPlace
}

func stripCode(bits []byte) []byte {
	out := make([]byte, 0, PayloadLen)
	for _, pos := range encoding.DataPositions {
		out = append(out, bits[pos])
	}
	return out
}
