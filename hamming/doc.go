// Package hamming implements the Hamming(7,4) single-error-correcting code.
//
// A 4-bit payload is spread over the data positions 3, 5, 6 and 7 of a 7-bit
// codeword and protected by parity bits at positions 1, 2 and 4. Each parity
// bit at position 2^k covers every position whose index has bit k set, so a
// single flipped bit anywhere in the codeword produces a syndrome equal to its
// position and can be corrected.
//
// Bits cross the API as strings of '0' and '1':
//
//	codeword, err := hamming.Encode("1011") // "0110011"
//	payload, err := hamming.Decode("0110010") // "1011", last bit corrected
//
// Two or more flipped bits are not detected. The decoder still "corrects" the
// position named by the syndrome and returns a wrong payload without an error.
//
// All functions are pure and safe for concurrent use.
package hamming
