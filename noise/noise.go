// Package noise injects bit errors into codewords.
package noise

import (
	"fmt"
	"math/rand"

	"github.com/harlequix/hamming/internal/encoding"
)

// Channel flips bits using its own seeded source. It is not safe for
// concurrent use.
type Channel struct {
	rng *rand.Rand
}

type Result struct {
	Sent     string
	Received string
	Flipped  []int
}

func NewChannel(seed int64) *Channel {
	return &Channel{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Transmit flips every bit of codeword independently with probability ber.
func (c *Channel) Transmit(codeword string, ber float64) (*Result, error) {
	if ber < 0.0 || ber > 1.0 {
		return nil, fmt.Errorf("ber %.3f out of range [0,1]", ber)
	}
	bits, err := encoding.Parse(codeword, len(codeword))
	if err != nil {
		return nil, err
	}
	var flipped []int
	for i := range bits {
		if c.rng.Float64() < ber {
			bits[i] ^= 1
			flipped = append(flipped, i)
		}
	}
	return &Result{
		Sent:     codeword,
		Received: encoding.Format(bits),
		Flipped:  flipped,
	}, nil
}

// FlipN flips exactly n distinct bits of codeword.
func (c *Channel) FlipN(codeword string, n int) (*Result, error) {
	bits, err := encoding.Parse(codeword, len(codeword))
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(bits) {
		return nil, fmt.Errorf("cannot flip %d of %d bits", n, len(bits))
	}
	flipped := c.rng.Perm(len(bits))[:n]
	for _, i := range flipped {
		bits[i] ^= 1
	}
	return &Result{
		Sent:     codeword,
		Received: encoding.Format(bits),
		Flipped:  flipped,
	}, nil
}

// Payload draws a uniformly random 4-bit payload.
func (c *Channel) Payload() string {
	return fmt.Sprintf("%04b", c.rng.Intn(1<<encoding.PayloadLen))
}

func (r *Result) Errors() int {
	return len(r.Flipped)
}
