// Package verify exercises the codec exhaustively and over a noisy channel.
package verify

import (
	"fmt"

	"github.com/harlequix/hamming/hamming"
	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
)

var logger *log.Logger

func init() {
	logger = log.NewLogger("Verify")
}

type Options struct {
	// DoubleErrors also runs every two-bit corruption. These are expected to
	// miscorrect and are never counted as failures.
	DoubleErrors bool
}

type Outcome struct {
	Cases        int `json:"cases" cbor:"cases" msgpack:"cases"`
	Recovered    int `json:"recovered" cbor:"recovered" msgpack:"recovered"`
	Miscorrected int `json:"miscorrected" cbor:"miscorrected" msgpack:"miscorrected"`
}

type Failure struct {
	Payload  string `json:"payload" cbor:"payload" msgpack:"payload"`
	Codeword string `json:"codeword" cbor:"codeword" msgpack:"codeword"`
	Received string `json:"received" cbor:"received" msgpack:"received"`
	Decoded  string `json:"decoded" cbor:"decoded" msgpack:"decoded"`
	Flipped  []int  `json:"flipped" cbor:"flipped" msgpack:"flipped"`
}

type Report struct {
	Payloads     int       `json:"payloads" cbor:"payloads" msgpack:"payloads"`
	RoundTrip    Outcome   `json:"roundTrip" cbor:"roundTrip" msgpack:"roundTrip"`
	SingleErrors Outcome   `json:"singleErrors" cbor:"singleErrors" msgpack:"singleErrors"`
	DoubleErrors *Outcome  `json:"doubleErrors,omitempty" cbor:"doubleErrors,omitempty" msgpack:"doubleErrors,omitempty"`
	Failures     []Failure `json:"failures,omitempty" cbor:"failures,omitempty" msgpack:"failures,omitempty"`
}

// OK reports whether every round trip and every single-bit error decoded to
// the original payload.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

func Run(opts Options) (*Report, error) {
	report := &Report{}
	if opts.DoubleErrors {
		report.DoubleErrors = &Outcome{}
	}
	for v := 0; v < 1<<encoding.PayloadLen; v++ {
		payload := fmt.Sprintf("%04b", v)
		codeword, err := hamming.Encode(payload)
		if err != nil {
			return nil, err
		}
		report.Payloads++

		if err := check(report, &report.RoundTrip, payload, codeword, nil, true); err != nil {
			return nil, err
		}
		for k := 0; k < encoding.CodewordLen; k++ {
			if err := check(report, &report.SingleErrors, payload, codeword, []int{k}, true); err != nil {
				return nil, err
			}
		}
		if !opts.DoubleErrors {
			continue
		}
		for a := 0; a < encoding.CodewordLen; a++ {
			for b := a + 1; b < encoding.CodewordLen; b++ {
				if err := check(report, report.DoubleErrors, payload, codeword, []int{a, b}, false); err != nil {
					return nil, err
				}
			}
		}
	}
	logger.WithField("payloads", report.Payloads).
		WithField("singleErrors", report.SingleErrors.Cases).
		WithField("failures", len(report.Failures)).
		Info("exhaustive check finished")
	return report, nil
}

func check(report *Report, out *Outcome, payload, codeword string, flips []int, mustRecover bool) error {
	received := codeword
	for _, k := range flips {
		var err error
		if received, err = encoding.Flip(received, k); err != nil {
			return err
		}
	}
	decoded, err := hamming.Decode(received)
	if err != nil {
		return err
	}
	out.Cases++
	if decoded == payload {
		out.Recovered++
		return nil
	}
	out.Miscorrected++
	if mustRecover {
		logger.WithField("payload", payload).WithField("received", received).
			WithField("decoded", decoded).Warn("decode mismatch")
		report.Failures = append(report.Failures, Failure{
			Payload:  payload,
			Codeword: codeword,
			Received: received,
			Decoded:  decoded,
			Flipped:  flips,
		})
	} else {
		logger.WithField("payload", payload).WithField("flipped", flips).
			Trace("miscorrected")
	}
	return nil
}
