package verify

import (
	"fmt"

	"github.com/harlequix/hamming/hamming"
	"github.com/harlequix/hamming/noise"
)

type SimulateOptions struct {
	Seed   int64
	Trials int
	BER    float64
}

// Simulation counts how transmissions over a noisy channel fared.
type Simulation struct {
	Trials       int     `json:"trials" cbor:"trials" msgpack:"trials"`
	BER          float64 `json:"ber" cbor:"ber" msgpack:"ber"`
	Clean        int     `json:"clean" cbor:"clean" msgpack:"clean"`
	Corrected    int     `json:"corrected" cbor:"corrected" msgpack:"corrected"`
	Miscorrected int     `json:"miscorrected" cbor:"miscorrected" msgpack:"miscorrected"`
	BitErrors    int     `json:"bitErrors" cbor:"bitErrors" msgpack:"bitErrors"`
}

// Delivered is the share of trials whose payload arrived intact.
func (s *Simulation) Delivered() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Clean+s.Corrected) / float64(s.Trials)
}

func Simulate(opts SimulateOptions) (*Simulation, error) {
	if opts.Trials < 0 {
		return nil, fmt.Errorf("trials %d must not be negative", opts.Trials)
	}
	channel := noise.NewChannel(opts.Seed)
	sim := &Simulation{Trials: opts.Trials, BER: opts.BER}
	for i := 0; i < opts.Trials; i++ {
		payload := channel.Payload()
		codeword, err := hamming.Encode(payload)
		if err != nil {
			return nil, err
		}
		res, err := channel.Transmit(codeword, opts.BER)
		if err != nil {
			return nil, err
		}
		decoded, err := hamming.Decode(res.Received)
		if err != nil {
			return nil, err
		}
		sim.BitErrors += res.Errors()
		switch {
		case decoded != payload:
			sim.Miscorrected++
			logger.WithField("trial", i).WithField("flipped", res.Flipped).Trace("miscorrected")
		case res.Errors() == 0:
			sim.Clean++
		default:
			sim.Corrected++
		}
	}
	logger.WithField("trials", sim.Trials).WithField("ber", sim.BER).
		WithField("miscorrected", sim.Miscorrected).Info("simulation finished")
	return sim, nil
}
