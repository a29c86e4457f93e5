package verify

import (
	"fmt"

	"github.com/harlequix/hamming/report"
)

func (o Outcome) String() string {
	return fmt.Sprintf("%d/%d recovered, %d miscorrected", o.Recovered, o.Cases, o.Miscorrected)
}

func (r *Report) Rows() []report.Row {
	rows := []report.Row{
		{Label: "payloads", Value: r.Payloads},
		{Label: "round trip", Value: r.RoundTrip},
		{Label: "single-bit errors", Value: r.SingleErrors},
	}
	if r.DoubleErrors != nil {
		rows = append(rows, report.Row{Label: "double-bit errors", Value: *r.DoubleErrors})
	}
	for _, f := range r.Failures {
		rows = append(rows, report.Row{
			Label: "FAIL " + f.Payload,
			Value: fmt.Sprintf("%s -> %s decoded %s (flipped %v)", f.Codeword, f.Received, f.Decoded, f.Flipped),
		})
	}
	status := "ok"
	if !r.OK() {
		status = "FAILED"
	}
	return append(rows, report.Row{Label: "status", Value: status})
}

func (s *Simulation) Rows() []report.Row {
	return []report.Row{
		{Label: "trials", Value: s.Trials},
		{Label: "ber", Value: s.BER},
		{Label: "bit errors", Value: s.BitErrors},
		{Label: "clean", Value: s.Clean},
		{Label: "corrected", Value: s.Corrected},
		{Label: "miscorrected", Value: s.Miscorrected},
		{Label: "delivered", Value: fmt.Sprintf("%.4f", s.Delivered())},
	}
}
