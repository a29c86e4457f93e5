package verify

import (
	"testing"
)

func TestRunExhaustive(t *testing.T) {
	report, err := Run(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Fatalf("unexpected failures: %+v", report.Failures)
	}
	if report.Payloads != 16 {
		t.Fatalf("payloads = %d, want 16", report.Payloads)
	}
	if report.RoundTrip.Cases != 16 || report.RoundTrip.Recovered != 16 {
		t.Fatalf("round trip = %+v", report.RoundTrip)
	}
	if report.SingleErrors.Cases != 112 || report.SingleErrors.Recovered != 112 {
		t.Fatalf("single errors = %+v", report.SingleErrors)
	}
	if report.DoubleErrors != nil {
		t.Fatal("double errors ran without being requested")
	}
}

func TestRunDoubleErrors(t *testing.T) {
	report, err := Run(Options{DoubleErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if !report.OK() {
		t.Fatalf("double errors must not be reported as failures: %+v", report.Failures)
	}
	d := report.DoubleErrors
	if d == nil || d.Cases != 16*21 {
		t.Fatalf("double errors = %+v", d)
	}
	if d.Miscorrected != d.Cases || d.Recovered != 0 {
		t.Fatalf("every double error should miscorrect: %+v", d)
	}
}

func TestSimulateNoiseless(t *testing.T) {
	sim, err := Simulate(SimulateOptions{Seed: 1, Trials: 200, BER: 0})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Clean != 200 || sim.Corrected != 0 || sim.Miscorrected != 0 || sim.BitErrors != 0 {
		t.Fatalf("noiseless simulation: %+v", sim)
	}
	if sim.Delivered() != 1 {
		t.Fatalf("delivered = %v", sim.Delivered())
	}
}

func TestSimulateNoisy(t *testing.T) {
	sim, err := Simulate(SimulateOptions{Seed: 9, Trials: 2000, BER: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Clean+sim.Corrected+sim.Miscorrected != sim.Trials {
		t.Fatalf("counts do not add up: %+v", sim)
	}
	if sim.Corrected == 0 || sim.BitErrors == 0 {
		t.Fatalf("expected corrections at ber 0.1: %+v", sim)
	}

	again, _ := Simulate(SimulateOptions{Seed: 9, Trials: 2000, BER: 0.1})
	if *again != *sim {
		t.Fatalf("same seed, different result: %+v vs %+v", again, sim)
	}
}

func TestSimulateInvalid(t *testing.T) {
	if _, err := Simulate(SimulateOptions{Trials: 1, BER: 2}); err == nil {
		t.Fatal("expected error for ber > 1")
	}
	if _, err := Simulate(SimulateOptions{Trials: -1}); err == nil {
		t.Fatal("expected error for negative trials")
	}
	sim, err := Simulate(SimulateOptions{})
	if err != nil || sim.Delivered() != 0 {
		t.Fatalf("zero trials: %+v, %v", sim, err)
	}
}
