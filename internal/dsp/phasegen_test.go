package dsp

import "testing"

func TestPhaseGenWrapsAtOne(t *testing.T) {
	p := NewPhaseGen(1000)
	var prev float64
	wraps := 0
	for i := 0; i < 5000; i++ {
		v := p.Next(100)
		if v < 0 || v >= 1 {
			t.Fatalf("phase out of [0,1): %v", v)
		}
		if v < prev {
			wraps++
		}
		prev = v
	}
	if wraps == 0 {
		t.Fatalf("expected at least one wraparound over 5000 samples at 100Hz/1000Hz sample rate")
	}
}

func TestPhaseGenDtMatchesFrequency(t *testing.T) {
	p := NewPhaseGen(48000)
	p.Next(480)
	if got, want := p.Dt(), 480.0/48000.0; got != want {
		t.Fatalf("Dt() = %v, want %v", got, want)
	}
}

func TestPhaseGenFloorsFrequencyToOneHz(t *testing.T) {
	p := NewPhaseGen(48000)
	p.Next(-10)
	if got, want := p.Dt(), 1.0/48000.0; got != want {
		t.Fatalf("Dt() after negative frequency = %v, want %v", got, want)
	}
}
