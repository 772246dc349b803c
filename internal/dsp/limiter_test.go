package dsp

import (
	"math"
	"testing"
)

func TestLimiterConvergesBelowThreshold(t *testing.T) {
	l := NewLimiter(48000)
	var maxAbs float64
	for i := 0; i < 48000; i++ {
		out := l.Process(40000, 1)
		if i > 10000 {
			if a := math.Abs(out); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs > LimiterThreshold*1.001 {
		t.Fatalf("limiter did not converge below threshold: max |out| = %v, threshold = %v", maxAbs, LimiterThreshold)
	}
}

func TestLimiterTransparentBelowThreshold(t *testing.T) {
	l := NewLimiter(48000)
	var out float64
	for i := 0; i < 1000; i++ {
		out = l.Process(100, 1)
	}
	if math.Abs(out-100) > 0.5 {
		t.Fatalf("limiter altered a quiet signal: got %v, want close to 100", out)
	}
}

func TestLimiterFastReleaseDuringSilence(t *testing.T) {
	slow := NewLimiter(48000)
	fast := NewLimiter(48000)
	// Drive both to minimum gain first.
	for i := 0; i < 100; i++ {
		slow.Process(60000, 1)
		fast.Process(60000, 1)
	}
	gSlowStart := slow.gain
	gFastStart := fast.gain
	for i := 0; i < 50; i++ {
		slow.Process(100, 1)    // preGain >= 0.01: normal release
		fast.Process(100, 0.0) // preGain < 0.01: fast release
	}
	if fast.gain-gFastStart <= slow.gain-gSlowStart {
		t.Fatalf("fast release did not recover gain faster: slow %v->%v, fast %v->%v", gSlowStart, slow.gain, gFastStart, fast.gain)
	}
}
