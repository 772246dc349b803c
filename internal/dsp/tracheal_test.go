package dsp

import "testing"

func TestTrachealBypassWhenAllFrequenciesZero(t *testing.T) {
	tr := NewTracheal()
	tr.SetParams(0, 0, 0, 0, 0, 0, 0, 0, 48000)
	if got := tr.Process(0.42); got != 0.42 {
		t.Fatalf("tracheal chain with all stages at freq=0 should be identity: got %v, want 0.42", got)
	}
}

func TestTrachealPartialBypass(t *testing.T) {
	tr := NewTracheal()
	tr.SetParams(600, 100, 0, 0, 0, 0, 0, 0, 48000)
	// Only pole1 active; feeding a constant should not diverge.
	var out float64
	for i := 0; i < 1000; i++ {
		out = tr.Process(1)
	}
	if out != out { // NaN check
		t.Fatalf("tracheal chain produced NaN with only pole1 active")
	}
}
