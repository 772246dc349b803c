package dsp

import "testing"

func TestHFShelfTransparentAtDC(t *testing.T) {
	h := NewHFShelf(48000)
	var out float64
	for i := 0; i < 10000; i++ {
		out = h.Process(1)
	}
	if out < 0.999 || out > 1.001 {
		t.Fatalf("HF shelf at DC = %v, want close to 1", out)
	}
}

func TestHFShelfBoostsHighFrequency(t *testing.T) {
	h := NewHFShelf(48000)
	var peak float64
	for i := 0; i < 2000; i++ {
		in := 1.0
		if i%2 == 1 {
			in = -1.0
		}
		out := h.Process(in)
		if i > 500 {
			if a := abs(out); a > peak {
				peak = a
			}
		}
	}
	if peak <= 1.0 {
		t.Fatalf("HF shelf did not boost a Nyquist-rate tone: peak = %v", peak)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
