package dsp

import (
	"math"
	"testing"
)

func rms(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestBurstEnvelopeDecaysMonotonically(t *testing.T) {
	const sr = 48000
	b := NewBurst(sr, NewNoise())

	msSamples := sr / 1000
	var windows [][]float64
	b.Next(0, 0.5, 1500, 1000, 0) // lastAmp=0, primes the rising-edge trigger below
	for w := 0; w < 6; w++ {
		win := make([]float64, 2*msSamples)
		for i := range win {
			win[i] = b.Next(0.8, 0.5, 1500, 1000, 0)
		}
		windows = append(windows, win)
	}

	for w := 1; w < len(windows); w++ {
		prev, cur := rms(windows[w-1]), rms(windows[w])
		if cur >= prev {
			t.Fatalf("burst envelope did not decay: window %d RMS %v, window %d RMS %v", w-1, prev, w, cur)
		}
	}
}

func TestBurstSelfTerminates(t *testing.T) {
	const sr = 48000
	b := NewBurst(sr, NewNoise())
	b.Next(0.8, 0.25, 1500, 1000, 0) // trigger, duration ~= 5+0.25*15 = 8.75ms

	durationSamples := int((5 + 0.25*15) / 1000 * sr)
	for i := 0; i < durationSamples+100; i++ {
		b.Next(0.8, 0.25, 1500, 1000, 0)
	}
	out := b.Next(0.8, 0.25, 1500, 1000, 0)
	if out != 0 {
		t.Fatalf("burst did not self-terminate after its envelope completed: got %v", out)
	}
}

func TestBurstDoesNotRetriggerWhileActive(t *testing.T) {
	b := NewBurst(48000, NewNoise())
	b.Next(0.8, 1.0, 1500, 1000, 0)
	first := b.phase
	b.Next(0.8, 1.0, 1500, 1000, 0)
	if b.phase <= first {
		t.Fatalf("burst phase did not advance on the second call while active")
	}
}
