package dsp

import "testing"

func TestNoiseWhiteBounded(t *testing.T) {
	n := NewNoise()
	for i := 0; i < 100000; i++ {
		w := n.White()
		if w < -1 || w >= 1 {
			t.Fatalf("white sample out of [-1,1): %v", w)
		}
	}
}

func TestNoiseWhiteIsDeterministic(t *testing.T) {
	a := NewNoise()
	b := NewNoise()
	for i := 0; i < 1000; i++ {
		if a.White() != b.White() {
			t.Fatalf("two fresh Noise generators diverged at sample %d", i)
		}
	}
}

func TestNoisePinkLowerHighFrequencyEnergyThanWhite(t *testing.T) {
	white := NewNoise()
	pink := NewNoise()

	hp := func(samples []float64) float64 {
		var energy, prev float64
		for _, s := range samples {
			d := s - prev
			prev = s
			energy += d * d
		}
		return energy
	}

	const n = 20000
	ws := make([]float64, n)
	ps := make([]float64, n)
	for i := range ws {
		ws[i] = white.White()
		ps[i] = pink.Pink()
	}
	if hp(ps) >= hp(ws) {
		t.Fatalf("pink noise did not show less high-frequency content than white: pink=%v white=%v", hp(ps), hp(ws))
	}
}

func TestColoredNoisePinkFallbackBelow100Hz(t *testing.T) {
	reference := NewNoise()
	c := NewColoredNoise(NewNoise())
	for i := 0; i < 100; i++ {
		want := reference.Pink()
		got := c.Next(50, 500, 48000)
		if got != want {
			t.Fatalf("colored noise below 100 Hz diverged from Pink() at sample %d: got %v, want %v", i, got, want)
		}
	}
}
