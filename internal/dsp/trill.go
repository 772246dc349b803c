package dsp

import "math"

// Trill is a cosine amplitude LFO modeling the aerodynamic oscillation of
// trilled consonants. It modulates both voice amplitude and the vocal-tract
// gate between 1.0 (fully open) and 1-depth (maximally closed).
type Trill struct {
	sampleRate float64
	phase      float64
}

// NewTrill returns a Trill configured for sampleRate.
func NewTrill(sampleRate float64) *Trill {
	return &Trill{sampleRate: sampleRate}
}

// Next advances the LFO and returns its current modulation factor. Rate <=
// 0 or depth <= 0 yields 1 (no modulation) without advancing the phase.
func (t *Trill) Next(rate, depth float64) float64 {
	if rate <= 0 || depth <= 0 {
		return 1
	}
	t.phase = math.Mod(t.phase+rate/t.sampleRate, 1)
	return 1 - depth*0.5*(1-math.Cos(2*math.Pi*t.phase))
}
