package dsp

import "math"

// PhaseGen accumulates a [0,1) phase at a given frequency, remembering the
// phase increment of its last step for use by PolyBLEP at the caller's
// oversampled rate.
type PhaseGen struct {
	sampleRate float64
	phase      float64
	dt         float64
}

// NewPhaseGen returns a PhaseGen for sampleRate, starting at phase 0.
func NewPhaseGen(sampleRate float64) *PhaseGen {
	return &PhaseGen{sampleRate: sampleRate}
}

// Next advances the phase by frequency/sampleRate (frequency floored to 1 Hz
// to avoid a zero or negative increment) and returns the new phase.
func (p *PhaseGen) Next(frequency float64) float64 {
	if frequency < 1 {
		frequency = 1
	}
	p.dt = frequency / p.sampleRate
	p.phase = math.Mod(p.phase+p.dt, 1)
	return p.phase
}

// Dt returns the phase increment used by the most recent call to Next.
func (p *PhaseGen) Dt() float64 {
	return p.dt
}
