package dsp

import "math"

// SVFMode tags the output tap of an SVF resonator. The teacher's Resonator
// picked its behavior by which a/b/c triplet setABC or setZeroABC wrote; the
// ZDF form instead shares one pair of integrator coefficients across taps
// and picks the tap (and, for AntiResonator, the combination) by mode.
type SVFMode int

const (
	// ModeBandpass is used for parallel formants and noise bandpasses.
	ModeBandpass SVFMode = iota
	// ModeAllPole is unity-DC-gain lowpass, used in series for cascade formants.
	ModeAllPole
	// ModeAnti is an anti-resonator (notch), used for nasal/tracheal zeros.
	ModeAnti
)

// SVF is Zavalishin's zero-delay-feedback state-variable filter in its
// canonical two-integrator form (§4.2.2). Coefficients are cached and only
// recomputed when frequency or bandwidth actually change, matching the
// teacher's setABC/Resonator split between coefficient setup and the
// per-sample resonator() step.
type SVF struct {
	mode SVFMode

	freq float64
	bw   float64

	a1, a2, a3 float64

	s1, s2 float64
}

// NewSVF returns an SVF in the given mode, initialized to bypass (f<=0).
func NewSVF(mode SVFMode) *SVF {
	return &SVF{mode: mode}
}

// SetParams updates center frequency and bandwidth, recomputing coefficients
// only if either actually changed.
func (f *SVF) SetParams(freq, bw, sampleRate float64) {
	if freq == f.freq && bw == f.bw {
		return
	}
	f.freq = freq
	f.bw = bw

	if freq <= 0 || bw <= 0 {
		return
	}

	omega := math.Pi * freq / sampleRate
	g := math.Tan(omega)
	if g > 10 {
		g = 10
	}
	d := bw / freq
	f.a1 = 1 / (1 + g*(g+d))
	f.a2 = g * f.a1
	f.a3 = g * f.a2
}

// Process runs one sample through the filter, returning the tap selected by
// mode. Bypass (pass the input through unchanged) when freq<=0 or bw<=0.
func (f *SVF) Process(in float64) float64 {
	if f.freq <= 0 || f.bw <= 0 {
		return in
	}

	v3 := in - f.s2
	v1 := f.a1*f.s1 + f.a2*v3 // bandpass
	v2 := f.s2 + f.a2*f.s1 + f.a3*v3 // lowpass
	f.s1 = 2*v1 - f.s1
	f.s2 = 2*v2 - f.s2

	switch f.mode {
	case ModeAllPole:
		return v2
	case ModeAnti:
		return in - v1
	default:
		return v1
	}
}

// Reset zeroes the filter's internal state, discarding any ringing energy.
func (f *SVF) Reset() {
	f.s1, f.s2 = 0, 0
}

// Decay scales the filter's internal state toward zero by factor (expected
// in (0,1)) without resetting parameters, used to drain resonators during
// silence without an audible click.
func (f *SVF) Decay(factor float64) {
	f.s1 *= factor
	f.s2 *= factor
}

// CascadeBWCompensation widens a single-stage bandwidth so that two
// identical stages in series (FourthOrderSVF) restore the composite -3dB
// width narrowed by cascading.
const CascadeBWCompensation = 1.554

// FourthOrderSVF is two SVFs in series at the same center frequency, each
// with bandwidth pre-widened by CascadeBWCompensation, forming a 4th-order
// resonator used for the lower cascade formants (F1-F3).
type FourthOrderSVF struct {
	stage1, stage2 *SVF
}

// NewFourthOrderSVF returns a fourth-order resonator in the given mode.
func NewFourthOrderSVF(mode SVFMode) *FourthOrderSVF {
	return &FourthOrderSVF{stage1: NewSVF(mode), stage2: NewSVF(mode)}
}

// SetParams sets both stages to freq with bw widened by CascadeBWCompensation.
func (f *FourthOrderSVF) SetParams(freq, bw, sampleRate float64) {
	compBw := bw * CascadeBWCompensation
	f.stage1.SetParams(freq, compBw, sampleRate)
	f.stage2.SetParams(freq, compBw, sampleRate)
}

// Process runs one sample through both stages in series.
func (f *FourthOrderSVF) Process(in float64) float64 {
	return f.stage2.Process(f.stage1.Process(in))
}

// Reset zeroes both stages' state.
func (f *FourthOrderSVF) Reset() {
	f.stage1.Reset()
	f.stage2.Reset()
}

// Decay scales both stages' state toward zero by factor.
func (f *FourthOrderSVF) Decay(factor float64) {
	f.stage1.Decay(factor)
	f.stage2.Decay(factor)
}
