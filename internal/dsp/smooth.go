// Package dsp holds the filter and source primitives the Klatt core's
// cascade and parallel chains are built from. Primitives are not
// polymorphic: where the teacher would have used a subtype, a mode tag
// picks the behavior of an otherwise identical struct.
package dsp

import "math"

// Smoothstep returns the quintic smoothstep of t (expected in [0,1]):
// C² at both endpoints, s(0)=0, s(1)=1, s'(0)=s'(1)=0, s''(0)=s''(1)=0.
func Smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// OnePole is a one-pole exponential smoother, y += coef*(target-y), used
// throughout the engine wherever a parameter needs to glide toward a target
// over a short, fixed time constant (cascade duck, glottal-open tracking)
// rather than a filter response. The limiter applies the same update rule to
// its own gain field without using this type.
type OnePole struct {
	y float64
}

// CoefFromTimeConstant converts a time constant in seconds to the
// per-sample smoothing coefficient for OnePole.Step, at the given sample rate.
func CoefFromTimeConstant(tauSeconds, sampleRate float64) float64 {
	if tauSeconds <= 0 {
		return 1
	}
	return 1 - math.Exp(-1/(tauSeconds*sampleRate))
}

// Step advances the smoother toward target by coef and returns the new value.
func (p *OnePole) Step(target, coef float64) float64 {
	p.y += coef * (target - p.y)
	return p.y
}

// Value returns the smoother's current value without advancing it.
func (p *OnePole) Value() float64 { return p.y }

// Reset sets the smoother to v, with no transient.
func (p *OnePole) Reset(v float64) { p.y = v }
