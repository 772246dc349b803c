package dsp

import "math"

// LimiterThreshold is -3 dB below full scale (§4.2.2, §8).
const LimiterThreshold = 32767 * 0.7079457843841379 // 32767 * 10^(-3/20)

// Limiter is a transparent peak limiter: a smoothed gain that attacks fast
// when the input exceeds the threshold and releases slowly otherwise, with
// a faster release during silence so the next burst isn't choked by a gain
// still recovering from the previous utterance.
type Limiter struct {
	sampleRate    float64
	gain          float64
	attackCoef    float64
	releaseCoef   float64
	fastReleaseCoef float64
}

// NewLimiter returns a Limiter configured for sampleRate, with a unity
// starting gain.
func NewLimiter(sampleRate float64) *Limiter {
	return &Limiter{
		sampleRate:      sampleRate,
		gain:            1,
		attackCoef:      CoefFromTimeConstant(0.0001, sampleRate),
		releaseCoef:     CoefFromTimeConstant(0.05, sampleRate),
		fastReleaseCoef: CoefFromTimeConstant(0.005, sampleRate),
	}
}

// Process limits one sample. preGain is the frame's pre-formant gain for
// this sample, used only to pick the fast-vs-normal release time constant.
func (l *Limiter) Process(x, preGain float64) float64 {
	absX := math.Abs(x)
	if absX > LimiterThreshold {
		l.gain += l.attackCoef * (LimiterThreshold/absX - l.gain)
	} else {
		coef := l.releaseCoef
		if preGain < 0.01 {
			coef = l.fastReleaseCoef
		}
		l.gain += coef * (1 - l.gain)
	}
	return x * l.gain
}

// Reset restores unity gain with no transient.
func (l *Limiter) Reset() {
	l.gain = 1
}
