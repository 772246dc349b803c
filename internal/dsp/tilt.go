package dsp

import "math"

// Tilt applies spectral tilt (§4.2.2) as two cascaded 1-pole low-pass
// filters, bypassed below 1.5 dB. The cutoff is chosen so the squared
// magnitude at 5 kHz equals the target linear attenuation.
type Tilt struct {
	sampleRate float64
	tiltDb     float64
	alpha      float64
	y1, y2     float64
}

// NewTilt returns a Tilt configured for sampleRate.
func NewTilt(sampleRate float64) *Tilt {
	return &Tilt{sampleRate: sampleRate}
}

// SetTilt updates the target tilt in dB, recomputing alpha only if it changed.
func (t *Tilt) SetTilt(tiltDb float64) {
	if tiltDb == t.tiltDb {
		return
	}
	t.tiltDb = tiltDb

	if tiltDb < 1.5 {
		return
	}

	a := math.Pow(10, -tiltDb/20)
	if a <= 0.001 {
		a = 0.001
	}
	fc := 5000 / math.Sqrt(1/a-1)
	t.alpha = math.Exp(-2 * math.Pi * fc / t.sampleRate)
}

// Process runs one sample through both cascaded poles, bypassing when the
// configured tilt is below 1.5 dB.
func (t *Tilt) Process(x float64) float64 {
	if t.tiltDb < 1.5 {
		return x
	}
	t.y1 = (1-t.alpha)*x + t.alpha*t.y1
	t.y2 = (1-t.alpha)*t.y1 + t.alpha*t.y2
	return t.y2
}

// Reset clears the filter's memory.
func (t *Tilt) Reset() {
	t.y1, t.y2 = 0, 0
}
