package dsp

// Duck computes the cascade-ducking gain (§4.2.2): the cascade output is
// attenuated while a burst or frication noise source is active and voicing
// is weak, to avoid ringing spikes. A one-pole smoother at roughly 1 ms
// avoids an audible step at the duck's attack/release.
type Duck struct {
	smoother OnePole
	coef     float64
}

// NewDuck returns a Duck configured for sampleRate with a ~1 ms smoothing
// time constant.
func NewDuck(sampleRate float64) *Duck {
	return &Duck{coef: CoefFromTimeConstant(0.001, sampleRate)}
}

// Gain computes and smooths the duck gain for one sample from the current
// burst amplitude, frication amplitude, and voice amplitude.
func (d *Duck) Gain(burstAmp, fricAmp, voiceAmp float64) float64 {
	noiseAmp := burstAmp
	if fricAmp > noiseAmp {
		noiseAmp = fricAmp
	}
	target := 1 - 0.7*noiseAmp*(1-voiceAmp)
	return d.smoother.Step(target, d.coef)
}

// Reset snaps the duck gain to 1 with no transient.
func (d *Duck) Reset() {
	d.smoother.Reset(1)
}
