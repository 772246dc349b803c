package klatt

import "github.com/dengopaiv/manatu/internal/dsp"

// cascadeChain is the series all-pole formant path (§4.2.2): nasal zero,
// nasal pole blended against the dry input, then F6 down to F1 in
// descending frequency order. F1-F3 run as fourth-order stages for a
// sharper 24 dB/octave rolloff; F4-F6 are plain second-order. F1's
// center/bandwidth are pushed up during the glottal open phase by
// DeltaF1/DeltaB1, smoothed across the open/closed transition so the
// modulation doesn't click.
type cascadeChain struct {
	nasalZero, nasalPole *dsp.SVF
	r6, r5, r4            *dsp.SVF
	r3, r2, r1            *dsp.FourthOrderSVF

	glottalBlend dsp.OnePole
	glottalCoef  float64
}

func newCascadeChain(sampleRate float64) *cascadeChain {
	return &cascadeChain{
		nasalZero: dsp.NewSVF(dsp.ModeAnti),
		nasalPole: dsp.NewSVF(dsp.ModeAllPole),
		r6:        dsp.NewSVF(dsp.ModeAllPole),
		r5:        dsp.NewSVF(dsp.ModeAllPole),
		r4:        dsp.NewSVF(dsp.ModeAllPole),
		r3:        dsp.NewFourthOrderSVF(dsp.ModeAllPole),
		r2:        dsp.NewFourthOrderSVF(dsp.ModeAllPole),
		r1:        dsp.NewFourthOrderSVF(dsp.ModeAllPole),

		glottalCoef: dsp.CoefFromTimeConstant(0.002, sampleRate),
	}
}

func (c *cascadeChain) process(f *Frame, glottisOpen bool, in, sampleRate float64) float64 {
	in /= 2

	c.nasalZero.SetParams(f.NasalZeroFreq, f.NasalZeroBw, sampleRate)
	n0 := c.nasalZero.Process(in)
	c.nasalPole.SetParams(f.NasalPoleFreq, f.NasalPoleBw, sampleRate)
	nasal := c.nasalPole.Process(n0)

	out := fadeAt(in, nasal, f.NasalPoleAmp)

	c.r6.SetParams(f.CF6, f.CB6, sampleRate)
	out = c.r6.Process(out)
	c.r5.SetParams(f.CF5, f.CB5, sampleRate)
	out = c.r5.Process(out)
	c.r4.SetParams(f.CF4, f.CB4, sampleRate)
	out = c.r4.Process(out)

	c.r3.SetParams(f.CF3, f.CB3, sampleRate)
	out = c.r3.Process(out)
	c.r2.SetParams(f.CF2, f.CB2, sampleRate)
	out = c.r2.Process(out)

	target := 0.0
	if glottisOpen {
		target = 1
	}
	blend := c.glottalBlend.Step(target, c.glottalCoef)
	f1 := f.CF1 + f.DeltaF1*blend
	b1 := f.CB1 + f.DeltaB1*blend
	c.r1.SetParams(f1, b1, sampleRate)
	out = c.r1.Process(out)

	return out
}

func (c *cascadeChain) decay(factor float64) {
	c.nasalZero.Decay(factor)
	c.nasalPole.Decay(factor)
	c.r6.Decay(factor)
	c.r5.Decay(factor)
	c.r4.Decay(factor)
	c.r3.Decay(factor)
	c.r2.Decay(factor)
	c.r1.Decay(factor)
}

func (c *cascadeChain) reset() {
	c.nasalZero.Reset()
	c.nasalPole.Reset()
	c.r6.Reset()
	c.r5.Reset()
	c.r4.Reset()
	c.r3.Reset()
	c.r2.Reset()
	c.r1.Reset()
}
