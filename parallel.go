package klatt

import "github.com/dengopaiv/manatu/internal/dsp"

// parallelChain is the summed-bandpass formant path (§4.2.2): six
// independently-amplitude-scaled bandpass resonators, combined and passed
// through an anti-resonator, then cross-faded against the raw (halved)
// input by ParallelBypass so unfiltered noise can leak through around the
// formant structure for fricatives.
type parallelChain struct {
	r1, r2, r3, r4, r5, r6 *dsp.SVF
	anti                   *dsp.SVF
}

func newParallelChain() *parallelChain {
	return &parallelChain{
		r1:   dsp.NewSVF(dsp.ModeBandpass),
		r2:   dsp.NewSVF(dsp.ModeBandpass),
		r3:   dsp.NewSVF(dsp.ModeBandpass),
		r4:   dsp.NewSVF(dsp.ModeBandpass),
		r5:   dsp.NewSVF(dsp.ModeBandpass),
		r6:   dsp.NewSVF(dsp.ModeBandpass),
		anti: dsp.NewSVF(dsp.ModeAnti),
	}
}

func (p *parallelChain) process(f *Frame, in, sampleRate float64) float64 {
	in /= 2

	var out float64
	p.r1.SetParams(f.PF1Freq, f.PF1Bw, sampleRate)
	out += p.r1.Process(in) * f.PF1Amp
	p.r2.SetParams(f.PF2Freq, f.PF2Bw, sampleRate)
	out += p.r2.Process(in) * f.PF2Amp
	p.r3.SetParams(f.PF3Freq, f.PF3Bw, sampleRate)
	out += p.r3.Process(in) * f.PF3Amp
	p.r4.SetParams(f.PF4Freq, f.PF4Bw, sampleRate)
	out += p.r4.Process(in) * f.PF4Amp
	p.r5.SetParams(f.PF5Freq, f.PF5Bw, sampleRate)
	out += p.r5.Process(in) * f.PF5Amp
	p.r6.SetParams(f.PF6Freq, f.PF6Bw, sampleRate)
	out += p.r6.Process(in) * f.PF6Amp

	p.anti.SetParams(f.ParallelAntiFreq, f.ParallelAntiBw, sampleRate)
	out = p.anti.Process(out)

	return fadeAt(out, in, f.ParallelBypass)
}

func (p *parallelChain) decay(factor float64) {
	p.r1.Decay(factor)
	p.r2.Decay(factor)
	p.r3.Decay(factor)
	p.r4.Decay(factor)
	p.r5.Decay(factor)
	p.r6.Decay(factor)
	p.anti.Decay(factor)
}

func (p *parallelChain) reset() {
	p.r1.Reset()
	p.r2.Reset()
	p.r3.Reset()
	p.r4.Reset()
	p.r5.Reset()
	p.r6.Reset()
	p.anti.Reset()
}
