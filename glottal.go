package klatt

import (
	"math"

	"github.com/dengopaiv/manatu/internal/dsp"
)

// voiceSource produces the combined glottal, aspiration, and sinusoidal
// voicing signal for one sample (§4.2.1). The glottal component is driven
// by the four-phase Liljencrants-Fant model when Frame.LFRd > 0, rendered
// at 4x oversampling with PolyBLEP correction at both waveform
// discontinuities and decimated back down through two halfband stages.
type voiceSource struct {
	sampleRate float64

	pitch      *dsp.PhaseGen
	vibrato    *dsp.PhaseGen
	sinusoidal *dsp.PhaseGen
	aspiration *dsp.ColoredNoise
	jitter     *dsp.JitterShimmer

	lastCyclePos    float64
	periodAlternate bool

	hbStage1, hbStage2 dsp.Halfband

	// glottisOpen reports whether the most recently produced sample fell
	// within the LF model's open phase; Cascade consumes it for the
	// pitch-synchronous F1 modulation blend.
	glottisOpen bool

	// impulsiveTick counts 4x-oversampled ticks since the last pitch-period
	// wrap, and impP1/impP2 hold the critically-damped low-pass's delay
	// line, for the GlottalSourceImpulsive path.
	impulsiveTick int
	impP1, impP2  float64
}

func newVoiceSource(sampleRate float64, noise *dsp.Noise) *voiceSource {
	return &voiceSource{
		sampleRate: sampleRate,
		pitch:      dsp.NewPhaseGen(sampleRate),
		vibrato:    dsp.NewPhaseGen(sampleRate),
		sinusoidal: dsp.NewPhaseGen(sampleRate),
		aspiration: dsp.NewColoredNoise(noise),
		jitter:     dsp.NewJitterShimmer(noise),
	}
}

func (v *voiceSource) next(f *Frame) float64 {
	vibrato := math.Sin(v.vibrato.Next(f.VibratoRate)*2*math.Pi)*0.06*f.VibratoDepth + 1
	jitterMod := v.jitter.PitchMod(f.Flutter)

	diplophoniaMod := 1.0
	if f.Diplophonia > 0 {
		if v.periodAlternate {
			diplophoniaMod = 1 + f.Diplophonia*0.10
		} else {
			diplophoniaMod = 1 - f.Diplophonia*0.10
		}
	}

	voicePos := v.pitch.Next(f.F0 * vibrato * jitterMod * diplophoniaMod)
	newCycle := voicePos < v.lastCyclePos-0.5
	if newCycle {
		v.periodAlternate = !v.periodAlternate
		v.jitter.OnNewCycle()
	}
	v.lastCyclePos = voicePos

	var aspiration float64
	if f.AspirationFilterFreq > 0 {
		aspiration = v.aspiration.Next(f.AspirationFilterFreq, f.AspirationFilterBw, v.sampleRate) * 0.2
	} else {
		aspiration = v.aspiration.Next(0, 1000, v.sampleRate) * 0.2
	}
	turbulence := aspiration * f.VoiceTurbulenceAmplitude

	glottal := v.glottalWave(f, voicePos, newCycle)

	if !v.glottisOpen {
		turbulence *= 0.01
	}
	voice := glottal + turbulence
	voice *= f.VoiceAmplitude * v.jitter.AmpMod(f.Flutter)

	if f.SinusoidalVoicingAmplitude > 0 {
		sinPhase := v.sinusoidal.Next(f.F0 * vibrato)
		voice += math.Sin(sinPhase*2*math.Pi) * f.SinusoidalVoicingAmplitude
	}

	return aspiration*f.AspirationAmplitude + voice
}

func (v *voiceSource) glottalWave(f *Frame, phase float64, newCycle bool) float64 {
	if f.GlottalSource == GlottalSourceImpulsive {
		return v.impulsiveWave(f, newCycle)
	}

	if f.LFRd <= 0 {
		v.glottisOpen = false
		return 0
	}

	rd := f.LFRd
	if rd < 0.3 {
		rd = 0.3
	}
	if rd > 2.7 {
		rd = 2.7
	}

	rap := clamp((-1+4.8*rd)/100, 0.01, 0.20)
	rkp := clamp((22.4+11.8*rd)/100, 0.20, 0.80)
	rgp := clamp(1/(4*(0.11*rd/(0.5+1.2*rkp)-rap)), 0.50, 3.00)

	tp := 1 / (2 * rgp)
	if tp > 0.45 {
		tp = 0.45
	}
	te := tp * (1 + rkp)
	if te > 0.98 {
		te = 0.98
	}
	if te < tp+0.05 {
		te = tp + 0.05
	}
	ta := rap

	epsilon := 1 / (ta*(1-te) + 0.001)
	ampNorm := 1 / (0.5 + 0.3*rd)

	v.glottisOpen = phase < te

	dt := v.pitch.Dt()
	dtOS := dt * 0.25

	phases := [4]float64{
		math.Mod(phase-1.5*dtOS+2, 1),
		math.Mod(phase-0.5*dtOS+1, 1),
		math.Mod(phase+0.5*dtOS, 1),
		math.Mod(phase+1.5*dtOS, 1),
	}

	var samples [4]float64
	for k, ph := range phases {
		gw := lfWaveform(ph, tp, te, epsilon, ampNorm)
		s := gw*2 - ampNorm

		s -= dsp.PolyBLEP(ph, dtOS) * ampNorm * 0.5

		if te > 0 && dtOS > 0 {
			phaseRelTe := math.Mod(ph-te+1, 1)
			s -= dsp.PolyBLEP(phaseRelTe, dtOS) * ampNorm
		}

		samples[k] = s
	}

	d0 := v.hbStage1.Process(samples[0], samples[1])
	d1 := v.hbStage1.Process(samples[2], samples[3])
	return v.hbStage2.Process(d0, d1)
}

// impulsiveDoublet is the fixed three-tick excitation the teacher's
// impulsiveSource fires at the start of every pitch period: a rise then a
// fall, approximating the derivative of a glottal flow pulse before it is
// smoothed by the low-pass below.
var impulsiveDoublet = [3]float64{0, 1, -1}

// impulsiveWave drives the cascade with a critically-damped low-passed
// impulse train instead of the oversampled LF model, grounded on the
// teacher's impulsiveSource/rgl (klatt.go: a doublet excitation through a
// two-pole resonator whose coefficients are reset once per pitch period via
// setABC(rgl, 0, sampleRate/nopen)). The bandwidth here is re-derived in the
// 4x-oversampled domain this engine already filters and decimates in,
// rather than reusing the teacher's mixed-rate formula verbatim.
func (v *voiceSource) impulsiveWave(f *Frame, newCycle bool) float64 {
	dt := v.pitch.Dt()
	if dt <= 0 {
		v.glottisOpen = false
		return 0
	}
	dtOS := dt * 0.25

	oq := f.GlottalOpenQuotient
	if oq <= 0 {
		oq = 0.5
	}
	oq = clamp(oq, 0.05, 0.95)

	if newCycle {
		v.impulsiveTick = 0
	}

	openTicks := oq / dtOS
	if openTicks < 2 {
		openTicks = 2
	}
	v.glottisOpen = v.impulsiveTick < int(openTicks)

	// Critically-damped two-pole low-pass at frequency 0, bandwidth set
	// so the pulse narrows as the open phase shortens (shorter open
	// phase -> wider bandwidth -> sharper pulse), mirroring the
	// teacher's setABC(rgl, 0, sampleRate/nopen).
	bw := (4 * v.sampleRate) / openTicks
	r := math.Exp(-math.Pi * bw / (4 * v.sampleRate))
	a := (1 - r) * (1 - r)
	b := 2 * r
	c := -r * r

	var samples [4]float64
	for k := 0; k < 4; k++ {
		excite := 0.0
		if v.impulsiveTick < len(impulsiveDoublet) {
			excite = impulsiveDoublet[v.impulsiveTick]
		}
		v.impulsiveTick++

		x := a*excite + b*v.impP1 + c*v.impP2
		v.impP2 = v.impP1
		v.impP1 = x
		// Dividing by the input coefficient a (the filter itself has
		// unity DC gain) keeps the rendered pulse amplitude roughly
		// constant as bandwidth changes with the open quotient, the same
		// role the teacher's post-hoc (nopen*0.00833)^2 gain scale plays
		// on rgl.a.
		samples[k] = x / a
	}

	d0 := v.hbStage1.Process(samples[0], samples[1])
	d1 := v.hbStage1.Process(samples[2], samples[3])
	return v.hbStage2.Process(d0, d1)
}

// lfWaveform evaluates the Liljencrants-Fant glottal flow waveform at phase
// u given timing parameters derived from Rd.
func lfWaveform(u, tp, te, epsilon, ampNorm float64) float64 {
	switch {
	case u < tp:
		return 0.5 * (1 - math.Cos(math.Pi*u/tp)) * ampNorm
	case u < te:
		return 0.5 * (1 + math.Cos(math.Pi*(u-tp)/(te-tp))) * ampNorm
	default:
		tRet := (u - te) / (1 - te)
		decay := math.Exp(-epsilon * tRet * (1 - te))
		fade := 1.0
		if tRet > 0.7 {
			fade = 0.5 * (1 + math.Cos(math.Pi*(tRet-0.7)/0.3))
		}
		return 0.5 * decay * fade * ampNorm
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
