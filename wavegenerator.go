package klatt

import (
	"math"

	"github.com/dengopaiv/manatu/internal/dsp"
	"github.com/dengopaiv/manatu/internal/runtimeopt"
)

// WaveGenerator renders interpolated frames pulled from a FrameManager into
// signed 16-bit PCM, one sample at a time, running the full voicing,
// filtering, and limiting pipeline of §4.2.
type WaveGenerator struct {
	sampleRate float64

	frameManager *FrameManager

	voice    *voiceSource
	dcBlock  *dsp.DCBlock
	tilt     *dsp.Tilt
	tracheal *dsp.Tracheal
	trill    *dsp.Trill

	cascade  *cascadeChain
	parallel *parallelChain

	cascadeShelf *dsp.HFShelf
	cascadeDuck  *dsp.Duck

	fricNoise *dsp.ColoredNoise
	burst     *dsp.Burst

	limiter *dsp.Limiter

	prevPreGain float64
}

// NewWaveGenerator returns a WaveGenerator configured for sampleRate. It
// enables process-wide denormal suppression as a side effect of the first
// construction, matching the teacher's construction-time initialization.
func NewWaveGenerator(sampleRate float64) *WaveGenerator {
	runtimeopt.EnableDenormalSuppression()

	noise := dsp.NewNoise()
	return &WaveGenerator{
		sampleRate: sampleRate,

		voice:    newVoiceSource(sampleRate, noise),
		dcBlock:  dsp.NewDCBlock(sampleRate),
		tilt:     dsp.NewTilt(sampleRate),
		tracheal: dsp.NewTracheal(),
		trill:    dsp.NewTrill(sampleRate),

		cascade:  newCascadeChain(sampleRate),
		parallel: newParallelChain(),

		cascadeShelf: dsp.NewHFShelf(sampleRate),
		cascadeDuck:  dsp.NewDuck(sampleRate),

		fricNoise: dsp.NewColoredNoise(noise),
		burst:     dsp.NewBurst(sampleRate, noise),

		limiter: dsp.NewLimiter(sampleRate),
	}
}

// SetFrameManager wires the FrameManager this generator pulls frames from.
// It must be called before the first Generate call.
func (w *WaveGenerator) SetFrameManager(fm *FrameManager) {
	w.frameManager = fm
}

// Generate writes up to len(out) signed 16-bit samples into out and returns
// the count actually written. A count shorter than len(out) means the
// frame queue ran dry partway through; the caller should treat the
// remainder of out as not yet produced.
func (w *WaveGenerator) Generate(out []int16) int {
	if w.frameManager == nil {
		return 0
	}
	for i := range out {
		frame, ok := w.frameManager.CurrentFrame()
		if !ok {
			return i
		}
		out[i] = w.renderSample(&frame)
	}
	return len(out)
}

func (w *WaveGenerator) renderSample(f *Frame) int16 {
	sr := w.sampleRate

	voice := w.voice.next(f)
	voice = w.dcBlock.Process(voice)
	w.tilt.SetTilt(f.SpectralTiltDb)
	voice = w.tilt.Process(voice)
	w.tracheal.SetParams(f.TrachealPole1Freq, f.TrachealPole1Bw, f.TrachealZero1Freq, f.TrachealZero1Bw,
		f.TrachealPole2Freq, f.TrachealPole2Bw, f.TrachealZero2Freq, f.TrachealZero2Bw, sr)
	voice = w.tracheal.Process(voice)

	trillVal := w.trill.Next(f.TrillRate, f.TrillDepth)
	voice *= trillVal

	preGain := f.PreFormantGain * trillVal
	if preGain < 0.01 {
		w.cascade.decay(0.95)
		w.parallel.decay(0.95)
	}
	if w.prevPreGain < 0.005 && preGain > 0.01 {
		w.cascade.reset()
		w.parallel.reset()
	}
	w.prevPreGain = preGain

	cascadeOut := w.cascade.process(f, w.voice.glottisOpen, voice*preGain, sr)

	duck := w.cascadeDuck.Gain(f.BurstAmplitude, f.FricationAmplitude, f.VoiceAmplitude)
	cascadeOut *= duck
	cascadeOut = w.cascadeShelf.Process(cascadeOut)

	fric := w.fricNoise.Next(f.NoiseFilterFreq, f.NoiseFilterBw, sr) * 0.3 * f.FricationAmplitude
	burst := w.burst.Next(f.BurstAmplitude, f.BurstDuration, f.BurstFilterFreq, f.BurstFilterBw, f.BurstNoiseColor)

	parallelIn := (fric+burst)*preGain + voice*f.ParallelVoiceMix*preGain
	parallelOut := w.parallel.process(f, parallelIn, sr)

	out := (cascadeOut + parallelOut) * f.OutputGain
	scaled := out * 4000
	limited := w.limiter.Process(scaled, preGain)

	return int16(math.Round(clamp(limited, -32767, 32767)))
}
