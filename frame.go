package klatt

// GlottalSource selects which voicing source model WaveGenerator drives the
// cascade/parallel chains with. GlottalSourceLF is the default, evolved
// model (§4.2.1): a four-phase Liljencrants-Fant waveform, oversampled 4x
// and PolyBLEP-corrected. GlottalSourceImpulsive reproduces the teacher's
// legacy critically-damped impulse-train source and exists for low-cost
// previewing and for regression tests pinned against the legacy timbre.
type GlottalSource int

const (
	GlottalSourceLF GlottalSource = iota
	GlottalSourceImpulsive
)

// Frame is the complete articulation target for a moment in time. Fields are
// grouped by role. fadeFrame (interp.go) interpolates the float64 fields one
// by one, by name, with the hold-old-on-NaN rule of lerpParam; the step
// parameters are assigned the new target directly there, and GlottalSource
// (not a float64) switches to the new frame's value at once.
type Frame struct {
	// Voicing.
	F0                         float64 // fundamental frequency, Hz
	F0End                      float64 // fundamental frequency at end of frame, Hz
	F0Mid                      float64 // mid-frame fundamental frequency; >0 enables a three-point contour
	VibratoRate                float64 // vibrato rate, Hz
	VibratoDepth               float64 // vibrato depth, 0-1
	VoiceAmplitude             float64 // amplitude of the glottal + turbulence source
	VoiceTurbulenceAmplitude   float64 // amplitude of aspiration turbulence mixed into voicing
	GlottalOpenQuotient        float64 // fraction of the pitch period the glottis is open
	SinusoidalVoicingAmplitude float64 // amplitude of a pure sine at F0, for voicebars

	// Aspiration.
	AspirationAmplitude  float64
	AspirationFilterFreq float64 // 0 selects the pink-noise fallback
	AspirationFilterBw   float64

	// Voice quality (Klatt-derived).
	SpectralTiltDb     float64 // dB of high-frequency rolloff in the voicing source
	Flutter            float64 // 0-1
	OpenQuotientShape  float64 // carried and interpolated; the LF source does not read it
	SpeedQuotient      float64 // carried and interpolated; the LF source does not read it
	Diplophonia        float64 // 0-1, alternating long/short pitch periods
	LFRd               float64 // LF model Rd, 0.3-2.7; 0 means unvoiced

	// Subglottal / tracheal coupling.
	TrachealPole1Freq float64
	TrachealPole1Bw   float64
	TrachealPole2Freq float64
	TrachealPole2Bw   float64
	TrachealZero1Freq float64
	TrachealZero1Bw   float64
	TrachealZero2Freq float64
	TrachealZero2Bw   float64

	// Pitch-synchronous F1 modulation, added during the glottal open phase.
	DeltaF1 float64
	DeltaB1 float64

	// Stop burst.
	BurstAmplitude  float64
	BurstDuration   float64 // 0-1, maps to 5-20 ms
	BurstFilterFreq float64
	BurstFilterBw   float64
	BurstNoiseColor float64 // 0-1, 0 white, 1 pink

	// Cascade formants.
	CF1, CB1 float64
	CF2, CB2 float64
	CF3, CB3 float64
	CF4, CB4 float64
	CF5, CB5 float64
	CF6, CB6 float64

	NasalZeroFreq float64
	NasalZeroBw   float64
	NasalPoleFreq float64
	NasalPoleBw   float64
	NasalPoleAmp  float64 // blend of the nasal pole against the dry input ("caNP")

	// Frication source and parallel formants.
	NoiseFilterFreq    float64 // center frequency of frication-noise bandpass
	NoiseFilterBw      float64
	FricationAmplitude float64

	PF1Freq, PF1Bw, PF1Amp float64
	PF2Freq, PF2Bw, PF2Amp float64
	PF3Freq, PF3Bw, PF3Amp float64
	PF4Freq, PF4Bw, PF4Amp float64
	PF5Freq, PF5Bw, PF5Amp float64
	PF6Freq, PF6Bw, PF6Amp float64

	ParallelAntiFreq float64
	ParallelAntiBw   float64
	ParallelBypass   float64 // 0-1
	ParallelVoiceMix float64

	// Trill.
	TrillRate  float64 // 10-40 Hz
	TrillDepth float64 // 0-1

	// Gains.
	PreFormantGain float64 // vocal-tract gate; 0 mutes the source into the chains
	OutputGain     float64 // master output gain

	// GlottalSource selects the voicing model; see GlottalSource.
	GlottalSource GlottalSource
}

// silentFrame is the synthetic null frame FrameManager is initialized with.
// All gains are zero so it contributes no energy; formants sit at mid-vowel
// defaults so a subsequent fade-in has something sane to interpolate from.
func silentFrame() Frame {
	return Frame{
		F0: 100, F0End: 100,
		CF1: 500, CB1: 60,
		CF2: 1500, CB2: 90,
		CF3: 2500, CB3: 150,
		CF4: 3250, CB4: 200,
		CF5: 3700, CB5: 200,
		CF6: 4990, CB6: 1000,
		NasalZeroFreq: 280, NasalZeroBw: 1000,
		NasalPoleFreq: 280, NasalPoleBw: 1000,
		PF1Bw: 60, PF2Bw: 90, PF3Bw: 150, PF4Bw: 200, PF5Bw: 200, PF6Bw: 1000,
	}
}

// FrameRequest is a queue entry: a target Frame plus the timing and
// bookkeeping FrameManager needs to fade into and sustain it (§3).
type FrameRequest struct {
	MinSamples  int  // floored to 1; samples to sustain once promoted
	FadeSamples int  // floored to 1; samples to cross-fade in from the prior frame
	IsNull      bool // a null request reuses the tail of the prior frame with a muted source
	Frame       Frame
	UserIndex   int // opaque caller-defined marker, returned by FrameManager.LastUserIndex

	hasContour bool
	pitchInc   float64 // linear F0 glide per sample over [0, half) or the whole sustain
	pitchInc2  float64 // glide per sample over [half, MinSamples) when hasContour
}

func clampMin1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// computePitchIncrements derives the per-sample F0 glide(s) for this
// request from its Frame.F0/F0Mid/F0End, per §4.1.
func (r *FrameRequest) computePitchIncrements() {
	r.MinSamples = clampMin1(r.MinSamples)
	r.FadeSamples = clampMin1(r.FadeSamples)

	if r.Frame.F0Mid > 0 {
		r.hasContour = true
		half := r.MinSamples / 2
		if half > 0 {
			r.pitchInc = (r.Frame.F0Mid - r.Frame.F0) / float64(half)
			r.pitchInc2 = (r.Frame.F0End - r.Frame.F0Mid) / float64(r.MinSamples-half)
		} else {
			r.pitchInc = 0
			r.pitchInc2 = 0
		}
		return
	}

	r.hasContour = false
	r.pitchInc = (r.Frame.F0End - r.Frame.F0) / float64(r.MinSamples)
	r.pitchInc2 = 0
}
