package cmd

import klatt "github.com/dengopaiv/manatu"

// frameMessage is the JSON control message a streaming client sends over
// the websocket connection to queue one articulation target. It mirrors
// klatt.Frame field-for-field except the eight tracheal pole/zero
// parameters, which it does not carry (they stay at zero, which bypasses
// the tracheal stages). It is the JSON counterpart to klattplay's YAML
// Segment (cmd/klattplay/cmd/script.go) — kept as a separate type because
// the two binaries serve different callers (a one-shot script file versus
// a live control channel) and must not share an import across cmd/ trees.
type frameMessage struct {
	Null  bool `json:"null"`
	Purge bool `json:"purge"`

	DurationMs float64 `json:"durationMs"`
	FadeMs     float64 `json:"fadeMs"`
	UserIndex  int     `json:"userIndex"`

	F0    float64 `json:"f0"`
	F0End float64 `json:"f0End"`
	F0Mid float64 `json:"f0Mid"`

	VibratoRate  float64 `json:"vibratoRate"`
	VibratoDepth float64 `json:"vibratoDepth"`

	VoiceAmplitude             float64 `json:"voiceAmplitude"`
	VoiceTurbulenceAmplitude   float64 `json:"voiceTurbulenceAmplitude"`
	GlottalOpenQuotient        float64 `json:"glottalOpenQuotient"`
	SinusoidalVoicingAmplitude float64 `json:"sinusoidalVoicingAmplitude"`

	AspirationAmplitude  float64 `json:"aspirationAmplitude"`
	AspirationFilterFreq float64 `json:"aspirationFilterFreq"`
	AspirationFilterBw   float64 `json:"aspirationFilterBw"`

	SpectralTiltDb    float64 `json:"spectralTiltDb"`
	Flutter           float64 `json:"flutter"`
	OpenQuotientShape float64 `json:"openQuotientShape"`
	SpeedQuotient     float64 `json:"speedQuotient"`
	Diplophonia       float64 `json:"diplophonia"`
	LFRd              float64 `json:"lfRd"`

	DeltaF1 float64 `json:"deltaF1"`
	DeltaB1 float64 `json:"deltaB1"`

	GlottalSource string `json:"glottalSource"`

	BurstAmplitude  float64 `json:"burstAmplitude"`
	BurstDuration   float64 `json:"burstDuration"`
	BurstFilterFreq float64 `json:"burstFilterFreq"`
	BurstFilterBw   float64 `json:"burstFilterBw"`
	BurstNoiseColor float64 `json:"burstNoiseColor"`

	CF1, CB1 float64
	CF2, CB2 float64
	CF3, CB3 float64
	CF4, CB4 float64
	CF5, CB5 float64
	CF6, CB6 float64

	NasalZeroFreq float64 `json:"nasalZeroFreq"`
	NasalZeroBw   float64 `json:"nasalZeroBw"`
	NasalPoleFreq float64 `json:"nasalPoleFreq"`
	NasalPoleBw   float64 `json:"nasalPoleBw"`
	NasalPoleAmp  float64 `json:"nasalPoleAmp"`

	NoiseFilterFreq    float64 `json:"noiseFilterFreq"`
	NoiseFilterBw      float64 `json:"noiseFilterBw"`
	FricationAmplitude float64 `json:"fricationAmplitude"`

	PF1Freq, PF1Bw, PF1Amp float64
	PF2Freq, PF2Bw, PF2Amp float64
	PF3Freq, PF3Bw, PF3Amp float64
	PF4Freq, PF4Bw, PF4Amp float64
	PF5Freq, PF5Bw, PF5Amp float64
	PF6Freq, PF6Bw, PF6Amp float64

	ParallelAntiFreq float64 `json:"parallelAntiFreq"`
	ParallelAntiBw   float64 `json:"parallelAntiBw"`
	ParallelBypass   float64 `json:"parallelBypass"`
	ParallelVoiceMix float64 `json:"parallelVoiceMix"`

	TrillRate  float64 `json:"trillRate"`
	TrillDepth float64 `json:"trillDepth"`

	PreFormantGain float64 `json:"preFormantGain"`
	OutputGain     float64 `json:"outputGain"`
}

func (m frameMessage) toFrameRequest(sampleRate float64) *klatt.FrameRequest {
	minSamples := int(m.DurationMs / 1000 * sampleRate)
	fadeSamples := int(m.FadeMs / 1000 * sampleRate)

	source := klatt.GlottalSourceLF
	if m.GlottalSource == "impulsive" {
		source = klatt.GlottalSourceImpulsive
	}

	return &klatt.FrameRequest{
		MinSamples:  minSamples,
		FadeSamples: fadeSamples,
		IsNull:      m.Null,
		UserIndex:   m.UserIndex,
		Frame: klatt.Frame{
			F0: m.F0, F0End: m.F0End, F0Mid: m.F0Mid,
			VibratoRate: m.VibratoRate, VibratoDepth: m.VibratoDepth,
			VoiceAmplitude:             m.VoiceAmplitude,
			VoiceTurbulenceAmplitude:   m.VoiceTurbulenceAmplitude,
			GlottalOpenQuotient:        m.GlottalOpenQuotient,
			SinusoidalVoicingAmplitude: m.SinusoidalVoicingAmplitude,
			AspirationAmplitude:        m.AspirationAmplitude,
			AspirationFilterFreq:       m.AspirationFilterFreq,
			AspirationFilterBw:         m.AspirationFilterBw,
			SpectralTiltDb:             m.SpectralTiltDb,
			Flutter:                    m.Flutter,
			OpenQuotientShape:          m.OpenQuotientShape,
			SpeedQuotient:              m.SpeedQuotient,
			Diplophonia:                m.Diplophonia,
			LFRd:                       m.LFRd,
			DeltaF1:                    m.DeltaF1,
			DeltaB1:                    m.DeltaB1,
			GlottalSource:              source,
			BurstAmplitude:             m.BurstAmplitude,
			BurstDuration:              m.BurstDuration,
			BurstFilterFreq:            m.BurstFilterFreq,
			BurstFilterBw:              m.BurstFilterBw,
			BurstNoiseColor:            m.BurstNoiseColor,
			CF1: m.CF1, CB1: m.CB1,
			CF2: m.CF2, CB2: m.CB2,
			CF3: m.CF3, CB3: m.CB3,
			CF4: m.CF4, CB4: m.CB4,
			CF5: m.CF5, CB5: m.CB5,
			CF6: m.CF6, CB6: m.CB6,
			NasalZeroFreq: m.NasalZeroFreq, NasalZeroBw: m.NasalZeroBw,
			NasalPoleFreq: m.NasalPoleFreq, NasalPoleBw: m.NasalPoleBw,
			NasalPoleAmp:       m.NasalPoleAmp,
			NoiseFilterFreq:    m.NoiseFilterFreq,
			NoiseFilterBw:      m.NoiseFilterBw,
			FricationAmplitude: m.FricationAmplitude,
			PF1Freq: m.PF1Freq, PF1Bw: m.PF1Bw, PF1Amp: m.PF1Amp,
			PF2Freq: m.PF2Freq, PF2Bw: m.PF2Bw, PF2Amp: m.PF2Amp,
			PF3Freq: m.PF3Freq, PF3Bw: m.PF3Bw, PF3Amp: m.PF3Amp,
			PF4Freq: m.PF4Freq, PF4Bw: m.PF4Bw, PF4Amp: m.PF4Amp,
			PF5Freq: m.PF5Freq, PF5Bw: m.PF5Bw, PF5Amp: m.PF5Amp,
			PF6Freq: m.PF6Freq, PF6Bw: m.PF6Bw, PF6Amp: m.PF6Amp,
			ParallelAntiFreq: m.ParallelAntiFreq, ParallelAntiBw: m.ParallelAntiBw,
			ParallelBypass:   m.ParallelBypass,
			ParallelVoiceMix: m.ParallelVoiceMix,
			TrillRate:        m.TrillRate, TrillDepth: m.TrillDepth,
			PreFormantGain: m.PreFormantGain,
			OutputGain:     m.OutputGain,
		},
	}
}
