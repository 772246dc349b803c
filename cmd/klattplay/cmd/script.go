package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	klatt "github.com/dengopaiv/manatu"
)

// VoiceScript is the top-level YAML document klattplay renders. It is a
// flat sequence of segments, each fading into the next the way a caller
// scheduling live speech would queue FrameRequests one at a time.
type VoiceScript struct {
	Segments []Segment `yaml:"segments"`
}

// Segment mirrors the Frame fields a voice script author is likely to want
// to set directly; fields left at zero take Frame's zero value, which is
// silence for amplitude/gain fields and "off" for optional filters.
type Segment struct {
	Null bool `yaml:"null"`

	DurationMs float64 `yaml:"durationMs"`
	FadeMs     float64 `yaml:"fadeMs"`
	UserIndex  int     `yaml:"userIndex"`

	F0    float64 `yaml:"f0"`
	F0End float64 `yaml:"f0End"`
	F0Mid float64 `yaml:"f0Mid"`

	VibratoRate  float64 `yaml:"vibratoRate"`
	VibratoDepth float64 `yaml:"vibratoDepth"`

	VoiceAmplitude             float64 `yaml:"voiceAmplitude"`
	VoiceTurbulenceAmplitude   float64 `yaml:"voiceTurbulenceAmplitude"`
	GlottalOpenQuotient        float64 `yaml:"glottalOpenQuotient"`
	SinusoidalVoicingAmplitude float64 `yaml:"sinusoidalVoicingAmplitude"`

	AspirationAmplitude  float64 `yaml:"aspirationAmplitude"`
	AspirationFilterFreq float64 `yaml:"aspirationFilterFreq"`
	AspirationFilterBw   float64 `yaml:"aspirationFilterBw"`

	SpectralTiltDb    float64 `yaml:"spectralTiltDb"`
	Flutter           float64 `yaml:"flutter"`
	OpenQuotientShape float64 `yaml:"openQuotientShape"`
	SpeedQuotient     float64 `yaml:"speedQuotient"`
	Diplophonia       float64 `yaml:"diplophonia"`
	LFRd              float64 `yaml:"lfRd"`

	TrachealPole1Freq float64 `yaml:"trachealPole1Freq"`
	TrachealPole1Bw   float64 `yaml:"trachealPole1Bw"`
	TrachealPole2Freq float64 `yaml:"trachealPole2Freq"`
	TrachealPole2Bw   float64 `yaml:"trachealPole2Bw"`
	TrachealZero1Freq float64 `yaml:"trachealZero1Freq"`
	TrachealZero1Bw   float64 `yaml:"trachealZero1Bw"`
	TrachealZero2Freq float64 `yaml:"trachealZero2Freq"`
	TrachealZero2Bw   float64 `yaml:"trachealZero2Bw"`

	DeltaF1 float64 `yaml:"deltaF1"`
	DeltaB1 float64 `yaml:"deltaB1"`

	// GlottalSource selects the voicing model: "lf" (default) or "impulsive".
	GlottalSource string `yaml:"glottalSource"`

	BurstAmplitude  float64 `yaml:"burstAmplitude"`
	BurstDuration   float64 `yaml:"burstDuration"`
	BurstFilterFreq float64 `yaml:"burstFilterFreq"`
	BurstFilterBw   float64 `yaml:"burstFilterBw"`
	BurstNoiseColor float64 `yaml:"burstNoiseColor"`

	CF1 float64 `yaml:"cf1"`
	CB1 float64 `yaml:"cb1"`
	CF2 float64 `yaml:"cf2"`
	CB2 float64 `yaml:"cb2"`
	CF3 float64 `yaml:"cf3"`
	CB3 float64 `yaml:"cb3"`
	CF4 float64 `yaml:"cf4"`
	CB4 float64 `yaml:"cb4"`
	CF5 float64 `yaml:"cf5"`
	CB5 float64 `yaml:"cb5"`
	CF6 float64 `yaml:"cf6"`
	CB6 float64 `yaml:"cb6"`

	NasalZeroFreq float64 `yaml:"nasalZeroFreq"`
	NasalZeroBw   float64 `yaml:"nasalZeroBw"`
	NasalPoleFreq float64 `yaml:"nasalPoleFreq"`
	NasalPoleBw   float64 `yaml:"nasalPoleBw"`
	NasalPoleAmp  float64 `yaml:"nasalPoleAmp"`

	NoiseFilterFreq    float64 `yaml:"noiseFilterFreq"`
	NoiseFilterBw      float64 `yaml:"noiseFilterBw"`
	FricationAmplitude float64 `yaml:"fricationAmplitude"`

	PF1Freq, PF1Bw, PF1Amp float64
	PF2Freq, PF2Bw, PF2Amp float64
	PF3Freq, PF3Bw, PF3Amp float64
	PF4Freq, PF4Bw, PF4Amp float64
	PF5Freq, PF5Bw, PF5Amp float64
	PF6Freq, PF6Bw, PF6Amp float64

	ParallelAntiFreq float64 `yaml:"parallelAntiFreq"`
	ParallelAntiBw   float64 `yaml:"parallelAntiBw"`
	ParallelBypass   float64 `yaml:"parallelBypass"`
	ParallelVoiceMix float64 `yaml:"parallelVoiceMix"`

	TrillRate  float64 `yaml:"trillRate"`
	TrillDepth float64 `yaml:"trillDepth"`

	PreFormantGain float64 `yaml:"preFormantGain"`
	OutputGain     float64 `yaml:"outputGain"`
}

func loadScript(path string) (*VoiceScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var script VoiceScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &script, nil
}

func (s Segment) toFrameRequest(sampleRate float64) *klatt.FrameRequest {
	minSamples := int(s.DurationMs / 1000 * sampleRate)
	fadeSamples := int(s.FadeMs / 1000 * sampleRate)

	source := klatt.GlottalSourceLF
	if s.GlottalSource == "impulsive" {
		source = klatt.GlottalSourceImpulsive
	}

	return &klatt.FrameRequest{
		MinSamples:  minSamples,
		FadeSamples: fadeSamples,
		IsNull:      s.Null,
		UserIndex:   s.UserIndex,
		Frame: klatt.Frame{
			F0: s.F0, F0End: s.F0End, F0Mid: s.F0Mid,
			VibratoRate: s.VibratoRate, VibratoDepth: s.VibratoDepth,
			VoiceAmplitude:             s.VoiceAmplitude,
			VoiceTurbulenceAmplitude:   s.VoiceTurbulenceAmplitude,
			GlottalOpenQuotient:        s.GlottalOpenQuotient,
			SinusoidalVoicingAmplitude: s.SinusoidalVoicingAmplitude,
			AspirationAmplitude:        s.AspirationAmplitude,
			AspirationFilterFreq:       s.AspirationFilterFreq,
			AspirationFilterBw:         s.AspirationFilterBw,
			SpectralTiltDb:             s.SpectralTiltDb,
			Flutter:                    s.Flutter,
			OpenQuotientShape:          s.OpenQuotientShape,
			SpeedQuotient:              s.SpeedQuotient,
			Diplophonia:                s.Diplophonia,
			LFRd:                       s.LFRd,
			TrachealPole1Freq:          s.TrachealPole1Freq,
			TrachealPole1Bw:            s.TrachealPole1Bw,
			TrachealPole2Freq:          s.TrachealPole2Freq,
			TrachealPole2Bw:            s.TrachealPole2Bw,
			TrachealZero1Freq:          s.TrachealZero1Freq,
			TrachealZero1Bw:            s.TrachealZero1Bw,
			TrachealZero2Freq:          s.TrachealZero2Freq,
			TrachealZero2Bw:            s.TrachealZero2Bw,
			DeltaF1:                    s.DeltaF1,
			DeltaB1:                    s.DeltaB1,
			GlottalSource:              source,
			BurstAmplitude:             s.BurstAmplitude,
			BurstDuration:              s.BurstDuration,
			BurstFilterFreq:            s.BurstFilterFreq,
			BurstFilterBw:              s.BurstFilterBw,
			BurstNoiseColor:            s.BurstNoiseColor,
			CF1: s.CF1, CB1: s.CB1,
			CF2: s.CF2, CB2: s.CB2,
			CF3: s.CF3, CB3: s.CB3,
			CF4: s.CF4, CB4: s.CB4,
			CF5: s.CF5, CB5: s.CB5,
			CF6: s.CF6, CB6: s.CB6,
			NasalZeroFreq: s.NasalZeroFreq, NasalZeroBw: s.NasalZeroBw,
			NasalPoleFreq: s.NasalPoleFreq, NasalPoleBw: s.NasalPoleBw,
			NasalPoleAmp:       s.NasalPoleAmp,
			NoiseFilterFreq:    s.NoiseFilterFreq,
			NoiseFilterBw:      s.NoiseFilterBw,
			FricationAmplitude: s.FricationAmplitude,
			PF1Freq: s.PF1Freq, PF1Bw: s.PF1Bw, PF1Amp: s.PF1Amp,
			PF2Freq: s.PF2Freq, PF2Bw: s.PF2Bw, PF2Amp: s.PF2Amp,
			PF3Freq: s.PF3Freq, PF3Bw: s.PF3Bw, PF3Amp: s.PF3Amp,
			PF4Freq: s.PF4Freq, PF4Bw: s.PF4Bw, PF4Amp: s.PF4Amp,
			PF5Freq: s.PF5Freq, PF5Bw: s.PF5Bw, PF5Amp: s.PF5Amp,
			PF6Freq: s.PF6Freq, PF6Bw: s.PF6Bw, PF6Amp: s.PF6Amp,
			ParallelAntiFreq: s.ParallelAntiFreq, ParallelAntiBw: s.ParallelAntiBw,
			ParallelBypass:   s.ParallelBypass,
			ParallelVoiceMix: s.ParallelVoiceMix,
			TrillRate:        s.TrillRate, TrillDepth: s.TrillDepth,
			PreFormantGain: s.PreFormantGain,
			OutputGain:     s.OutputGain,
		},
	}
}
