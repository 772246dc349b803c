package klatt

import "github.com/dengopaiv/manatu/internal/dsp"

// fadeFrame writes, into cur, the fade-interpolated parameters between old and
// new at smoothstep position s (s in [0,1]). Step parameters (listed in §4.1's
// exception table) are assigned the new target instantly regardless of s,
// because smoothing them produces audible filter sweeps or mistimes stop onsets.
// A NaN target holds the prior (old) value.
func fadeFrame(old, newf *Frame, s float64, cur *Frame) {
	cur.F0 = lerpParam(old.F0, newf.F0, s)
	cur.F0End = lerpParam(old.F0End, newf.F0End, s)
	cur.F0Mid = lerpParam(old.F0Mid, newf.F0Mid, s)
	cur.VibratoRate = lerpParam(old.VibratoRate, newf.VibratoRate, s)
	cur.VibratoDepth = lerpParam(old.VibratoDepth, newf.VibratoDepth, s)
	cur.VoiceAmplitude = lerpParam(old.VoiceAmplitude, newf.VoiceAmplitude, s)
	cur.VoiceTurbulenceAmplitude = lerpParam(old.VoiceTurbulenceAmplitude, newf.VoiceTurbulenceAmplitude, s)
	cur.GlottalOpenQuotient = lerpParam(old.GlottalOpenQuotient, newf.GlottalOpenQuotient, s)
	cur.SinusoidalVoicingAmplitude = lerpParam(old.SinusoidalVoicingAmplitude, newf.SinusoidalVoicingAmplitude, s)
	cur.AspirationAmplitude = lerpParam(old.AspirationAmplitude, newf.AspirationAmplitude, s)
	cur.AspirationFilterFreq = lerpParam(old.AspirationFilterFreq, newf.AspirationFilterFreq, s)
	cur.AspirationFilterBw = lerpParam(old.AspirationFilterBw, newf.AspirationFilterBw, s)
	cur.SpectralTiltDb = lerpParam(old.SpectralTiltDb, newf.SpectralTiltDb, s)
	cur.Flutter = lerpParam(old.Flutter, newf.Flutter, s)
	cur.OpenQuotientShape = lerpParam(old.OpenQuotientShape, newf.OpenQuotientShape, s)
	cur.SpeedQuotient = lerpParam(old.SpeedQuotient, newf.SpeedQuotient, s)
	cur.Diplophonia = lerpParam(old.Diplophonia, newf.Diplophonia, s)
	cur.LFRd = lerpParam(old.LFRd, newf.LFRd, s)
	cur.TrachealPole1Freq = lerpParam(old.TrachealPole1Freq, newf.TrachealPole1Freq, s)
	cur.TrachealPole1Bw = lerpParam(old.TrachealPole1Bw, newf.TrachealPole1Bw, s)
	cur.TrachealPole2Freq = lerpParam(old.TrachealPole2Freq, newf.TrachealPole2Freq, s)
	cur.TrachealPole2Bw = lerpParam(old.TrachealPole2Bw, newf.TrachealPole2Bw, s)
	cur.TrachealZero1Freq = lerpParam(old.TrachealZero1Freq, newf.TrachealZero1Freq, s)
	cur.TrachealZero1Bw = lerpParam(old.TrachealZero1Bw, newf.TrachealZero1Bw, s)
	cur.TrachealZero2Freq = lerpParam(old.TrachealZero2Freq, newf.TrachealZero2Freq, s)
	cur.TrachealZero2Bw = lerpParam(old.TrachealZero2Bw, newf.TrachealZero2Bw, s)
	cur.DeltaF1 = lerpParam(old.DeltaF1, newf.DeltaF1, s)
	cur.DeltaB1 = lerpParam(old.DeltaB1, newf.DeltaB1, s)
	cur.BurstAmplitude = newf.BurstAmplitude
	cur.BurstDuration = newf.BurstDuration
	cur.BurstFilterFreq = newf.BurstFilterFreq
	cur.BurstFilterBw = newf.BurstFilterBw
	cur.BurstNoiseColor = newf.BurstNoiseColor
	cur.CF1 = lerpParam(old.CF1, newf.CF1, s)
	cur.CB1 = lerpParam(old.CB1, newf.CB1, s)
	cur.CF2 = lerpParam(old.CF2, newf.CF2, s)
	cur.CB2 = lerpParam(old.CB2, newf.CB2, s)
	cur.CF3 = lerpParam(old.CF3, newf.CF3, s)
	cur.CB3 = lerpParam(old.CB3, newf.CB3, s)
	cur.CF4 = lerpParam(old.CF4, newf.CF4, s)
	cur.CB4 = lerpParam(old.CB4, newf.CB4, s)
	cur.CF5 = lerpParam(old.CF5, newf.CF5, s)
	cur.CB5 = lerpParam(old.CB5, newf.CB5, s)
	cur.CF6 = lerpParam(old.CF6, newf.CF6, s)
	cur.CB6 = lerpParam(old.CB6, newf.CB6, s)
	cur.NasalZeroFreq = lerpParam(old.NasalZeroFreq, newf.NasalZeroFreq, s)
	cur.NasalZeroBw = lerpParam(old.NasalZeroBw, newf.NasalZeroBw, s)
	cur.NasalPoleFreq = lerpParam(old.NasalPoleFreq, newf.NasalPoleFreq, s)
	cur.NasalPoleBw = lerpParam(old.NasalPoleBw, newf.NasalPoleBw, s)
	cur.NasalPoleAmp = lerpParam(old.NasalPoleAmp, newf.NasalPoleAmp, s)
	cur.NoiseFilterFreq = newf.NoiseFilterFreq
	cur.NoiseFilterBw = newf.NoiseFilterBw
	cur.FricationAmplitude = newf.FricationAmplitude
	cur.PF1Freq = lerpParam(old.PF1Freq, newf.PF1Freq, s)
	cur.PF1Bw = lerpParam(old.PF1Bw, newf.PF1Bw, s)
	cur.PF1Amp = lerpParam(old.PF1Amp, newf.PF1Amp, s)
	cur.PF2Freq = lerpParam(old.PF2Freq, newf.PF2Freq, s)
	cur.PF2Bw = lerpParam(old.PF2Bw, newf.PF2Bw, s)
	cur.PF2Amp = lerpParam(old.PF2Amp, newf.PF2Amp, s)
	cur.PF3Freq = lerpParam(old.PF3Freq, newf.PF3Freq, s)
	cur.PF3Bw = lerpParam(old.PF3Bw, newf.PF3Bw, s)
	cur.PF3Amp = lerpParam(old.PF3Amp, newf.PF3Amp, s)
	cur.PF4Freq = lerpParam(old.PF4Freq, newf.PF4Freq, s)
	cur.PF4Bw = lerpParam(old.PF4Bw, newf.PF4Bw, s)
	cur.PF4Amp = lerpParam(old.PF4Amp, newf.PF4Amp, s)
	cur.PF5Freq = lerpParam(old.PF5Freq, newf.PF5Freq, s)
	cur.PF5Bw = lerpParam(old.PF5Bw, newf.PF5Bw, s)
	cur.PF5Amp = lerpParam(old.PF5Amp, newf.PF5Amp, s)
	cur.PF6Freq = lerpParam(old.PF6Freq, newf.PF6Freq, s)
	cur.PF6Bw = lerpParam(old.PF6Bw, newf.PF6Bw, s)
	cur.PF6Amp = lerpParam(old.PF6Amp, newf.PF6Amp, s)
	cur.ParallelAntiFreq = newf.ParallelAntiFreq
	cur.ParallelAntiBw = lerpParam(old.ParallelAntiBw, newf.ParallelAntiBw, s)
	cur.ParallelBypass = lerpParam(old.ParallelBypass, newf.ParallelBypass, s)
	cur.ParallelVoiceMix = lerpParam(old.ParallelVoiceMix, newf.ParallelVoiceMix, s)
	cur.TrillRate = newf.TrillRate
	cur.TrillDepth = newf.TrillDepth
	cur.PreFormantGain = lerpParam(old.PreFormantGain, newf.PreFormantGain, s)
	cur.OutputGain = lerpParam(old.OutputGain, newf.OutputGain, s)
	cur.GlottalSource = newf.GlottalSource
}

// lerpParam linearly blends a single frame parameter, holding old on a NaN target.
func lerpParam(old, target, s float64) float64 {
	if target != target { // NaN target holds prior value
		return old
	}
	return old + s*(target-old)
}

// fadeAt blends a single value (not a parameter-table field) at fade ratio
// using the same smoothstep-and-NaN-guard rule as fadeFrame, for the
// cascade nasal blend and parallel bypass crossfade, each of which treats a
// frame parameter as a blend position rather than a time-based ratio.
func fadeAt(oldVal, newVal, ratio float64) float64 {
	if newVal != newVal {
		return oldVal
	}
	return lerpParam(oldVal, newVal, dsp.Smoothstep(ratio))
}

// copyFrame copies every field of src into dst.
func copyFrame(dst, src *Frame) {
	*dst = *src
}

