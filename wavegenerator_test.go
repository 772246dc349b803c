package klatt

import (
	"math"
	"testing"
)

const testSampleRate = 48000.0

func vowelFrame(f0 float64) Frame {
	return Frame{
		F0: f0, F0End: f0, LFRd: 1.0,
		VoiceAmplitude: 1, PreFormantGain: 1, OutputGain: 1,
		CF1: 500, CB1: 60,
		CF2: 1500, CB2: 90,
		CF3: 2500, CB3: 150,
		CF4: 3250, CB4: 200,
		CF5: 3700, CB5: 200,
		CF6: 4990, CB6: 1000,
		PF1Bw: 60, PF2Bw: 90, PF3Bw: 150, PF4Bw: 200, PF5Bw: 200, PF6Bw: 1000,
	}
}

func renderAll(t *testing.T, fm *FrameManager, n int) []int16 {
	t.Helper()
	wg := NewWaveGenerator(testSampleRate)
	wg.SetFrameManager(fm)
	out := make([]int16, n)
	wg.Generate(out)
	return out
}

// rmsWindow computes the RMS of samples[start:start+n], clamping to the
// available range.
func rmsWindow(samples []int16, start, n int) float64 {
	end := start + n
	if end > len(samples) {
		end = len(samples)
	}
	if start >= end {
		return 0
	}
	var sum float64
	for _, s := range samples[start:end] {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(end-start))
}

// zeroCrossingFreq estimates the fundamental of samples[start:start+n] by
// counting sign changes, a cheap proxy good enough to check monotonic trend
// without needing a full pitch tracker.
func zeroCrossingFreq(samples []int16, start, n int, sampleRate float64) float64 {
	end := start + n
	if end > len(samples) {
		end = len(samples)
	}
	if end-start < 2 {
		return 0
	}
	crossings := 0
	for i := start + 1; i < end; i++ {
		if (samples[i-1] < 0 && samples[i] >= 0) || (samples[i-1] >= 0 && samples[i] < 0) {
			crossings++
		}
	}
	seconds := float64(end-start) / sampleRate
	return float64(crossings) / 2 / seconds
}

func TestSilenceYieldsZeroOutput(t *testing.T) {
	fm := NewFrameManager()
	fm.Enqueue(&FrameRequest{IsNull: true, MinSamples: 1000, FadeSamples: 10}, false)

	out := renderAll(t, fm, 200)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d during a null frame = %d, want 0", i, s)
		}
	}
}

func TestSteadyVoicedVowelHasEnergyAtF0Period(t *testing.T) {
	fm := NewFrameManager()
	f0 := 120.0
	fm.Enqueue(&FrameRequest{MinSamples: 10000, FadeSamples: 200, Frame: vowelFrame(f0)}, false)

	out := renderAll(t, fm, 10000)

	// Skip the fade-in and settle window, then look for periodic energy
	// near the expected pitch period (48000/120 = 400 samples) via
	// normalized autocorrelation.
	settle := out[4000:]
	wantLag := int(testSampleRate / f0)

	bestLag, bestScore := 0, -1.0
	var energy float64
	for _, s := range settle {
		v := float64(s)
		energy += v * v
	}
	for lag := wantLag - 20; lag <= wantLag+20; lag++ {
		if lag <= 0 || lag >= len(settle) {
			continue
		}
		var corr float64
		for i := 0; i+lag < len(settle); i++ {
			corr += float64(settle[i]) * float64(settle[i+lag])
		}
		score := corr / (energy + 1)
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}

	if bestLag < wantLag-20 || bestLag > wantLag+20 {
		t.Fatalf("autocorrelation peak at lag %d, want near %d (F0=%v Hz)", bestLag, wantLag, f0)
	}
	if bestScore <= 0 {
		t.Fatalf("no positive autocorrelation peak found for a steady %v Hz vowel", f0)
	}
}

func TestPitchGlideTrendsUpward(t *testing.T) {
	fm := NewFrameManager()
	f := vowelFrame(100)
	f.F0End = 200
	fm.Enqueue(&FrameRequest{MinSamples: 20000, FadeSamples: 200, Frame: f}, false)

	out := renderAll(t, fm, 20000)

	windows := 4
	windowSize := len(out) / windows
	var estimates []float64
	for w := 0; w < windows; w++ {
		estimates = append(estimates, zeroCrossingFreq(out, w*windowSize, windowSize, testSampleRate))
	}

	for i := 1; i < len(estimates); i++ {
		if estimates[i] < estimates[i-1]-10 {
			t.Fatalf("pitch estimate window %d (%v Hz) fell well below window %d (%v Hz) during an upward glide", i, estimates[i], i-1, estimates[i-1])
		}
	}
	if estimates[len(estimates)-1] <= estimates[0] {
		t.Fatalf("final pitch estimate %v Hz did not exceed initial estimate %v Hz", estimates[len(estimates)-1], estimates[0])
	}
}

func TestStopBurstDecaysQuickly(t *testing.T) {
	fm := NewFrameManager()
	f := Frame{
		PreFormantGain: 1, OutputGain: 1,
		BurstAmplitude: 1, BurstDuration: 0.3, BurstFilterFreq: 2000, BurstFilterBw: 500,
		PF1Freq: 1500, PF1Bw: 200, PF1Amp: 1,
		ParallelAntiFreq: 0, ParallelAntiBw: 0,
	}
	fm.Enqueue(&FrameRequest{MinSamples: 2000, FadeSamples: 5, Frame: f}, false)

	out := renderAll(t, fm, 2000)

	windowSamples := int(0.012 * testSampleRate) // 12 ms
	firstRMS := rmsWindow(out, 0, windowSamples)
	laterRMS := rmsWindow(out, windowSamples, windowSamples)

	if firstRMS <= 0 {
		t.Fatalf("burst produced no energy in its first window")
	}
	if laterRMS*10 >= firstRMS {
		t.Fatalf("burst did not decay: first-window RMS=%v, next-window RMS=%v", firstRMS, laterRMS)
	}
}

func TestImpulsiveGlottalSourceHasEnergyAtF0Period(t *testing.T) {
	fm := NewFrameManager()
	f0 := 110.0
	f := vowelFrame(f0)
	f.LFRd = 0 // the impulsive path does not read LFRd at all
	f.GlottalSource = GlottalSourceImpulsive
	f.GlottalOpenQuotient = 0.6
	fm.Enqueue(&FrameRequest{MinSamples: 10000, FadeSamples: 200, Frame: f}, false)

	out := renderAll(t, fm, 10000)

	settle := out[4000:]
	wantLag := int(testSampleRate / f0)

	var energy float64
	for _, s := range settle {
		v := float64(s)
		energy += v * v
	}
	if energy <= 0 {
		t.Fatalf("impulsive glottal source produced no energy")
	}

	bestLag, bestScore := 0, -1.0
	for lag := wantLag - 20; lag <= wantLag+20; lag++ {
		if lag <= 0 || lag >= len(settle) {
			continue
		}
		var corr float64
		for i := 0; i+lag < len(settle); i++ {
			corr += float64(settle[i]) * float64(settle[i+lag])
		}
		score := corr / (energy + 1)
		if score > bestScore {
			bestScore = score
			bestLag = lag
		}
	}

	if bestLag < wantLag-20 || bestLag > wantLag+20 {
		t.Fatalf("autocorrelation peak at lag %d, want near %d (F0=%v Hz)", bestLag, wantLag, f0)
	}
	if bestScore <= 0 {
		t.Fatalf("no positive autocorrelation peak found for an impulsive-source vowel")
	}
}

func TestImpulsiveGlottalSourceIgnoresLFRd(t *testing.T) {
	fm := NewFrameManager()
	f := vowelFrame(120)
	f.LFRd = 0
	f.GlottalSource = GlottalSourceImpulsive
	f.GlottalOpenQuotient = 0.5
	fm.Enqueue(&FrameRequest{MinSamples: 2000, FadeSamples: 200, Frame: f}, false)

	out := renderAll(t, fm, 2000)
	if rmsWindow(out, 1000, 1000) <= 0 {
		t.Fatalf("impulsive glottal source produced silence despite LFRd=0")
	}
}

func TestPurgeTransitionsFormantsWithinFadeWindow(t *testing.T) {
	fm := NewFrameManager()
	a := vowelFrame(120)
	fm.Enqueue(&FrameRequest{MinSamples: 20000, FadeSamples: 200, Frame: a}, false)

	wg := NewWaveGenerator(testSampleRate)
	wg.SetFrameManager(fm)

	// Sustain the first vowel for a while, then purge into a different one.
	pre := make([]int16, 5000)
	wg.Generate(pre)

	b := vowelFrame(120)
	b.CF1 = 800
	fadeSamples := 480
	fm.Enqueue(&FrameRequest{MinSamples: 20000, FadeSamples: fadeSamples, Frame: b}, true)

	post := make([]int16, fadeSamples+2000)
	wg.Generate(post)

	beforeEnergy := rmsWindow(post, 0, 100)
	afterEnergy := rmsWindow(post, fadeSamples+500, 100)

	if beforeEnergy <= 0 || afterEnergy <= 0 {
		t.Fatalf("expected nonzero energy both before and after the purge transition, got %v and %v", beforeEnergy, afterEnergy)
	}

	// F1 moves from 500 Hz to 800 Hz: the harmonic of 120 Hz nearest the new
	// F1 (840 Hz) should gain on the one nearest the old F1 (480 Hz).
	const window = 1200
	before := pre[len(pre)-window:]
	beforeRatio := goertzelPower(before, 840, testSampleRate) / goertzelPower(before, 480, testSampleRate)
	after := post[fadeSamples+500 : fadeSamples+500+window]
	afterRatio := goertzelPower(after, 840, testSampleRate) / goertzelPower(after, 480, testSampleRate)
	if afterRatio <= beforeRatio {
		t.Fatalf("F1 did not move toward its new target: 840/480 Hz power ratio %v before purge, %v after", beforeRatio, afterRatio)
	}
}

// goertzelPower returns the power of samples at freq.
func goertzelPower(samples []int16, freq, sampleRate float64) float64 {
	coef := 2 * math.Cos(2*math.Pi*freq/sampleRate)
	var s1, s2 float64
	for _, x := range samples {
		s0 := float64(x) + coef*s1 - s2
		s2, s1 = s1, s0
	}
	return s1*s1 + s2*s2 - coef*s1*s2
}
