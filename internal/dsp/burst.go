package dsp

import "math"

// Burst is a self-sustaining stop-burst envelope generator. A rising edge
// on amplitude (0 to non-zero) snapshots the triggering frame's burst
// parameters and starts an exponential-decay envelope that runs to
// completion independent of subsequent frame changes, so a burst already
// in flight isn't retriggered or truncated by ordinary frame interpolation.
type Burst struct {
	sampleRate float64
	noise      *Noise
	filter     *SVF

	phase       float64 // 1 when idle, counts 0->1 across the active envelope
	lastAmp     float64
	active      bool
	activeAmp   float64
	activeDur   float64
	activeFreq  float64
	activeBw    float64
	activeColor float64
}

// NewBurst returns a Burst drawing noise from source.
func NewBurst(sampleRate float64, source *Noise) *Burst {
	return &Burst{
		sampleRate: sampleRate,
		noise:      source,
		filter:     NewSVF(ModeBandpass),
		phase:      1,
	}
}

// Next produces one sample from the current frame's burst parameters,
// triggering a new envelope on a 0-to-positive amplitude edge.
func (b *Burst) Next(amplitude, duration, filterFreq, filterBw, noiseColor float64) float64 {
	if b.lastAmp <= 0 && amplitude > 0 {
		b.phase = 0
		b.filter.Reset()
		b.active = true
		b.activeAmp = amplitude
		b.activeDur = duration
		b.activeFreq = filterFreq
		b.activeBw = filterBw
		b.activeColor = noiseColor
	}
	b.lastAmp = amplitude

	if !b.active || b.phase >= 1 {
		b.active = false
		b.filter.Decay(0.9)
		return 0
	}

	durationMs := 5 + b.activeDur*(20-5)
	durationSamples := durationMs / 1000 * b.sampleRate
	envelope := math.Exp(-6 * b.phase)
	b.phase += 1 / durationSamples
	if b.phase > 1 {
		b.phase = 1
	}

	white := b.noise.White()
	raw := white*(1-b.activeColor) + b.noise.Pink()*b.activeColor
	filtered := raw
	if b.activeFreq > 0 && b.activeBw > 0 {
		b.filter.SetParams(b.activeFreq, b.activeBw, b.sampleRate)
		filtered = b.filter.Process(raw) * 3
	}

	onsetMs := 1.5
	if b.activeFreq > 0 {
		onsetMs = 3 / (b.activeFreq / 1000)
		if onsetMs < 1.5 {
			onsetMs = 1.5
		}
	}
	onsetSamples := onsetMs / 1000 * b.sampleRate
	onsetPhase := b.phase * durationSamples / onsetSamples
	if onsetPhase > 1 {
		onsetPhase = 1
	}
	onsetScale := 1 - b.activeColor*0.7
	noise := filtered + raw*(1-onsetPhase)*onsetScale
	return noise * envelope * b.activeAmp
}

// Decay attenuates the burst filter's residual ringing without affecting
// envelope state.
func (b *Burst) Decay(factor float64) {
	b.filter.Decay(factor)
}

// Reset idles the envelope and clears the filter.
func (b *Burst) Reset() {
	b.filter.Reset()
	b.phase = 1
	b.active = false
}
