package dsp

// Noise is an xorshift128+ PRNG producing white and pink noise (§4.2.3). It
// is seeded with fixed constants rather than a time-based seed: the engine
// is deterministic, which keeps render output reproducible across runs and
// makes pinned regression tests meaningful.
type Noise struct {
	state0, state1 uint64
	pink           [5]float64
}

// NewNoise returns a Noise generator at its fixed seed.
func NewNoise() *Noise {
	return &Noise{
		state0: 0x853c49e6748fea9b,
		state1: 0xda3e39cb94b95bdb,
	}
}

func (n *Noise) next() uint64 {
	s1 := n.state0
	s0 := n.state1
	result := s0 + s1
	n.state0 = s0
	s1 ^= s1 << 23
	n.state1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)
	return result
}

// White returns a uniform sample in [-1, 1).
func (n *Noise) White() float64 {
	return (float64(n.next()>>11)/float64(uint64(1)<<53))*2 - 1
}

// Pink returns a 1/f-weighted sample via Paul Kellet's five-pole method.
func (n *Noise) Pink() float64 {
	white := n.White()

	n.pink[0] = 0.99886*n.pink[0] + white*0.0555179
	n.pink[1] = 0.99332*n.pink[1] + white*0.0750759
	n.pink[2] = 0.96900*n.pink[2] + white*0.1538520
	n.pink[3] = 0.86650*n.pink[3] + white*0.3104856
	n.pink[4] = 0.55000*n.pink[4] + white*0.5329522

	pink := n.pink[0] + n.pink[1] + n.pink[2] + n.pink[3] + n.pink[4] + white*0.5362
	return pink * 0.11
}

// ColoredNoise is band-limited noise built on top of a shared Noise source:
// a pink fallback below 100 Hz, otherwise a fourth-order ZDF bandpass with
// bandwidth compensated for the cascaded stages (§4.2.3).
type ColoredNoise struct {
	source *Noise
	filter *FourthOrderSVF
}

// NewColoredNoise returns a ColoredNoise drawing from source.
func NewColoredNoise(source *Noise) *ColoredNoise {
	return &ColoredNoise{source: source, filter: NewFourthOrderSVF(ModeBandpass)}
}

// Next produces one sample at the given center frequency and bandwidth.
func (c *ColoredNoise) Next(filterFreq, filterBw, sampleRate float64) float64 {
	if filterFreq < 100 {
		return c.source.Pink()
	}
	bw := filterBw
	if bw < 100 {
		bw = 100
	}
	c.filter.SetParams(filterFreq, bw, sampleRate)
	gain := 6000 / bw
	if gain > 60 {
		gain = 60
	}
	return c.filter.Process(c.source.White()) * gain
}

// Reset clears the bandpass filter state.
func (c *ColoredNoise) Reset() {
	c.filter.Reset()
}
