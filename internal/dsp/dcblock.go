package dsp

// DCBlock is a 1-pole high-pass filter with a fixed 20 Hz cutoff, used to
// strip DC offset from the voicing source before spectral tilt and tracheal
// coupling are applied.
type DCBlock struct {
	r     float64
	xPrev float64
	yPrev float64
}

// NewDCBlock returns a DCBlock configured for sampleRate.
func NewDCBlock(sampleRate float64) *DCBlock {
	r := 1 - 2*3.141592653589793*20/sampleRate
	if r < 0.9 {
		r = 0.9
	}
	if r > 0.9999 {
		r = 0.9999
	}
	return &DCBlock{r: r}
}

// Process runs one sample through the filter: y = x - xPrev + r*yPrev.
func (d *DCBlock) Process(x float64) float64 {
	y := x - d.xPrev + d.r*d.yPrev
	d.xPrev = x
	d.yPrev = y
	return y
}

// Reset clears the filter's memory.
func (d *DCBlock) Reset() {
	d.xPrev, d.yPrev = 0, 0
}
