package dsp

// Tracheal couples the voicing source to a simplified subglottal tract: two
// pole/zero pairs in series, each an SVF in ModeAllPole or ModeAnti, each
// bypassed independently when its frequency is 0. Grounded in role (not
// formula, which SVF already provides) on the throat/tracheal coupling
// section of the Gnuspeech TRM port (emer-auditory's VocalTract/throat).
type Tracheal struct {
	pole1, pole2 *SVF
	zero1, zero2 *SVF
}

// NewTracheal returns an unconfigured Tracheal chain.
func NewTracheal() *Tracheal {
	return &Tracheal{
		pole1: NewSVF(ModeAllPole),
		zero1: NewSVF(ModeAnti),
		pole2: NewSVF(ModeAllPole),
		zero2: NewSVF(ModeAnti),
	}
}

// SetParams configures all four stages from frame parameters.
func (t *Tracheal) SetParams(pole1Freq, pole1Bw, zero1Freq, zero1Bw, pole2Freq, pole2Bw, zero2Freq, zero2Bw, sampleRate float64) {
	t.pole1.SetParams(pole1Freq, pole1Bw, sampleRate)
	t.zero1.SetParams(zero1Freq, zero1Bw, sampleRate)
	t.pole2.SetParams(pole2Freq, pole2Bw, sampleRate)
	t.zero2.SetParams(zero2Freq, zero2Bw, sampleRate)
}

// Process runs one sample through pole1 -> zero1 -> pole2 -> zero2 in series.
func (t *Tracheal) Process(in float64) float64 {
	x := t.pole1.Process(in)
	x = t.zero1.Process(x)
	x = t.pole2.Process(x)
	x = t.zero2.Process(x)
	return x
}

// Reset clears all four stages' state.
func (t *Tracheal) Reset() {
	t.pole1.Reset()
	t.zero1.Reset()
	t.pole2.Reset()
	t.zero2.Reset()
}
