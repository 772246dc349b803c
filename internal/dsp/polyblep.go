package dsp

// PolyBLEP returns the polynomial band-limited step correction for a
// discontinuity crossed at phase t with phase increment dt per sample
// (Valimaki & Huovilainen 2006). Subtracting the result from a naive
// waveform at the sample nearest the discontinuity removes most of the
// aliasing energy the jump would otherwise inject.
func PolyBLEP(t, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	switch {
	case t < dt:
		t /= dt
		return t + t - t*t - 1
	case t > 1-dt:
		t = (t - 1) / dt
		return t*t + t + t + 1
	default:
		return 0
	}
}
