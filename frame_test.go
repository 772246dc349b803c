package klatt

import "testing"

func TestComputePitchIncrementsLinear(t *testing.T) {
	r := &FrameRequest{MinSamples: 1000, FadeSamples: 100, Frame: Frame{F0: 100, F0End: 200}}
	r.computePitchIncrements()
	want := (200.0 - 100.0) / 1000.0
	if r.pitchInc != want {
		t.Fatalf("pitchInc = %v, want %v", r.pitchInc, want)
	}
	if r.pitchInc2 != 0 {
		t.Fatalf("pitchInc2 = %v, want 0 for a linear (non-contour) request", r.pitchInc2)
	}
	if r.hasContour {
		t.Fatalf("hasContour = true, want false")
	}
}

func TestComputePitchIncrementsContour(t *testing.T) {
	r := &FrameRequest{MinSamples: 1000, FadeSamples: 100, Frame: Frame{F0: 100, F0Mid: 150, F0End: 100}}
	r.computePitchIncrements()
	if !r.hasContour {
		t.Fatalf("hasContour = false, want true when F0Mid > 0")
	}
	wantInc := (150.0 - 100.0) / 500.0
	wantInc2 := (100.0 - 150.0) / 500.0
	if r.pitchInc != wantInc {
		t.Fatalf("pitchInc = %v, want %v", r.pitchInc, wantInc)
	}
	if r.pitchInc2 != wantInc2 {
		t.Fatalf("pitchInc2 = %v, want %v", r.pitchInc2, wantInc2)
	}
}

func TestComputePitchIncrementsFloorsToOne(t *testing.T) {
	r := &FrameRequest{MinSamples: 0, FadeSamples: 0, Frame: Frame{F0: 100, F0End: 100}}
	r.computePitchIncrements()
	if r.MinSamples != 1 || r.FadeSamples != 1 {
		t.Fatalf("MinSamples/FadeSamples not floored to 1: got %d/%d", r.MinSamples, r.FadeSamples)
	}
}

func TestComputePitchIncrementsZeroOverDegenerateContourWindow(t *testing.T) {
	r := &FrameRequest{MinSamples: 1, FadeSamples: 1, Frame: Frame{F0: 100, F0Mid: 150, F0End: 200}}
	r.computePitchIncrements()
	if !r.hasContour {
		t.Fatalf("hasContour = false, want true when F0Mid > 0")
	}
	if r.pitchInc != 0 || r.pitchInc2 != 0 {
		t.Fatalf("pitchInc/pitchInc2 = %v/%v, want 0/0 when MinSamples=1 leaves no room to split into halves", r.pitchInc, r.pitchInc2)
	}
}

func TestSilentFrameHasZeroGains(t *testing.T) {
	f := silentFrame()
	if f.PreFormantGain != 0 || f.OutputGain != 0 {
		t.Fatalf("silentFrame should have zero gains, got preFormantGain=%v outputGain=%v", f.PreFormantGain, f.OutputGain)
	}
}
