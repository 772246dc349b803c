package dsp

import "testing"

func TestJitterShimmerIdentityAtZeroAmount(t *testing.T) {
	j := NewJitterShimmer(NewNoise())
	j.OnNewCycle()
	if got := j.PitchMod(0); got != 1 {
		t.Fatalf("PitchMod(0) = %v, want 1", got)
	}
	if got := j.AmpMod(0); got != 1 {
		t.Fatalf("AmpMod(0) = %v, want 1", got)
	}
}

func TestJitterShimmerHeldValueStableBetweenCycles(t *testing.T) {
	j := NewJitterShimmer(NewNoise())
	j.OnNewCycle()
	first := j.PitchMod(1)
	second := j.PitchMod(1)
	if first != second {
		t.Fatalf("PitchMod drifted between calls without an intervening OnNewCycle: %v != %v", first, second)
	}
}

func TestJitterShimmerModulationBounded(t *testing.T) {
	j := NewJitterShimmer(NewNoise())
	for i := 0; i < 1000; i++ {
		j.OnNewCycle()
		if pm := j.PitchMod(1); pm < 1-0.02 || pm > 1+0.02 {
			t.Fatalf("PitchMod(1) out of bounds at cycle %d: %v", i, pm)
		}
		if am := j.AmpMod(1); am < 1-0.01 || am > 1+0.01 {
			t.Fatalf("AmpMod(1) out of bounds at cycle %d: %v", i, am)
		}
	}
}

func TestJitterShimmerDisabledByNonPositiveAmount(t *testing.T) {
	j := NewJitterShimmer(NewNoise())
	for i := 0; i < 10; i++ {
		j.OnNewCycle()
	}
	if got := j.PitchMod(-1); got != 1 {
		t.Fatalf("PitchMod(-1) = %v, want 1 (disabled)", got)
	}
	if got := j.AmpMod(-1); got != 1 {
		t.Fatalf("AmpMod(-1) = %v, want 1 (disabled)", got)
	}
}
