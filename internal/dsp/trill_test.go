package dsp

import "testing"

func TestTrillDisabledYieldsUnity(t *testing.T) {
	tr := NewTrill(48000)
	if got := tr.Next(0, 0.5); got != 1 {
		t.Fatalf("Trill with rate<=0 = %v, want 1", got)
	}
	if got := tr.Next(20, 0); got != 1 {
		t.Fatalf("Trill with depth<=0 = %v, want 1", got)
	}
}

func TestTrillBounded(t *testing.T) {
	tr := NewTrill(48000)
	const depth = 0.4
	for i := 0; i < 10000; i++ {
		v := tr.Next(25, depth)
		if v > 1.0001 || v < 1-depth-0.0001 {
			t.Fatalf("Trill out of bounds at sample %d: %v", i, v)
		}
	}
}
