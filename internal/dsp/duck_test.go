package dsp

import "testing"

func TestDuckUnityWhenQuiet(t *testing.T) {
	d := NewDuck(48000)
	var g float64
	for i := 0; i < 10000; i++ {
		g = d.Gain(0, 0, 1)
	}
	if g < 0.999 {
		t.Fatalf("duck gain with no noise source = %v, want close to 1", g)
	}
}

func TestDuckAttenuatesDuringBurstWithoutVoicing(t *testing.T) {
	d := NewDuck(48000)
	var g float64
	for i := 0; i < 10000; i++ {
		g = d.Gain(1, 0, 0)
	}
	if g > 0.31 {
		t.Fatalf("duck gain during full burst with no voicing = %v, want near 0.3", g)
	}
}
