package utils

import "testing"

func TestNewRNGIsDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)

	for i := 0; i < 16; i++ {
		av, bv := a.Float64(), b.Float64()
		if av != bv {
			t.Fatalf("draw %d differs: %v vs %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("draw %d outside [0, 1): %v", i, av)
		}
	}
}

func TestSeedOrNow(t *testing.T) {
	if got := SeedOrNow(5); got != 5 {
		t.Fatalf("SeedOrNow(5) = %d, want 5", got)
	}
	if got := SeedOrNow(0); got <= 0 {
		t.Fatalf("SeedOrNow(0) = %d, want a positive time-based seed", got)
	}
	if got := SeedOrNow(-3); got <= 0 {
		t.Fatalf("SeedOrNow(-3) = %d, want a positive time-based seed", got)
	}
}
