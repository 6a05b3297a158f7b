package testutil

import "testing"

func TestLCGDeterministic(t *testing.T) {
	a := NewLCG(42)
	b := NewLCG(42)

	for i := range 100 {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("step %d: %v != %v", i, va, vb)
		}

		if va < 0 || va >= 1 {
			t.Fatalf("step %d: %v outside [0, 1)", i, va)
		}
	}
}

func TestLCGRange(t *testing.T) {
	rng := NewLCG(7)

	for i := range 100 {
		v := rng.Range(-50, 150)
		if v < -50 || v >= 150 {
			t.Fatalf("step %d: %v outside [-50, 150)", i, v)
		}
	}
}

func TestSixHoleLayout(t *testing.T) {
	positions, radii, open := SixHoleLayout()

	if len(positions) != 6 || len(radii) != 6 || len(open) != 6 {
		t.Fatalf("lengths = %d/%d/%d, want 6", len(positions), len(radii), len(open))
	}

	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Errorf("positions not ascending at %d: %v", i, positions)
		}
	}
}
