package resonance

import (
	"errors"
	"math"
	"testing"
)

// crossAt is an indicator with a single upward zero crossing.
func crossAt(f0 float64) Indicator {
	return func(f float64) float64 { return f - f0 }
}

func TestFindNearGuess(t *testing.T) {
	s := DefaultSolver()

	got, err := s.Find(crossAt(1000), 990)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-1000) > 2*s.Tolerance {
		t.Errorf("Find = %v, want 1000 +- %v", got, s.Tolerance)
	}
}

func TestFindFallsBackToSweep(t *testing.T) {
	s := DefaultSolver()

	// The crossing at 1000 Hz is far outside the local window around
	// any of these guesses, exercising the coarse full-range sweep.
	for _, guess := range []float64{1, 20, 4000, 10000} {
		got, err := s.Find(crossAt(1000), guess)
		if err != nil {
			t.Fatalf("guess %v: %v", guess, err)
		}

		if math.Abs(got-1000) > 2*s.Tolerance {
			t.Errorf("guess %v: Find = %v, want 1000", guess, got)
		}
	}
}

func TestFindGuessIndependence(t *testing.T) {
	s := DefaultSolver()

	ref, err := s.Find(crossAt(587.33), 587)
	if err != nil {
		t.Fatal(err)
	}

	for _, guess := range []float64{1, 440, 4999} {
		got, err := s.Find(crossAt(587.33), guess)
		if err != nil {
			t.Fatalf("guess %v: %v", guess, err)
		}

		if math.Abs(got-ref) > 2*s.Tolerance {
			t.Errorf("guess %v: Find = %v, reference %v", guess, got, ref)
		}
	}
}

func TestFindIdempotent(t *testing.T) {
	s := DefaultSolver()

	first, err := s.Find(crossAt(523.25), 440)
	if err != nil {
		t.Fatal(err)
	}

	second, err := s.Find(crossAt(523.25), first)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(first-second) > s.Tolerance {
		t.Errorf("repeat with own result as guess drifted: %v -> %v", first, second)
	}
}

func TestFindNoResonance(t *testing.T) {
	s := DefaultSolver()

	tests := []struct {
		name string
		fn   Indicator
	}{
		{"always negative", func(float64) float64 { return -1 }},
		{"always positive", func(float64) float64 { return 1 }},
		{"downward crossing only", func(f float64) float64 { return 1000 - f }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Find(tt.fn, 440)
			if !errors.Is(err, ErrNoResonance) {
				t.Errorf("Find() error = %v, want ErrNoResonance", err)
			}
		})
	}
}

func TestFindSkipsDownwardCrossing(t *testing.T) {
	s := DefaultSolver()

	// Downward crossing at 500 Hz (an impedance pole), upward at 800 Hz
	// (the resonance). The pole sits inside the local window of the
	// guess and must not be mistaken for a resonance.
	fn := func(f float64) float64 {
		if f < 500 {
			return 1
		}
		return f - 800
	}

	got, err := s.Find(fn, 480)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-800) > 2*s.Tolerance {
		t.Errorf("Find = %v, want 800", got)
	}
}

func TestFindPrefersFundamentalOverNearbyMode(t *testing.T) {
	s := DefaultSolver()

	// Upward crossings at 265 and 535 Hz. The local window around the
	// guess brackets only the 535 Hz mode; the geometry edit that moved
	// the fundamental down an octave must not leave the solver stuck on
	// the mode the stale guess happens to sit near.
	fn := func(f float64) float64 {
		return math.Sin((f - 265) * math.Pi / 135)
	}

	got, err := s.Find(fn, 440)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-265) > 1 {
		t.Errorf("Find = %v, want 265 (fundamental)", got)
	}
}

func TestFindFirstCrossingWins(t *testing.T) {
	s := DefaultSolver()

	// Upward crossings at 300, 1500, 2700, ... Hz; a far-off guess must
	// land on the lowest one (the fundamental), not whichever is nearest.
	fn := func(f float64) float64 {
		return math.Sin((f - 300) * math.Pi / 600)
	}

	got, err := s.Find(fn, 4500)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(got-300) > 1 {
		t.Errorf("Find = %v, want 300 (first crossing)", got)
	}
}

func TestFindBoundedWork(t *testing.T) {
	s := DefaultSolver()

	calls := 0
	fn := func(f float64) float64 {
		calls++
		return -1
	}

	if _, err := s.Find(fn, 440); !errors.Is(err, ErrNoResonance) {
		t.Fatal("expected ErrNoResonance")
	}

	// Local window plus one full sweep, nothing unbounded.
	maxCalls := 2*s.LocalSteps + 2 + int((s.MaxFreq-s.MinFreq)/s.SweepStep) + 2
	if calls > maxCalls {
		t.Errorf("indicator evaluated %d times, cap %d", calls, maxCalls)
	}
}
