// Package resonance locates playing resonances on an impedance curve.
//
// The solver finds the lowest frequency above a cutoff at which a
// caller-supplied resonance indicator crosses zero from negative to
// positive with increasing frequency. For a bore input impedance the
// indicator is Im(Z_in); crossings in the other direction are impedance
// poles and are skipped.
//
// Two strategies are combined because the solver runs on every frame of
// an interactive drag: a bounded local search around the caller's guess
// (the previous pitch is almost always an excellent guess), falling back
// to a coarse full-range sweep after discontinuous edits. A local
// bracket can land on a higher mode when an edit moves the fundamental
// far from the guess, so it is confirmed by sweeping the range below it;
// the solver always reports the lowest crossing. Work per call is
// bounded by fixed step and iteration caps, so worst-case latency is
// constant.
package resonance

import (
	"errors"
	"math"
)

// ErrNoResonance is returned when no upward zero crossing of the
// indicator exists in the full search range.
var ErrNoResonance = errors.New("resonance: no resonance found in search range")

// Indicator evaluates the resonance indicator at a frequency in Hz.
// It must be a pure function of frequency for the duration of a Find
// call.
type Indicator func(freq float64) float64

// Solver holds the search configuration. The zero value is not usable;
// start from DefaultSolver.
type Solver struct {
	MinFreq   float64 // lower cutoff, Hz
	MaxFreq   float64 // upper cutoff, Hz
	Tolerance float64 // absolute refinement tolerance, Hz

	LocalStep  float64 // bracket step around the guess, Hz
	LocalSteps int     // steps outward on each side of the guess

	SweepStep float64 // fallback full-range sweep resolution, Hz

	MaxIterations int // bisection iteration cap
}

// DefaultSolver returns the search configuration used by the flute
// engine: 20 Hz to 5 kHz, 0.01 Hz tolerance.
func DefaultSolver() Solver {
	return Solver{
		MinFreq:       20,
		MaxFreq:       5000,
		Tolerance:     0.01,
		LocalStep:     5,
		LocalSteps:    24,
		SweepStep:     2,
		MaxIterations: 60,
	}
}

// Find returns the frequency of the first upward zero crossing of fn
// above MinFreq.
//
// A guess inside [MinFreq, MaxFreq] is bracketed with a fixed-step
// local scan; a guess outside the range carries no information and goes
// straight to the fallback. A successful local bracket can still sit on
// a higher mode, so the range below it is swept and an earlier crossing
// takes precedence. If no sign change brackets near the guess, a coarse
// sweep over the full range locates the first crossing above MinFreq.
// Either way the bracket is refined by bisection to Tolerance or
// MaxIterations, whichever comes first. Find allocates nothing.
func (s Solver) Find(fn Indicator, guess float64) (float64, error) {
	if guess >= s.MinFreq && guess <= s.MaxFreq {
		if lo, hi, ok := s.bracketLocal(fn, guess); ok {
			if lo2, hi2, ok := s.bracketSweep(fn, lo); ok {
				lo, hi = lo2, hi2
			}

			return s.bisect(fn, lo, hi), nil
		}
	}

	if lo, hi, ok := s.bracketSweep(fn, s.MaxFreq); ok {
		return s.bisect(fn, lo, hi), nil
	}

	return 0, ErrNoResonance
}

// bracketLocal scans a fixed window around the guess and returns the
// first upward sign change, searching the window in ascending frequency
// so the lowest nearby crossing wins.
func (s Solver) bracketLocal(fn Indicator, guess float64) (lo, hi float64, ok bool) {
	span := float64(s.LocalSteps) * s.LocalStep

	start := math.Max(guess-span, s.MinFreq)
	end := math.Min(guess+span, s.MaxFreq)

	prevF := start
	prevV := fn(start)

	for f := start + s.LocalStep; f <= end+s.LocalStep/2; f += s.LocalStep {
		if f > end {
			f = end
		}

		v := fn(f)
		if prevV < 0 && v >= 0 {
			return prevF, f, true
		}

		prevF, prevV = f, v
	}

	return 0, 0, false
}

// bracketSweep walks [MinFreq, limit] at SweepStep resolution and
// returns the first upward sign change.
func (s Solver) bracketSweep(fn Indicator, limit float64) (lo, hi float64, ok bool) {
	prevF := s.MinFreq
	prevV := fn(s.MinFreq)

	for f := s.MinFreq + s.SweepStep; f <= limit; f += s.SweepStep {
		v := fn(f)
		if prevV < 0 && v >= 0 {
			return prevF, f, true
		}

		prevF, prevV = f, v
	}

	return 0, 0, false
}

// bisect refines a bracketing interval with plain bisection. The
// bracket is assumed to hold fn(lo) < 0 <= fn(hi).
func (s Solver) bisect(fn Indicator, lo, hi float64) float64 {
	for range s.MaxIterations {
		if hi-lo <= s.Tolerance {
			break
		}

		mid := 0.5 * (lo + hi)
		if fn(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0.5 * (lo + hi)
}
