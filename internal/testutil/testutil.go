// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// LCG is a tiny deterministic linear congruential generator, used for
// fuzz-style tests that must reproduce bit for bit across runs.
type LCG struct {
	seed uint32
}

// NewLCG returns a generator with the given seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{seed: seed}
}

// Float64 returns a deterministic pseudo-random value in [0, 1).
func (l *LCG) Float64() float64 {
	l.seed = (l.seed*1103515245 + 12345) & 0x7fffffff

	return float64(l.seed) / float64(0x80000000)
}

// Range returns a deterministic pseudo-random value in [lo, hi).
func (l *LCG) Range(lo, hi float64) float64 {
	return lo + l.Float64()*(hi-lo)
}

// SixHoleLayout returns the standard six-hole test flute layout:
// positions and radii in cm along a 60 cm tube, all holes open.
func SixHoleLayout() (positions, radii []float64, open []bool) {
	positions = []float64{25, 28, 32, 36, 40, 45}
	radii = []float64{0.35, 0.35, 0.35, 0.35, 0.4, 0.4}
	open = []bool{true, true, true, true, true, true}

	return positions, radii, open
}
