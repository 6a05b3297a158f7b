// Package reflectogram derives a time-domain reflection picture of a
// bore from its input impedance spectrum.
//
// The reflectance R(f) = (Z(f) - Zc) / (Z(f) + Zc) is sampled on a
// uniform frequency grid, extended to a Hermitian spectrum, and inverse
// FFT'd. Peaks in the result sit at the round-trip delay 2x/c of each
// impedance discontinuity: the open end, every open tone hole, and any
// bore step. This is the standard acoustic pulse reflectometry view and
// is useful for sanity-checking a hole layout without a frequency plot.
package reflectogram

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by Compute.
var (
	ErrInvalidBandwidth = errors.New("reflectogram: bandwidth must be positive")
	ErrTooFewPoints     = errors.New("reflectogram: need at least two spectral points")
	ErrZeroReference    = errors.New("reflectogram: reference impedance must be nonzero")
)

// Evaluator returns the complex input impedance at a frequency in Hz.
type Evaluator func(freq float64) complex128

// TimeStep returns the sample spacing in seconds of a reflectogram
// computed with the given bandwidth.
func TimeStep(maxHz float64) float64 {
	return 1 / (2 * maxHz)
}

// Compute samples the reflectance against the reference impedance zc on
// points frequencies from 0 to maxHz (rounded up to a power of two),
// and returns the inverse transform.
//
// The result has twice the (rounded) point count of samples spaced
// TimeStep(maxHz) apart. Energy at index i reflects from a
// discontinuity at distance i * TimeStep(maxHz) * c / 2 down the bore.
func Compute(eval Evaluator, zc complex128, maxHz float64, points int) ([]float64, error) {
	if maxHz <= 0 {
		return nil, ErrInvalidBandwidth
	}

	if points < 2 {
		return nil, ErrTooFewPoints
	}

	if cmplx.Abs(zc) == 0 {
		return nil, ErrZeroReference
	}

	n := nextPowerOf2(points)
	size := 2 * n

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("reflectogram: failed to create FFT plan: %w", err)
	}

	df := maxHz / float64(n)
	spectrum := make([]complex128, size)

	for i := 0; i <= n; i++ {
		z := eval(df * float64(i))
		r := (z - zc) / (z + zc)

		if i == n {
			// Nyquist bin must be real for a real-valued output.
			spectrum[i] = complex(real(r), 0)
			continue
		}

		spectrum[i] = r
		if i > 0 {
			spectrum[size-i] = cmplx.Conj(r)
		}
	}

	timeDomain := make([]complex128, size)
	if err := plan.Inverse(timeDomain, spectrum); err != nil {
		return nil, fmt.Errorf("reflectogram: inverse FFT failed: %w", err)
	}

	out := make([]float64, size)
	for i := range out {
		out[i] = real(timeDomain[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
