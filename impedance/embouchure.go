package impedance

import (
	"math"
	"math/cmplx"
)

// Embouchure describes the excitation-end correction of a transverse
// flute: the closed cork cavity upstream of the mouth hole and the
// mouth hole itself, which shunts the bore to the outside air.
//
// Setting HoleRadius to zero disables the correction, leaving the bare
// bore input impedance as the resonance reference.
type Embouchure struct {
	CorkDistance float64 // mouth-hole center to cork, cm
	HoleRadius   float64 // mouth-hole radius, cm
	Chimney      float64 // chimney (lip plate) height, cm
}

// DefaultEmbouchure returns typical concert-flute values.
func DefaultEmbouchure() Embouchure {
	return Embouchure{CorkDistance: 1.7, HoleRadius: 0.5, Chimney: 0.5}
}

// Enabled reports whether the correction participates in the model.
func (e Embouchure) Enabled() bool {
	return e.HoleRadius > 0
}

// Admittance returns the total admittance seen by the jet drive: the
// parallel sum of the bore, the cork stub, and the mouth-hole branch.
// The playing resonance sits where its imaginary part crosses zero from
// below with increasing frequency.
func (e Embouchure) Admittance(zBore complex128, boreRadius, freq float64) complex128 {
	y := invGuarded(zBore)

	if !e.Enabled() {
		return y
	}

	omega := 2 * math.Pi * freq

	// Closed cork stub: Z = -j*Z0*cot(kL), taken as an admittance so a
	// stub resonance never divides by zero.
	if e.CorkDistance > 0 {
		k := Wavenumber(boreRadius, freq)
		y += 1i * cmplx.Tan(k*complex(e.CorkDistance, 0)) / Characteristic(boreRadius)
	}

	// Mouth hole: inertance of the chimney plus end correction, with
	// unflanged radiation resistance.
	area := math.Pi * e.HoleRadius * e.HoleRadius
	tEff := e.Chimney + 1.5*e.HoleRadius
	ka := omega / SpeedOfSound * e.HoleRadius
	radRes := AirDensity * SpeedOfSound / area * 0.25 * ka * ka
	zEmb := complex(radRes, omega*AirDensity*tEff/area)

	return y + invGuarded(zEmb)
}

// Correct folds the embouchure branches into the bore input impedance,
// returning the total impedance seen by the jet.
func (e Embouchure) Correct(zBore complex128, boreRadius, freq float64) complex128 {
	if !e.Enabled() {
		return zBore
	}

	return invGuarded(e.Admittance(zBore, boreRadius, freq))
}

func invGuarded(z complex128) complex128 {
	if cmplx.Abs(z) < 1e-10 {
		return complex(1e10, 0)
	}

	return 1 / z
}
