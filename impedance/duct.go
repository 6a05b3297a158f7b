package impedance

import (
	"math"

	"github.com/cwbudde/algo-flute/bore"
)

// Physical constants for air at room temperature, cgs units.
const (
	SpeedOfSound = 34500.0 // cm/s
	AirDensity   = 0.0012  // g/cm^3
)

// viscothermalCoeff scales the boundary-layer attenuation term
// alpha = viscothermalCoeff * sqrt(f) / r (per cm).
const viscothermalCoeff = 1.2e-5

// Wavenumber returns the complex wavenumber for a cylindrical duct of
// the given radius at frequency freq in Hz.
//
// The real part is 2*pi*f/c; the imaginary part carries viscothermal
// boundary-layer attenuation scaling as 1/(r*sqrt(f)), negative under
// the e^{j*omega*t} time convention so that propagation decays. The
// radius is clamped to bore.MinRadius.
func Wavenumber(radius, freq float64) complex128 {
	if radius < bore.MinRadius {
		radius = bore.MinRadius
	}

	if freq < 0 {
		freq = 0
	}

	alpha := viscothermalCoeff * math.Sqrt(freq) / radius

	return complex(2*math.Pi*freq/SpeedOfSound, -alpha)
}

// Characteristic returns the characteristic acoustic impedance
// rho*c/(pi*r^2) of a cylindrical duct.
func Characteristic(radius float64) complex128 {
	if radius < bore.MinRadius {
		radius = bore.MinRadius
	}

	return complex(AirDensity*SpeedOfSound/(math.Pi*radius*radius), 0)
}

// Radiation returns the unflanged-pipe radiation impedance at an open
// duct end of the given radius:
//
//	Z_rad = Zc * (0.25*(ka)^2 + j*0.61*ka)
//
// The resistive term models sound radiating away; the 0.61*ka reactance
// is the standard unflanged end correction.
func Radiation(radius, freq float64) complex128 {
	if radius < bore.MinRadius {
		radius = bore.MinRadius
	}

	ka := 2 * math.Pi * freq / SpeedOfSound * radius

	return Characteristic(radius) * complex(0.25*ka*ka, 0.61*ka)
}
