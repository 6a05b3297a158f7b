package impedance

import (
	"math/cmplx"

	"github.com/cwbudde/algo-flute/bore"
)

// Matrix is the 2x2 complex ABCD transfer matrix of a duct two-port,
// relating pressure and volume flow at its ends:
//
//	p_in = A*p_out + B*u_out
//	u_in = C*p_out + D*u_out
type Matrix struct {
	A, B, C, D complex128
}

// Identity returns the transfer matrix of a zero-length duct.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1}
}

// SegmentMatrix returns the lossy cylindrical-duct transfer matrix for a
// segment of the given length and radius at frequency freq:
//
//	A = D = cos(kL),  B = j*Z0*sin(kL),  C = j*sin(kL)/Z0
//
// with k the complex wavenumber and Z0 the characteristic impedance. A
// zero length yields the identity matrix exactly.
func SegmentMatrix(length, radius, freq float64) Matrix {
	if length == 0 {
		return Identity()
	}

	if radius < bore.MinRadius {
		radius = bore.MinRadius
	}

	k := Wavenumber(radius, freq)
	z0 := Characteristic(radius)
	kl := k * complex(length, 0)

	cosKL := cmplx.Cos(kl)
	sinKL := cmplx.Sin(kl)

	return Matrix{
		A: cosKL,
		B: 1i * z0 * sinKL,
		C: 1i * sinKL / z0,
		D: cosKL,
	}
}

// Transform maps a load impedance at the far end of the two-port to the
// impedance seen at the near end: Z = (A*Zl + B) / (C*Zl + D).
func (m Matrix) Transform(load complex128) complex128 {
	den := m.C*load + m.D
	if cmplx.Abs(den) < 1e-30 {
		return complex(1e30, 0)
	}

	return (m.A*load + m.B) / den
}

// Mul returns the matrix product m*n, the two-port formed by m followed
// by n toward the load.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// parallel combines two impedances as parallel branches, guarding the
// degenerate magnitudes that show up when a wide-open hole shorts the
// bore to the outside air.
func parallel(a, b complex128) complex128 {
	if cmplx.Abs(a) < 1e-12 || cmplx.Abs(b) < 1e-12 {
		return 0
	}

	den := a + b
	if cmplx.Abs(den) < 1e-30 {
		return 0
	}

	return a * b / den
}
