package impedance

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-flute/bore"
)

// maxHoleRadiusRatio clamps the hole radius below the bore radius; the
// inner end-correction polynomial is fit for rh < rb and degrades as the
// ratio approaches one.
const maxHoleRadiusRatio = 0.95

// innerCorrection returns the additive effective-length term for the
// bore-side end of a tone hole, as a function of delta = rh/rb
// (closed-form fit for flanged tone-hole junctions):
//
//	t_i = rh * (0.82 - 0.193*d - 1.09*d^2 + 1.27*d^3 - 0.71*d^4)
func innerCorrection(holeRadius, boreRadius float64) float64 {
	d := holeRadius / boreRadius

	return holeRadius * (0.82 + d*(-0.193+d*(-1.09+d*(1.27-0.71*d))))
}

// HoleShunt returns the shunt impedance an open tone hole presents to
// the main bore at frequency freq.
//
// The hole is modeled as a short duct through the wall whose length is
// the wall thickness plus the inner end correction, terminated by the
// unflanged radiation impedance at its outer opening (which carries the
// outer end correction and the radiation resistance). The duct two-port
// transforms that termination into the impedance seen from the bore.
//
// Closed holes present no shunt; callers skip them rather than pass a
// literal infinite impedance through the arithmetic.
func HoleShunt(hole bore.Hole, geo bore.Geometry, freq float64) complex128 {
	rh := core.Clamp(hole.Radius, bore.MinRadius, maxHoleRadiusRatio*geo.BoreRadius)

	length := geo.WallThickness + innerCorrection(rh, geo.BoreRadius)
	m := SegmentMatrix(length, rh, freq)

	return m.Transform(Radiation(rh, freq))
}
