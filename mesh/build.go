package mesh

import (
	"math"

	"github.com/cwbudde/algo-flute/bore"
)

// Builder holds the tessellation parameters for Build. Zero values are
// not usable; start from DefaultBuilder.
type Builder struct {
	BodySegments   int     // ring resolution of the tube body
	CutterSegments int     // ring resolution of hole cutters
	MouthRadius    float64 // mouth-hole cutter radius, cm
	HeadExtension  float64 // tube continues this far behind x=0, cm
	CutterMargin   float64 // cutters overshoot the wall by this much, cm
}

// DefaultBuilder returns the standard tessellation: 64-segment body,
// 32-segment cutters, concert-flute mouth hole, 5 cm headjoint.
func DefaultBuilder() Builder {
	return Builder{
		BodySegments:   64,
		CutterSegments: 32,
		MouthRadius:    0.4,
		HeadExtension:  5,
		CutterMargin:   0.5,
	}
}

// Build produces the solid model for the given geometry and holes.
//
// The tube body spans x = -HeadExtension (behind the mouth hole, where
// the real instrument carries its stopper) to x = Length. Each hole,
// open or closed, contributes a capped cutter cylinder through the
// wall; the mouth hole contributes one at x = 0. Hole order follows the
// caller's slice, so the output is reproducible bit for bit.
func (b Builder) Build(geo bore.Geometry, holes []bore.Hole) *Mesh {
	m := New()

	rInner := geo.BoreRadius
	rOuter := geo.BoreRadius + geo.WallThickness

	m.SetGroup("TubeBody")

	headX := -b.HeadExtension
	leftIn := b.addRing(m, headX, rInner)
	leftOut := b.addRing(m, headX, rOuter)
	rightIn := b.addRing(m, geo.Length, rInner)
	rightOut := b.addRing(m, geo.Length, rOuter)

	// Outer surface faces out, inner faces into the bore, rims close
	// the wall annulus at both ends.
	b.stitch(m, leftOut, rightOut, true)
	b.stitch(m, leftIn, rightIn, false)
	b.stitch(m, leftOut, leftIn, false)
	b.stitch(m, rightOut, rightIn, true)

	m.SetGroup("HoleCutters")

	for _, h := range holes {
		r := h.Radius
		if r < bore.MinRadius {
			r = bore.MinRadius
		}

		b.addCutter(m, h.Position, r, rInner, rOuter)
	}

	m.SetGroup("MouthHoleCutter")
	b.addCutter(m, 0, b.MouthRadius, rInner, rOuter)

	return m
}

// addRing appends a circle of vertices around the tube axis at axial
// position x and returns their indices.
func (b Builder) addRing(m *Mesh, x, r float64) []int {
	indices := make([]int, b.BodySegments)

	for i := range indices {
		theta := 2 * math.Pi * float64(i) / float64(b.BodySegments)
		indices[i] = m.AddVertex(x, r*math.Cos(theta), r*math.Sin(theta))
	}

	return indices
}

// stitch connects two equal-length vertex rings with quads. flip
// reverses the winding so outward- and inward-facing surfaces keep
// consistent normals.
func (b Builder) stitch(m *Mesh, r1, r2 []int, flip bool) {
	n := len(r1)

	for i := range n {
		next := (i + 1) % n

		if flip {
			m.AddFace([]int{r1[i], r1[next], r2[next], r2[i]})
		} else {
			m.AddFace([]int{r1[i], r2[i], r2[next], r1[next]})
		}
	}
}

// addCutter appends a capped cylinder along the y axis piercing the
// wall at axial position x, for boolean subtraction in slicing tools.
func (b Builder) addCutter(m *Mesh, x, r, rInner, rOuter float64) {
	yStart := rInner - b.CutterMargin
	yEnd := rOuter + b.CutterMargin

	bottom := make([]int, b.CutterSegments)
	top := make([]int, b.CutterSegments)

	for i := range bottom {
		theta := 2 * math.Pi * float64(i) / float64(b.CutterSegments)
		dx := r * math.Cos(theta)
		dz := r * math.Sin(theta)

		bottom[i] = m.AddVertex(x+dx, yStart, dz)
		top[i] = m.AddVertex(x+dx, yEnd, dz)
	}

	b.stitch(m, bottom, top, false)

	// N-gon caps close the cutter into a solid.
	capFace := make([]int, b.CutterSegments)
	for i := range capFace {
		capFace[i] = bottom[b.CutterSegments-1-i]
	}

	m.AddFace(capFace)

	copy(capFace, top)
	m.AddFace(capFace)
}
