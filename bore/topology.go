package bore

import "github.com/cwbudde/algo-dsp/dsp/core"

// Segment is a plain cylindrical section of the bore with no side branch.
type Segment struct {
	Start  float64
	End    float64
	Radius float64
}

// Length returns the axial extent of the segment. It can be zero when
// two holes coincide or a hole sits at a tube end after clamping.
func (s Segment) Length() float64 {
	return s.End - s.Start
}

// Topology is the derived, position-ordered partition of the tube into
// plain segments and hole junctions.
//
// Segments has exactly len(Junctions)+1 entries; Segments[i] covers the
// gap before Junctions[i], and the final segment runs to the open end.
// Together they span [0, Length] with no gaps or overlaps. Closed holes
// still appear as junctions so that length bookkeeping is uniform; they
// contribute no admittance downstream.
//
// A Topology is a scratch value: Build reuses its backing slices, so one
// instance can be rebuilt every frame without allocating.
type Topology struct {
	Geo       Geometry
	Segments  []Segment
	Junctions []Hole
}

// Build derives the topology for the given geometry and hole collection.
//
// The caller's hole slice is never reordered or written to. Positions
// outside [0, Length] are clamped onto the tube, and radii are raised to
// MinRadius; both are numerical-singularity guards, not validation.
func (t *Topology) Build(geo Geometry, holes []Hole) {
	t.Geo = geo
	t.Junctions = t.Junctions[:0]
	t.Segments = t.Segments[:0]

	for _, h := range holes {
		h.Position = core.Clamp(h.Position, 0, geo.Length)
		if h.Radius < MinRadius {
			h.Radius = MinRadius
		}

		t.Junctions = append(t.Junctions, h)
	}

	// Hole counts are small (a few dozen at most), so an insertion sort
	// keeps the rebuild allocation-free.
	sortByPosition(t.Junctions)

	pos := 0.0
	for _, h := range t.Junctions {
		t.Segments = append(t.Segments, Segment{Start: pos, End: h.Position, Radius: geo.BoreRadius})
		pos = h.Position
	}

	t.Segments = append(t.Segments, Segment{Start: pos, End: geo.Length, Radius: geo.BoreRadius})
}

func sortByPosition(holes []Hole) {
	for i := 1; i < len(holes); i++ {
		h := holes[i]

		j := i - 1
		for j >= 0 && holes[j].Position > h.Position {
			holes[j+1] = holes[j]
			j--
		}

		holes[j+1] = h
	}
}
