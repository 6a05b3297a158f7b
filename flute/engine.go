package flute

import (
	"errors"
	"io"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-flute/bore"
	"github.com/cwbudde/algo-flute/impedance"
	"github.com/cwbudde/algo-flute/measure/reflectogram"
	"github.com/cwbudde/algo-flute/mesh"
	"github.com/cwbudde/algo-flute/resonance"
)

// Errors returned by hole mutations and curve queries.
var (
	ErrHoleArrayMismatch = errors.New("flute: hole arrays must have equal length")
	ErrHoleIndex         = errors.New("flute: hole index out of range")
	ErrCurveRange        = errors.New("flute: curve range must satisfy 0 < min < max with at least two points")
)

// Engine is the stateful solver handle handed to a host UI.
//
// The zero value is not usable; construct with New. See the package
// documentation for the ownership and serialization contract.
type Engine struct {
	geo    bore.Geometry
	emb    impedance.Embouchure
	holes  []bore.Hole
	solver resonance.Solver
	mesher mesh.Builder

	// Scratch reused across queries so the drag hot path stays
	// allocation-free.
	topo      bore.Topology
	indicator resonance.Indicator
	curveRe   []float64
	curveIm   []float64
}

// New constructs an engine for a tube of the given length, bore radius,
// and wall thickness (cm). All three must be strictly positive. The
// embouchure correction starts at concert-flute defaults.
func New(length, boreRadius, wallThickness float64) (*Engine, error) {
	geo := bore.Geometry{Length: length, BoreRadius: boreRadius, WallThickness: wallThickness}
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		geo:    geo,
		emb:    impedance.DefaultEmbouchure(),
		solver: resonance.DefaultSolver(),
		mesher: mesh.DefaultBuilder(),
	}

	// Built once so CalculatePitch does not allocate a closure per call.
	e.indicator = func(freq float64) float64 {
		z := impedance.InputImpedance(&e.topo, freq)
		if e.emb.Enabled() {
			return imag(e.emb.Admittance(z, e.geo.BoreRadius, freq))
		}

		return imag(z)
	}

	return e, nil
}

// SetPhysicsParams replaces the tube parameters wholesale. On error the
// previous parameters remain in effect.
func (e *Engine) SetPhysicsParams(length, boreRadius, wallThickness float64) error {
	geo := bore.Geometry{Length: length, BoreRadius: boreRadius, WallThickness: wallThickness}
	if err := geo.Validate(); err != nil {
		return err
	}

	e.geo = geo

	return nil
}

// SetEmbouchure replaces the excitation-end correction parameters. A
// zero hole radius disables the correction, making pitch queries use
// the bare bore input impedance.
func (e *Engine) SetEmbouchure(corkDistance, holeRadius, chimney float64) {
	e.emb = impedance.Embouchure{CorkDistance: corkDistance, HoleRadius: holeRadius, Chimney: chimney}
}

// SetHoles replaces the entire hole collection. The three slices must
// have equal length; on mismatch the previous collection is untouched.
func (e *Engine) SetHoles(positions, radii []float64, open []bool) error {
	if len(positions) != len(radii) || len(positions) != len(open) {
		return ErrHoleArrayMismatch
	}

	e.holes = e.holes[:0]
	for i := range positions {
		e.holes = append(e.holes, bore.Hole{Position: positions[i], Radius: radii[i], Open: open[i]})
	}

	return nil
}

// UpdateHole mutates one hole in place. This is the drag hot path: it
// performs a bounds check and three field writes, nothing else.
func (e *Engine) UpdateHole(index int, position, radius float64, open bool) error {
	if index < 0 || index >= len(e.holes) {
		return ErrHoleIndex
	}

	e.holes[index] = bore.Hole{Position: position, Radius: radius, Open: open}

	return nil
}

// NumHoles returns the hole count.
func (e *Engine) NumHoles() int {
	return len(e.holes)
}

// Holes returns a copy of the hole collection in caller order.
func (e *Engine) Holes() []bore.Hole {
	out := make([]bore.Hole, len(e.holes))
	copy(out, e.holes)

	return out
}

// CalculatePitch returns the fundamental resonance frequency in Hz for
// the current geometry.
//
// guessHz seeds the local search; passing the previously returned pitch
// keeps per-frame queries cheap during drags. A guess of zero or less
// falls back to the half-wave estimate c/2L. When no resonance exists
// in the search range the error is resonance.ErrNoResonance and the
// host should keep its previous pitch.
func (e *Engine) CalculatePitch(guessHz float64) (float64, error) {
	if guessHz <= 0 {
		guessHz = impedance.SpeedOfSound / (2 * e.geo.Length)
	}

	e.topo.Build(e.geo, e.holes)

	return e.solver.Find(e.indicator, guessHz)
}

// InputImpedance returns the bore input impedance at the excitation end
// for a single frequency, without the embouchure correction.
func (e *Engine) InputImpedance(freq float64) complex128 {
	e.topo.Build(e.geo, e.holes)

	return impedance.InputImpedance(&e.topo, freq)
}

// ImpedanceCurve samples |Z_in| on points frequencies linearly spaced
// over [minHz, maxHz], for plotting and inspection.
func (e *Engine) ImpedanceCurve(minHz, maxHz float64, points int) ([]float64, error) {
	if minHz <= 0 || maxHz <= minHz || points < 2 {
		return nil, ErrCurveRange
	}

	e.topo.Build(e.geo, e.holes)

	e.curveRe = core.EnsureLen(e.curveRe, points)
	e.curveIm = core.EnsureLen(e.curveIm, points)

	step := (maxHz - minHz) / float64(points-1)
	for i := range points {
		z := impedance.InputImpedance(&e.topo, minHz+step*float64(i))
		e.curveRe[i] = real(z)
		e.curveIm[i] = imag(z)
	}

	out := make([]float64, points)
	vecmath.Magnitude(out, e.curveRe, e.curveIm)

	return out, nil
}

// Reflectogram returns the time-domain reflection response of the bore
// sampled up to maxHz; see the measure/reflectogram package for the
// interpretation of the axes.
func (e *Engine) Reflectogram(maxHz float64, points int) ([]float64, error) {
	e.topo.Build(e.geo, e.holes)

	eval := func(freq float64) complex128 {
		return impedance.InputImpedance(&e.topo, freq)
	}

	return reflectogram.Compute(eval, impedance.Characteristic(e.geo.BoreRadius), maxHz, points)
}

// WriteOBJ writes the printable solid for the current geometry. Holes
// are cut whether open or closed; the solid is the instrument as
// manufactured.
func (e *Engine) WriteOBJ(w io.Writer) error {
	return e.mesher.Build(e.geo, e.holes).WriteOBJ(w)
}

// ExportOBJ returns the printable solid as OBJ text. Identical geometry
// yields byte-identical output.
func (e *Engine) ExportOBJ() string {
	return e.mesher.Build(e.geo, e.holes).OBJ()
}
