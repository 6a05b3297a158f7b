package bore

import "errors"

// Errors returned by geometry validation.
var (
	ErrInvalidLength    = errors.New("bore: length must be positive")
	ErrInvalidRadius    = errors.New("bore: bore radius must be positive")
	ErrInvalidThickness = errors.New("bore: wall thickness must be positive")
)

// MinRadius is the smallest radius accepted by the acoustic model, in cm.
// Segment and hole radii are clamped up to this value so that loss and
// end-correction terms never divide by zero.
const MinRadius = 1e-3

// Geometry holds the global tube parameters, in centimeters.
type Geometry struct {
	Length        float64 // excitation end to open distal end
	BoreRadius    float64 // inner radius
	WallThickness float64 // radial wall thickness
}

// Validate checks that all tube parameters are strictly positive.
func (g Geometry) Validate() error {
	if g.Length <= 0 {
		return ErrInvalidLength
	}

	if g.BoreRadius <= 0 {
		return ErrInvalidRadius
	}

	if g.WallThickness <= 0 {
		return ErrInvalidThickness
	}

	return nil
}

// Hole is a tone hole drilled through the tube wall.
//
// Position is the distance from the excitation end in cm. Open reports
// whether the hole is currently unfingered. Hole collections are not
// required to be sorted by position.
type Hole struct {
	Position float64
	Radius   float64
	Open     bool
}
