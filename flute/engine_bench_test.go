package flute

import (
	"testing"

	"github.com/cwbudde/algo-flute/internal/testutil"
)

func BenchmarkDragHotPath(b *testing.B) {
	e, err := New(60, 0.95, 0.4)
	if err != nil {
		b.Fatal(err)
	}

	positions, radii, open := testutil.SixHoleLayout()
	if err := e.SetHoles(positions, radii, open); err != nil {
		b.Fatal(err)
	}

	pitch, err := e.CalculatePitch(440)
	if err != nil {
		b.Fatal(err)
	}

	pos := 25.0

	b.ReportAllocs()

	for b.Loop() {
		// One pixel of drag, then a pitch query seeded with the
		// previous result, as a UI does per frame.
		pos += 0.01
		if pos > 35 {
			pos = 25
		}

		if err := e.UpdateHole(0, pos, 0.35, true); err != nil {
			b.Fatal(err)
		}

		p, err := e.CalculatePitch(pitch)
		if err != nil {
			b.Fatal(err)
		}

		pitch = p
	}
}
