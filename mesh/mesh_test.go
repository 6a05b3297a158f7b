package mesh

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-flute/bore"
)

func testGeometry() (bore.Geometry, []bore.Hole) {
	geo := bore.Geometry{Length: 60, BoreRadius: 0.95, WallThickness: 0.4}
	holes := []bore.Hole{
		{Position: 25, Radius: 0.35, Open: true},
		{Position: 32, Radius: 0.35, Open: false},
		{Position: 45, Radius: 0.4, Open: true},
	}

	return geo, holes
}

func TestBuildCounts(t *testing.T) {
	geo, holes := testGeometry()
	b := DefaultBuilder()

	m := b.Build(geo, holes)

	// Body: 4 rings. Cutters: 3 holes + mouth, 2 rings each.
	wantVerts := 4*b.BodySegments + 4*2*b.CutterSegments
	if got := m.NumVertices(); got != wantVerts {
		t.Errorf("vertices = %d, want %d", got, wantVerts)
	}

	// Body: 4 stitched bands. Cutters: one band + 2 caps each.
	wantFaces := 4*b.BodySegments + 4*(b.CutterSegments+2)
	if got := m.NumFaces(); got != wantFaces {
		t.Errorf("faces = %d, want %d", got, wantFaces)
	}
}

func TestBuildCutsClosedHoles(t *testing.T) {
	geo, holes := testGeometry()
	b := DefaultBuilder()

	open := make([]bore.Hole, len(holes))
	copy(open, holes)
	for i := range open {
		open[i].Open = true
	}

	closed := make([]bore.Hole, len(holes))
	copy(closed, holes)
	for i := range closed {
		closed[i].Open = false
	}

	// The printed part is independent of fingering.
	if b.Build(geo, open).OBJ() != b.Build(geo, closed).OBJ() {
		t.Error("open state changed the exported solid")
	}
}

func TestBuildDeterministic(t *testing.T) {
	geo, holes := testGeometry()
	b := DefaultBuilder()

	first := b.Build(geo, holes).OBJ()
	second := b.Build(geo, holes).OBJ()

	if first != second {
		t.Error("identical input produced different OBJ text")
	}
}

func TestBuildFaceIndicesValid(t *testing.T) {
	geo, holes := testGeometry()

	m := DefaultBuilder().Build(geo, holes)

	n := m.NumVertices()
	for _, g := range m.groups {
		for _, face := range g.faces {
			if len(face) < 3 {
				t.Fatalf("group %s has a degenerate %d-gon", g.name, len(face))
			}

			for _, idx := range face {
				if idx < 1 || idx > n {
					t.Fatalf("group %s references vertex %d of %d", g.name, idx, n)
				}
			}
		}
	}
}

func TestOBJFormat(t *testing.T) {
	geo, holes := testGeometry()

	obj := DefaultBuilder().Build(geo, holes).OBJ()

	lines := strings.Split(strings.TrimSuffix(obj, "\n"), "\n")
	if lines[0] != "o BoreModel" {
		t.Errorf("first line = %q, want object header", lines[0])
	}

	var vCount, fCount, gCount int
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		case strings.HasPrefix(line, "g "):
			gCount++
		default:
			t.Fatalf("unexpected line %q", line)
		}
	}

	m := DefaultBuilder().Build(geo, holes)
	if vCount != m.NumVertices() {
		t.Errorf("v lines = %d, want %d", vCount, m.NumVertices())
	}

	if fCount != m.NumFaces() {
		t.Errorf("f lines = %d, want %d", fCount, m.NumFaces())
	}

	if gCount != 3 {
		t.Errorf("g lines = %d, want 3 (body, hole cutters, mouth cutter)", gCount)
	}
}

func TestMeshGroups(t *testing.T) {
	m := New()

	m.SetGroup("A")
	m.SetGroup("A") // repeated name must not open a new group
	v1 := m.AddVertex(0, 0, 0)
	v2 := m.AddVertex(1, 0, 0)
	v3 := m.AddVertex(0, 1, 0)
	m.AddFace([]int{v1, v2, v3})

	if m.NumFaces() != 1 {
		t.Fatalf("faces = %d, want 1", m.NumFaces())
	}

	if len(m.groups) != 2 {
		t.Errorf("groups = %d, want 2 (default + A)", len(m.groups))
	}
}
