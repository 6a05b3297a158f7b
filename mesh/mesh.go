// Package mesh builds a printable solid model of a bore geometry and
// serializes it as Wavefront OBJ text.
//
// The solid is a polygon-revolution approximation: an outer wall and an
// inner bore surface stitched from vertex rings, with cylindrical
// cutter solids through the wall at each tone hole and at the mouth
// hole. Cutters are emitted for every hole regardless of its open
// state; the model describes the instrument as manufactured, not as
// fingered.
//
// Output is deterministic: identical input produces byte-identical OBJ
// text. Vertex and face order follow insertion order only.
package mesh

import (
	"fmt"
	"io"
	"strings"
)

// Mesh is an indexed face set with ordered, named face groups. Vertex
// indices are 1-based as in the OBJ format.
type Mesh struct {
	vertices [][3]float64
	groups   []group
}

type group struct {
	name  string
	faces [][]int
}

// New returns an empty mesh with a single default group.
func New() *Mesh {
	return &Mesh{groups: []group{{name: "default"}}}
}

// SetGroup starts a new face group. Faces added afterwards belong to it.
func (m *Mesh) SetGroup(name string) {
	if m.groups[len(m.groups)-1].name != name {
		m.groups = append(m.groups, group{name: name})
	}
}

// AddVertex appends a vertex and returns its 1-based index.
func (m *Mesh) AddVertex(x, y, z float64) int {
	m.vertices = append(m.vertices, [3]float64{x, y, z})

	return len(m.vertices)
}

// AddFace appends a polygon to the current group. The index slice is
// copied.
func (m *Mesh) AddFace(indices []int) {
	g := &m.groups[len(m.groups)-1]
	g.faces = append(g.faces, append([]int(nil), indices...))
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumFaces returns the face count across all groups.
func (m *Mesh) NumFaces() int {
	n := 0
	for _, g := range m.groups {
		n += len(g.faces)
	}

	return n
}

// WriteOBJ writes the mesh as OBJ text: one object, vertex lines with
// four decimal places, then grouped face lines.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	if _, err := io.WriteString(w, "o BoreModel\n"); err != nil {
		return err
	}

	for _, v := range m.vertices {
		if _, err := fmt.Fprintf(w, "v %.4f %.4f %.4f\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}

	for _, g := range m.groups {
		if len(g.faces) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "g %s\n", g.name); err != nil {
			return err
		}

		for _, face := range g.faces {
			if _, err := io.WriteString(w, "f"); err != nil {
				return err
			}

			for _, idx := range face {
				if _, err := fmt.Fprintf(w, " %d", idx); err != nil {
					return err
				}
			}

			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}

	return nil
}

// OBJ returns the mesh as OBJ text.
func (m *Mesh) OBJ() string {
	var sb strings.Builder

	// strings.Builder never returns a write error.
	_ = m.WriteOBJ(&sb)

	return sb.String()
}
