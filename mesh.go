package shapematch

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/shapematch/gm"
	"github.com/oliverbestmann/shapematch/internal/assert"
)

// Quad references the four corner vertices of a mesh element in counter-clockwise
// order: bottom-left, bottom-right, top-right, top-left.
type Quad [4]int

// Mesh is a rectangular grid of quads. Vertices are numbered row by row,
// vertex (ix, iy) has index iy*(Nx+1)+ix.
type Mesh struct {
	Nx, Ny int

	Positions []gm.Vec
	Quads     []Quad
}

// GridMesh builds a grid of nx times ny unit quads. Vertex (ix, iy) is placed at
// position (ix, iy). A grid with nx == 0 or ny == 0 has vertices but no quads.
func GridMesh(nx, ny int) Mesh {
	assert.That(nx >= 0 && ny >= 0, "grid size must not be negative, got %dx%d", nx, ny)

	mesh := Mesh{
		Nx:        nx,
		Ny:        ny,
		Positions: make([]gm.Vec, 0, (nx+1)*(ny+1)),
		Quads:     make([]Quad, 0, nx*ny),
	}

	for iy := range ny + 1 {
		for ix := range nx + 1 {
			mesh.Positions = append(mesh.Positions, gm.Vec{X: float32(ix), Y: float32(iy)})
		}
	}

	for iy := range ny {
		for ix := range nx {
			mesh.Quads = append(mesh.Quads, Quad{
				mesh.VertexIndex(ix, iy),
				mesh.VertexIndex(ix+1, iy),
				mesh.VertexIndex(ix+1, iy+1),
				mesh.VertexIndex(ix, iy+1),
			})
		}
	}

	return mesh
}

// VertexIndex returns the index of the lattice vertex at (ix, iy).
func (m *Mesh) VertexIndex(ix, iy int) int {
	return iy*(m.Nx+1) + ix
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Validate checks the topology invariants of the mesh.
func (m *Mesh) Validate() error {
	var errs []error

	if expected := (m.Nx + 1) * (m.Ny + 1); len(m.Positions) != expected {
		errs = append(errs, fmt.Errorf("expected %d vertices for a %dx%d grid, got %d",
			expected, m.Nx, m.Ny, len(m.Positions)))
	}

	for idx, quad := range m.Quads {
		for corner, vertex := range quad {
			if vertex < 0 || vertex >= len(m.Positions) {
				errs = append(errs, fmt.Errorf("quad %d: corner %d references invalid vertex %d", idx, corner, vertex))
			}
		}
	}

	return errors.Join(errs...)
}
