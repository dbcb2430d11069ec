package shapematch

import (
	"testing"

	"github.com/oliverbestmann/shapematch/gm"
	"github.com/stretchr/testify/require"
)

func TestGridMesh(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 10}, {4, 2}, {7, 7}}

	for _, size := range sizes {
		nx, ny := size[0], size[1]
		mesh := GridMesh(nx, ny)

		require.Equal(t, (nx+1)*(ny+1), mesh.VertexCount())
		require.Len(t, mesh.Quads, nx*ny)
		require.NoError(t, mesh.Validate())

		for _, quad := range mesh.Quads {
			seen := map[int]bool{}
			for _, vertex := range quad {
				require.GreaterOrEqual(t, vertex, 0)
				require.Less(t, vertex, mesh.VertexCount())
				require.False(t, seen[vertex], "vertex %d used twice in quad %v", vertex, quad)
				seen[vertex] = true
			}
		}

		for iy := range ny + 1 {
			for ix := range nx + 1 {
				pos := mesh.Positions[mesh.VertexIndex(ix, iy)]
				require.Equal(t, gm.Vec{X: float32(ix), Y: float32(iy)}, pos)
			}
		}
	}
}

func TestGridMesh_Winding(t *testing.T) {
	mesh := GridMesh(3, 2)

	// quad (1, 1) starts at vertex (1, 1) and runs counter-clockwise
	require.Equal(t, Quad{5, 6, 10, 9}, mesh.Quads[4])

	for _, quad := range mesh.Quads {
		var area float32
		for corner := range 4 {
			a := mesh.Positions[quad[corner]]
			b := mesh.Positions[quad[(corner+1)%4]]
			area += a.Cross(b) / 2
		}

		require.Equal(t, float32(1), area)
	}
}

func TestGridMesh_Degenerate(t *testing.T) {
	mesh := GridMesh(0, 4)
	require.Empty(t, mesh.Quads)
	require.Equal(t, 5, mesh.VertexCount())
	require.NoError(t, mesh.Validate())

	mesh = GridMesh(2, 0)
	require.Empty(t, mesh.Quads)
	require.Equal(t, 3, mesh.VertexCount())

	require.Panics(t, func() { GridMesh(-1, 2) })
}

func TestMesh_Validate(t *testing.T) {
	mesh := GridMesh(2, 2)
	mesh.Quads[3][2] = 42
	require.ErrorContains(t, mesh.Validate(), "invalid vertex 42")

	mesh = GridMesh(2, 2)
	mesh.Positions = mesh.Positions[:4]
	require.Error(t, mesh.Validate())
}
