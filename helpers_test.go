package shapematch

import (
	"testing"

	"github.com/oliverbestmann/shapematch/gm"
	"github.com/stretchr/testify/require"
)

func requireVecInDelta(t *testing.T, expected, actual gm.Vec, delta float64, msgAndArgs ...any) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	require.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
}

// demoState builds the default scenario: 3x10 quads, scaled by 0.1.
func demoState(params Params) *State {
	mesh := GridMesh(3, 10)
	mass := InitBoundary(&mesh, 0.1, DefaultPinMass)
	return NewState(mesh, mass, params)
}

type recordingCanvas struct {
	Lines [][2]gm.Vec
}

func (r *recordingCanvas) DrawLine(p0, p1 gm.Vec) {
	r.Lines = append(r.Lines, [2]gm.Vec{p0, p1})
}

func requireMatInDelta(t *testing.T, expected, actual gm.Mat, delta float64) {
	t.Helper()
	requireVecInDelta(t, expected.XAxis, actual.XAxis, delta, "first row of %v", actual)
	requireVecInDelta(t, expected.YAxis, actual.YAxis, delta, "second row of %v", actual)
}
