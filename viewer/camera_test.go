package viewer

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapematch/gm"
	"github.com/stretchr/testify/require"
)

func requirePointInDelta(t *testing.T, expected, actual cp.Vector) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, 1e-3)
	require.InDelta(t, expected.Y, actual.Y, 1e-3)
}

func TestOrthographicProjection_WorldToScreen(t *testing.T) {
	projection := OrthographicProjection{
		ViewportOrigin: gm.VecSplat[float32](0.5),
		ScalingMode:    ScalingModeFixedVertical{ViewportHeight: 2},
		Scale:          1,
	}

	screen := gm.Vec{X: 800, Y: 600}

	area := projection.VisibleArea(screen)
	require.InDelta(t, -4.0/3.0, area.L, 1e-6)
	require.InDelta(t, 4.0/3.0, area.R, 1e-6)
	require.InDelta(t, -1, area.B, 1e-6)
	require.InDelta(t, 1, area.T, 1e-6)

	tr := projection.WorldToScreen(screen)

	// the world origin is at the center of the screen
	requirePointInDelta(t, cp.Vector{X: 400, Y: 300}, tr.Point(cp.Vector{}))

	// y points up in the world but down on the screen
	requirePointInDelta(t, cp.Vector{X: 400, Y: 0}, tr.Point(cp.Vector{Y: 1}))
	requirePointInDelta(t, cp.Vector{X: 400, Y: 600}, tr.Point(cp.Vector{Y: -1}))

	// one world unit has the same size in both directions
	requirePointInDelta(t, cp.Vector{X: 700, Y: 300}, tr.Point(cp.Vector{X: 1}))
}

func TestOrthographicProjection_Origin(t *testing.T) {
	projection := OrthographicProjection{
		ViewportOrigin: gm.Vec{},
		ScalingMode:    ScalingModeFixedVertical{ViewportHeight: 100},
		Scale:          1,
	}

	tr := projection.WorldToScreen(gm.Vec{X: 200, Y: 100})

	// one world unit per pixel, starting at the bottom left
	requirePointInDelta(t, cp.Vector{X: 0, Y: 100}, tr.Point(cp.Vector{}))
	requirePointInDelta(t, cp.Vector{X: 50, Y: 75}, tr.Point(cp.Vector{X: 50, Y: 25}))
}

func TestCanvas_DrawLine(t *testing.T) {
	c := canvas{Transform: cp.NewTransformTranslate(cp.Vector{X: 10, Y: 20})}
	c.DrawLine(gm.Vec{X: 1, Y: 2}, gm.Vec{X: 3, Y: 4})
	c.DrawLine(gm.Vec{X: 3, Y: 4}, gm.Vec{X: 1, Y: 2})

	require.Equal(t, 2, c.segments)
}
