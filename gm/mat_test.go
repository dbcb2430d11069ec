package gm

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func requireMatInDelta(t *testing.T, expected, actual Mat, delta float64) {
	t.Helper()
	require.InDelta(t, expected.XAxis.X, actual.XAxis.X, delta, "m00 of %v", actual)
	require.InDelta(t, expected.XAxis.Y, actual.XAxis.Y, delta, "m01 of %v", actual)
	require.InDelta(t, expected.YAxis.X, actual.YAxis.X, delta, "m10 of %v", actual)
	require.InDelta(t, expected.YAxis.Y, actual.YAxis.Y, delta, "m11 of %v", actual)
}

func TestMat_Mul(t *testing.T) {
	m := RotationMat(Rad(math32.Pi)).Mul(RotationMat(Rad(math32.Pi / 2)))
	requireMatInDelta(t, RotationMat(Rad(math32.Pi * 1.5)), m, 1e-6)
}

func TestMat_Transpose(t *testing.T) {
	m := Mat{XAxis: Vec{X: 1, Y: 2}, YAxis: Vec{X: 3, Y: 4}}
	require.Equal(t, Mat{XAxis: Vec{X: 1, Y: 3}, YAxis: Vec{X: 2, Y: 4}}, m.Transpose())
	require.Equal(t, m, m.Transpose().Transpose())

	// the transpose of a rotation is its inverse
	r := RotationMat(0.7)
	requireMatInDelta(t, IdentityMat(), r.Mul(r.Transpose()), 1e-6)
}

func TestMat_Determinant(t *testing.T) {
	require.InDelta(t, 1.0, RotationMat(1.3).Determinant(), 1e-6)
	require.Equal(t, float32(-2), Mat{XAxis: Vec{X: 1, Y: 2}, YAxis: Vec{X: 3, Y: 4}}.Determinant())
	require.Equal(t, float32(0), OuterMat(Vec{X: 1, Y: 2}, Vec{X: 5, Y: -1}).Determinant())
}

func TestOuterMat(t *testing.T) {
	m := OuterMat(Vec{X: 1, Y: 2}, Vec{X: 3, Y: 4})
	require.Equal(t, Mat{XAxis: Vec{X: 3, Y: 4}, YAxis: Vec{X: 6, Y: 8}}, m)

	// (a b^T) c = a (b . c)
	c := Vec{X: -1, Y: 0.5}
	require.Equal(t, Vec{X: 1, Y: 2}.Mul(Vec{X: 3, Y: 4}.Dot(c)), m.Transform(c))
}

func TestMat_Transform(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := RotationMat(Rad(math32.Pi))

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := RotationMat(Rad(math32.Pi / 2))

		r := m.Transform(Vec{X: 1, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 1, Y: 0})
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(Vec{X: 0, Y: 1})
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 0, r.Y, 1e-6)
	})
}
