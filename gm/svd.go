package gm

import "github.com/chewxy/math32"

// SVD computes the singular value decomposition m = U * diag(Sigma) * V^T.
//
// U and V are orthogonal, the singular values in Sigma are non-negative and
// sorted in descending order (Sigma.X >= Sigma.Y). The decomposition uses the
// closed form for 2x2 matrices: m is split into a similarity and an
// anti-similarity part whose magnitudes give the singular values and whose
// angles give the rotations of U and V.
//
// If the determinant of m is negative, U carries the reflection, so U*V^T
// is an improper rotation. The zero matrix decomposes into U = V = identity.
func (m Mat) SVD() (u Mat, sigma Vec, v Mat) {
	e := (m.XAxis.X + m.YAxis.Y) / 2
	f := (m.XAxis.X - m.YAxis.Y) / 2
	g := (m.YAxis.X + m.XAxis.Y) / 2
	h := (m.YAxis.X - m.XAxis.Y) / 2

	q := math32.Sqrt(e*e + h*h)
	r := math32.Sqrt(f*f + g*g)

	sx := q + r
	sy := q - r

	// the angles are undefined for a vanishing part, keep them at zero
	var a1, a2 float32
	if r > 0 {
		a1 = math32.Atan2(g, f)
	}

	if q > 0 {
		a2 = math32.Atan2(h, e)
	}

	theta := Rad((a2 - a1) / 2)
	phi := Rad((a2 + a1) / 2)

	// m = Rot(phi) * diag(sx, sy) * Rot(theta)
	u = RotationMat(phi)
	v = RotationMat(theta).Transpose()

	if sy < 0 {
		// move the sign into the second column of u
		sy = -sy
		u.XAxis.Y = -u.XAxis.Y
		u.YAxis.Y = -u.YAxis.Y
	}

	return u, Vec{X: sx, Y: sy}, v
}

// Rotation returns the orthogonal factor U*V^T of the polar decomposition of m.
// This is the orthogonal matrix closest to m in the frobenius norm.
// It is a reflection if the determinant of m is negative.
func (m Mat) Rotation() Mat {
	u, _, v := m.SVD()
	return u.Mul(v.Transpose())
}

// ProperRotation works like Rotation, but always returns a proper rotation.
// If U*V^T would be a reflection, the direction of the smallest singular
// vector is flipped.
func (m Mat) ProperRotation() Mat {
	u, _, v := m.SVD()

	if u.Determinant()*v.Determinant() < 0 {
		u.XAxis.Y = -u.XAxis.Y
		u.YAxis.Y = -u.YAxis.Y
	}

	return u.Mul(v.Transpose())
}
