package gm

import "github.com/chewxy/math32"

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation and scale, as well as a Translation vector.
//
// A rigid transform is an Affine whose Matrix is orthogonal.
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

// RigidAffine returns a transformation that first rotates by the given angle
// and then translates by the given offset.
func RigidAffine(angle Rad, translation Vec) Affine {
	return Affine{
		Matrix:      RotationMat(angle),
		Translation: translation,
	}
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// Angle returns the rotation angle encoded in the first column of the matrix.
// The value is only meaningful for rigid transforms.
func (a Affine) Angle() Rad {
	return Rad(math32.Atan2(a.Matrix.YAxis.X, a.Matrix.XAxis.X))
}

// IsReflection reports whether the transform mirrors the plane.
func (a Affine) IsReflection() bool {
	return a.Matrix.Determinant() < 0
}
