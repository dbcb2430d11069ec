package gm

// Mat describes a 2d matrix of float32 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1, Y: 0},
		YAxis: Vec{X: 0, Y: 1},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{scale.X, 0},
		YAxis: Vec{0, scale.Y},
	}
}

// RotationMat returns a rotation matrix that rotates
// a Vec counter-clockwise by the given angle
func RotationMat(angle Rad) Mat {
	sin, cos := angle.Sin(), angle.Cos()

	return Mat{
		XAxis: Vec{cos, -sin},
		YAxis: Vec{sin, cos},
	}
}

// OuterMat returns the outer product a * b^T of the two vectors.
func OuterMat(a, b Vec) Mat {
	return Mat{
		XAxis: Vec{a.X * b.X, a.X * b.Y},
		YAxis: Vec{a.Y * b.X, a.Y * b.Y},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.X*vec.X + m.XAxis.Y*vec.Y,
		Y: m.YAxis.X*vec.X + m.YAxis.Y*vec.Y,
	}
}

func (m Mat) Add(n Mat) Mat {
	return Mat{
		XAxis: m.XAxis.Add(n.XAxis),
		YAxis: m.YAxis.Add(n.YAxis),
	}
}

// Scale multiplies every element of the matrix by the given scalar.
func (m Mat) Scale(f float32) Mat {
	return Mat{
		XAxis: m.XAxis.Mul(f),
		YAxis: m.YAxis.Mul(f),
	}
}

func (m Mat) Mul(n Mat) Mat {
	return Mat{
		XAxis: Vec{
			X: m.XAxis.X*n.XAxis.X + m.XAxis.Y*n.YAxis.X,
			Y: m.XAxis.X*n.XAxis.Y + m.XAxis.Y*n.YAxis.Y,
		},
		YAxis: Vec{
			X: m.YAxis.X*n.XAxis.X + m.YAxis.Y*n.YAxis.X,
			Y: m.YAxis.X*n.XAxis.Y + m.YAxis.Y*n.YAxis.Y,
		},
	}
}

func (m Mat) Transpose() Mat {
	return Mat{
		XAxis: Vec{m.XAxis.X, m.YAxis.X},
		YAxis: Vec{m.XAxis.Y, m.YAxis.Y},
	}
}

func (m Mat) Determinant() float32 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}
