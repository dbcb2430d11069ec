package gm

import "github.com/chewxy/math32"

type Rad float32

// Cos returns the cosine of the angle.
func (r Rad) Cos() float32 {
	return math32.Cos(float32(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float32 {
	return math32.Sin(float32(r))
}

func DegToRad(deg float32) Rad {
	return Rad(math32.Pi / 180 * deg)
}
