package shapematch

import "github.com/oliverbestmann/shapematch/gm"

// MatchQuad finds the rigid transform that moves the rest corners q as close as
// possible to the tentative corners p, weighting each corner by its mass.
//
// The rotation comes from the polar decomposition of the weighted covariance
// of both point sets, the translation maps the weighted centroid of q onto the
// weighted centroid of p. Unless fixReflection is set, the matrix is U*V^T even
// if that is a reflection.
//
// The sum of the masses must be positive.
func MatchQuad(p, q [4]gm.Vec, m [4]float32, fixReflection bool) gm.Affine {
	mSum := m[0] + m[1] + m[2] + m[3]

	var centerP, centerQ gm.Vec
	for idx := range 4 {
		centerP = centerP.Add(p[idx].Mul(m[idx]).Div(mSum))
		centerQ = centerQ.Add(q[idx].Mul(m[idx]).Div(mSum))
	}

	var covariance gm.Mat
	for idx := range 4 {
		outer := gm.OuterMat(p[idx].Sub(centerP), q[idx].Sub(centerQ))
		covariance = covariance.Add(outer.Scale(m[idx]))
	}

	var rotation gm.Mat
	if fixReflection {
		rotation = covariance.ProperRotation()
	} else {
		rotation = covariance.Rotation()
	}

	return gm.Affine{
		Matrix:      rotation,
		Translation: centerP.Sub(rotation.Transform(centerQ)),
	}
}
