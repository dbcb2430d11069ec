package viewer

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapematch/gm"
)

type OrthographicProjection struct {
	// Origin of the camera. Set this to (0.5, 0.5) to center the world origin.
	ViewportOrigin gm.Vec

	ScalingMode ScalingMode

	// Extra scale to multiply on top of the ScalingMode. Can be used for zooming.
	Scale float32
}

type ScalingMode interface {
	ViewportSize(width, height float32) gm.Vec
}

type ScalingModeFixedVertical struct {
	ViewportHeight float32
}

func (s ScalingModeFixedVertical) ViewportSize(width, height float32) gm.Vec {
	return gm.VecOf(width*s.ViewportHeight/height, s.ViewportHeight)
}

// VisibleArea returns the bounding box of the world that is visible on a screen of the given size.
func (p OrthographicProjection) VisibleArea(screenSize gm.Vec) cp.BB {
	viewport := p.ScalingMode.ViewportSize(screenSize.X, screenSize.Y).Mul(p.Scale)

	lo := viewport.MulEach(p.ViewportOrigin).Mul(-1)
	hi := lo.Add(viewport)

	return cp.BB{
		L: float64(lo.X),
		B: float64(lo.Y),
		R: float64(hi.X),
		T: float64(hi.Y),
	}
}

// WorldToScreen calculates the transform from world coordinates with y pointing
// up into screen pixels with y pointing down.
func (p OrthographicProjection) WorldToScreen(screenSize gm.Vec) cp.Transform {
	// world to normalized device coordinates in [-1, 1]
	ndc := cp.NewTransformIdentity().Ortho(p.VisibleArea(screenSize))

	hw := float64(screenSize.X) / 2
	hh := float64(screenSize.Y) / 2

	toScreen := cp.NewTransformTranspose(
		hw, 0, hw,
		0, -hh, hh,
	)

	return toScreen.Mult(ndc)
}
