package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/shapematch/gm"
)

// canvas collects line segments in screen space, so they can be stroked
// with a single draw call.
type canvas struct {
	Transform cp.Transform

	path     vector.Path
	segments int
}

func (c *canvas) DrawLine(p0, p1 gm.Vec) {
	a := c.Transform.Point(cpVecOf(p0))
	b := c.Transform.Point(cpVecOf(p1))

	c.path.MoveTo(float32(a.X), float32(a.Y))
	c.path.LineTo(float32(b.X), float32(b.Y))

	c.segments += 1
}

func (c *canvas) Stroke(target *ebiten.Image, clr color.Color, width float32) {
	if c.segments == 0 {
		return
	}

	dpo := &vector.DrawPathOptions{AntiAlias: true}
	dpo.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(target, &c.path, &vector.StrokeOptions{Width: width}, dpo)
}

func cpVecOf(v gm.Vec) cp.Vector {
	return cp.Vector{X: float64(v.X), Y: float64(v.Y)}
}
