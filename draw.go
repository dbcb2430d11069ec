package shapematch

import "github.com/oliverbestmann/shapematch/gm"

// Canvas receives the line segments of a mesh.
type Canvas interface {
	DrawLine(p0, p1 gm.Vec)
}

// DrawEdges draws the four edges of every quad at their current position.
func (s *State) DrawEdges(c Canvas) {
	drawEdges(c, s.Quads, s.Position)
}

// DrawRestEdges draws the four edges of every quad in the rest shape.
func (s *State) DrawRestEdges(c Canvas) {
	drawEdges(c, s.Quads, s.Rest)
}

func drawEdges(c Canvas, quads []Quad, positions []gm.Vec) {
	for _, quad := range quads {
		for corner := range 4 {
			c.DrawLine(positions[quad[corner]], positions[quad[(corner+1)%4]])
		}
	}
}
