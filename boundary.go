package shapematch

import (
	"math"

	"github.com/oliverbestmann/shapematch/gm"
)

const (
	// DefaultPinMass is the mass given to vertices on the bottom row. It is large
	// enough that the shape matching barely moves them.
	DefaultPinMass float32 = 10000

	// DefaultPinThreshold separates pinned from free vertices by their mass.
	DefaultPinThreshold float32 = 1.1

	// PinEpsilon is the maximum un-scaled rest height of a pinned vertex.
	PinEpsilon float32 = 0.001
)

// InitBoundary assigns the vertex masses of a freshly generated grid and moves the
// grid into its simulation frame.
//
// Vertices on the bottom row get pinMass, every other vertex a mass of one. Afterward
// the grid is centered at the origin and scaled by scale. The returned slice holds
// one mass per vertex. Call this exactly once, before creating the State.
func InitBoundary(mesh *Mesh, scale, pinMass float32) []float32 {
	mass := make([]float32, len(mesh.Positions))

	for idx, pos := range mesh.Positions {
		if pos.Y <= PinEpsilon {
			mass[idx] = pinMass
		} else {
			mass[idx] = 1
		}
	}

	center := gm.Vec{X: float32(mesh.Nx) * 0.5, Y: float32(mesh.Ny) * 0.5}
	for idx, pos := range mesh.Positions {
		mesh.Positions[idx] = pos.Sub(center).Mul(scale)
	}

	return mass
}

// BoundaryDriver prescribes the position of a pinned vertex at the given time.
type BoundaryDriver interface {
	Position(rest gm.Vec, time float64) gm.Vec
}

// SinusoidalDrive shakes pinned vertices horizontally around their rest position.
type SinusoidalDrive struct {
	Amplitude        float64
	AngularFrequency float64
}

// DefaultDrive moves the boundary by 0.2 units at five radians per second.
var DefaultDrive = SinusoidalDrive{Amplitude: 0.2, AngularFrequency: 5}

func (d SinusoidalDrive) Position(rest gm.Vec, time float64) gm.Vec {
	offset := d.Amplitude * math.Sin(time*d.AngularFrequency)

	return gm.Vec{
		X: float32(float64(rest.X) + offset),
		Y: rest.Y,
	}
}

// BoundaryDriverFunc adapts a plain function to a BoundaryDriver.
type BoundaryDriverFunc func(rest gm.Vec, time float64) gm.Vec

func (f BoundaryDriverFunc) Position(rest gm.Vec, time float64) gm.Vec {
	return f(rest, time)
}
