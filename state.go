package shapematch

import (
	"fmt"

	"github.com/oliverbestmann/shapematch/gm"
	"github.com/oliverbestmann/shapematch/internal/assert"
)

// MergePolicy decides how the corrections of quads sharing a vertex are combined.
type MergePolicy uint8

const (
	// MergeLastWriter processes the quads in index order, each one overwriting the
	// tentative positions of its corners. Later quads see the corrections of
	// earlier ones.
	MergeLastWriter MergePolicy = iota

	// MergeAverage lets every quad match against the predicted positions and
	// moves each vertex to the average of all proposed positions.
	MergeAverage
)

func (p MergePolicy) String() string {
	switch p {
	case MergeLastWriter:
		return "last-writer"
	case MergeAverage:
		return "average"
	default:
		return fmt.Sprintf("MergePolicy(%d)", uint8(p))
	}
}

// ParseMergePolicy parses the value returned by MergePolicy.String.
func ParseMergePolicy(value string) (MergePolicy, error) {
	switch value {
	case "last-writer", "":
		return MergeLastWriter, nil
	case "average":
		return MergeAverage, nil
	default:
		return 0, fmt.Errorf("unknown merge policy %q", value)
	}
}

type Params struct {
	// Drive moves the pinned vertices. If nil, pinned vertices are not driven
	// and behave like any other vertex, just heavier.
	Drive BoundaryDriver

	// Vertices with a mass above PinThreshold are pinned.
	// NewState replaces zero with DefaultPinThreshold.
	PinThreshold float32

	Merge MergePolicy

	// FixReflection forces every quad transform to be a proper rotation.
	FixReflection bool
}

func DefaultParams() Params {
	return Params{
		Drive:        DefaultDrive,
		PinThreshold: DefaultPinThreshold,
		Merge:        MergeLastWriter,
	}
}

// State holds the simulation state of a mesh. It is owned by a single
// goroutine, usually the render loop.
type State struct {
	Params Params
	Quads  []Quad

	// Rest and Mass never change after NewState.
	Rest []gm.Vec
	Mass []float32

	Position []gm.Vec
	Velocity []gm.Vec

	tentative []gm.Vec

	// only used by MergeAverage
	accumulated   []gm.Vec
	contributions []int
}

// NewState snapshots the current mesh positions as rest shape. All vertices
// start at rest with zero velocity.
func NewState(mesh Mesh, mass []float32, params Params) *State {
	assert.NoError(mesh.Validate())
	assert.SameLength(mesh.Positions, mass, "vertex positions and masses")

	for idx, m := range mass {
		assert.That(m > 0, "vertex %d has non positive mass %f", idx, m)
	}

	if params.PinThreshold == 0 {
		params.PinThreshold = DefaultPinThreshold
	}

	vertexCount := len(mesh.Positions)

	s := &State{
		Params:    params,
		Quads:     mesh.Quads,
		Rest:      append([]gm.Vec(nil), mesh.Positions...),
		Mass:      append([]float32(nil), mass...),
		Position:  append([]gm.Vec(nil), mesh.Positions...),
		Velocity:  make([]gm.Vec, vertexCount),
		tentative: make([]gm.Vec, vertexCount),
	}

	return s
}

// IsPinned reports whether the vertex is driven by the boundary condition.
func (s *State) IsPinned(vertex int) bool {
	return s.Mass[vertex] > s.Params.PinThreshold
}

// Reset moves every vertex back to its rest position and stops all motion.
func (s *State) Reset() {
	copy(s.Position, s.Rest)
	clear(s.Velocity)
}

// corners collects the values of the four corners of a quad.
func corners[T any](values []T, quad Quad) [4]T {
	return [4]T{
		values[quad[0]],
		values[quad[1]],
		values[quad[2]],
		values[quad[3]],
	}
}
