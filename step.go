package shapematch

import "github.com/oliverbestmann/shapematch/gm"

// Step advances the simulation by dt seconds. The time is the simulated time
// in seconds used to evaluate the boundary drive.
//
// A step drives the pinned vertices, predicts the tentative positions using
// explicit euler integration, snaps every quad onto the rigid transform of its
// rest shape that best matches the tentative positions, and finally derives
// the new velocities from the distance moved.
func (s *State) Step(dt float32, time float64) {
	s.driveBoundary(time)
	s.predict(dt)

	switch s.Params.Merge {
	case MergeAverage:
		s.matchAveraged()
	default:
		s.matchSequential()
	}

	s.reconcile(dt)
}

func (s *State) driveBoundary(time float64) {
	drive := s.Params.Drive
	if drive == nil {
		return
	}

	for idx := range s.Position {
		if !s.IsPinned(idx) {
			continue
		}

		s.Position[idx] = drive.Position(s.Rest[idx], time)
		s.Velocity[idx] = gm.Vec{}
	}
}

func (s *State) predict(dt float32) {
	for idx, pos := range s.Position {
		s.tentative[idx] = pos.Add(s.Velocity[idx].Mul(dt))
	}
}

// matchSequential writes the matched corners of each quad straight into the
// tentative positions. A vertex shared by multiple quads ends up where the
// quad with the highest index put it.
func (s *State) matchSequential() {
	for _, quad := range s.Quads {
		tr := MatchQuad(
			corners(s.tentative, quad),
			corners(s.Rest, quad),
			corners(s.Mass, quad),
			s.Params.FixReflection,
		)

		for _, vertex := range quad {
			s.tentative[vertex] = tr.Transform(s.Rest[vertex])
		}
	}
}

// matchAveraged matches every quad against the predicted positions and moves
// each vertex to the mean of the positions proposed by its quads.
func (s *State) matchAveraged() {
	if len(s.accumulated) != len(s.tentative) {
		s.accumulated = make([]gm.Vec, len(s.tentative))
		s.contributions = make([]int, len(s.tentative))
	}

	clear(s.accumulated)
	clear(s.contributions)

	for _, quad := range s.Quads {
		tr := MatchQuad(
			corners(s.tentative, quad),
			corners(s.Rest, quad),
			corners(s.Mass, quad),
			s.Params.FixReflection,
		)

		for _, vertex := range quad {
			s.accumulated[vertex] = s.accumulated[vertex].Add(tr.Transform(s.Rest[vertex]))
			s.contributions[vertex] += 1
		}
	}

	for idx, count := range s.contributions {
		if count == 0 {
			continue
		}

		s.tentative[idx] = s.accumulated[idx].Div(float32(count))
	}
}

func (s *State) reconcile(dt float32) {
	for idx, pos := range s.Position {
		s.Velocity[idx] = s.tentative[idx].Sub(pos).Div(dt)
		s.Position[idx] = s.tentative[idx]
	}
}
