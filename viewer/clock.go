package viewer

import (
	"time"
)

// Clock provides the simulated time in seconds. It is advanced once per tick.
type Clock interface {
	Advance(now time.Time)
	Seconds() float64
	Restart()

	IsPaused() bool
	SetPaused(paused bool)
}

// VirtualTime tracks the time progressed by the simulation.
//
// The progression of time can be scaled by setting the Scale field.
// While Paused, time does not progress at all.
type VirtualTime struct {
	Elapsed time.Duration
	Delta   time.Duration

	Scale  float64
	Paused bool

	lastTime time.Time
}

func NewVirtualTime(scale float64) *VirtualTime {
	return &VirtualTime{Scale: scale}
}

// Advance progresses the time to the given wall clock time.
// The very first call only starts the clock.
func (v *VirtualTime) Advance(now time.Time) {
	if v.lastTime.IsZero() {
		v.lastTime = now
		return
	}

	delta := time.Duration(float64(now.Sub(v.lastTime)) * v.Scale)
	v.lastTime = now

	if v.Paused {
		delta = 0
	}

	v.Delta = delta
	v.Elapsed += v.Delta
}

func (v *VirtualTime) Seconds() float64 {
	return v.Elapsed.Seconds()
}

func (v *VirtualTime) IsPaused() bool {
	return v.Paused
}

func (v *VirtualTime) SetPaused(paused bool) {
	v.Paused = paused
}

// Restart sets the elapsed time back to zero.
func (v *VirtualTime) Restart() {
	v.Elapsed = 0
	v.Delta = 0
}
