package viewer

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats collects Timings by name, keeping the order in which
// the names were first measured.
type TimingStats struct {
	ByName map[string]Timings
	Order  []string
}

func NewTimingStats() *TimingStats {
	return &TimingStats{
		ByName: map[string]Timings{},
	}
}

func (t *TimingStats) Measure(name string) TimingStopwatch {
	return t.measureAt(name, time.Now(), time.Since)
}

func (t *TimingStats) measureAt(name string, startTime time.Time, since func(time.Time) time.Duration) TimingStopwatch {
	if _, ok := t.ByName[name]; !ok {
		t.Order = append(t.Order, name)
		t.ByName[name] = Timings{}
	}

	return TimingStopwatch{
		Stop: func() {
			t.ByName[name] = t.ByName[name].Add(since(startTime))
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
