package core

import "time"

type Lap struct {
	Name     string
	Duration time.Duration
}

// Stopwatch records the time spent in consecutive
// stages of a run.
type Stopwatch struct {
	Laps      []Lap
	StartTime time.Time
	LapStart  time.Time
	now       func() time.Time
}

// Lap closes the current stage under name and
// returns its duration.
func (s *Stopwatch) Lap(name string) time.Duration {
	n := s.now()
	d := n.Sub(s.LapStart)
	s.Laps = append(s.Laps, Lap{name, d})
	s.LapStart = n
	return d
}

func (s *Stopwatch) Total() time.Duration {
	return s.now().Sub(s.StartTime)
}

func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	n := now()
	return &Stopwatch{
		StartTime: n,
		LapStart:  n,
		now:       now,
	}
}
