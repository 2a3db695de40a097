package core

import "time"

// Stopwatch is a monotonic timer. Frame deltas are derived from two
// successive reads of SecsElapsed.
type Stopwatch struct {
	start time.Time
	last  float64
	now   func() time.Time
}

// NewStopwatch starts a stopwatch using the wall clock's monotonic reading.
func NewStopwatch() *Stopwatch {
	return newStopwatch(time.Now)
}

func newStopwatch(now func() time.Time) *Stopwatch {
	return &Stopwatch{start: now(), now: now}
}

// SecsElapsed returns seconds since the stopwatch started.
func (s *Stopwatch) SecsElapsed() float64 {
	return s.now().Sub(s.start).Seconds()
}

// Delta returns the seconds elapsed since the previous call, capped at max
// so a stalled frame cannot launch entities across the field.
func (s *Stopwatch) Delta(max float32) float32 {
	now := s.SecsElapsed()
	dt := float32(now - s.last)
	s.last = now
	if max > 0 && dt > max {
		return max
	}
	return dt
}
