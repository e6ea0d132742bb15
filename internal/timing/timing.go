// Package timing measures the elapsed wall time of a code region.
package timing

import "time"

// Timer runs fn and reports how long it took.
type Timer interface {
	Time(fn func()) time.Duration
}

// Wall times regions with the monotonic clock carried by time.Now.
type Wall struct{}

// Time runs fn and returns its elapsed wall time.
func (Wall) Time(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Scripted runs fn but reports preset durations in order, cycling through
// them. With no durations every region reports zero.
type Scripted struct {
	durations []time.Duration
	next      int
}

// NewScripted returns a Scripted timer over durations.
func NewScripted(durations ...time.Duration) *Scripted {
	return &Scripted{durations: durations}
}

func (s *Scripted) Time(fn func()) time.Duration {
	fn()
	if len(s.durations) == 0 {
		return 0
	}
	d := s.durations[s.next]
	s.next = (s.next + 1) % len(s.durations)
	return d
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
