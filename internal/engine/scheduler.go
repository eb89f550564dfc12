package engine

import "time"

// Scheduler tracks spawn boundaries and the session deadline.
// Boundaries fall at k*Frequency for k >= 1, strictly before Duration;
// at a tie the duration timer wins.
type Scheduler struct {
	Frequency time.Duration
	Duration  time.Duration

	fired int
}

// Reset rewinds the scheduler for a new session.
func (s *Scheduler) Reset() {
	s.fired = 0
}

// Due returns the spawn boundaries in (previous call, elapsed], in order.
func (s *Scheduler) Due(elapsed time.Duration) []time.Duration {
	if s.Frequency <= 0 {
		return nil
	}
	var due []time.Duration
	for {
		next := s.Frequency * time.Duration(s.fired+1)
		if next >= s.Duration || next > elapsed {
			return due
		}
		s.fired++
		due = append(due, next)
	}
}

// Expired reports whether the session deadline has passed.
func (s *Scheduler) Expired(elapsed time.Duration) bool {
	return elapsed >= s.Duration
}

// Fired returns how many boundaries have been handed out.
func (s *Scheduler) Fired() int {
	return s.fired
}

// Total returns how many boundaries a full session has.
func (s *Scheduler) Total() int {
	if s.Frequency <= 0 || s.Duration <= 0 {
		return 0
	}
	return int((s.Duration - 1) / s.Frequency)
}
