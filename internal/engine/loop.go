package engine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/tunehunt/internal/core"
)

// InputKind selects what an Input does.
type InputKind int

const (
	InputClick   InputKind = iota // Click target ID
	InputClickAt                  // Hit-test X, Y and click
	InputStart                    // Start a new round
	InputStop                     // End the round early
	InputMode                     // Select Mode for the next round
	InputResize                   // Resize the field to W x H
)

// Input is a command applied to the session between ticks.
type Input struct {
	Kind InputKind
	ID   uint64
	X, Y float64
	Mode Mode
	W, H float64
}

// Apply runs the input against s at now. It reports whether the session changed.
func (in Input) Apply(s *Session, now time.Time) bool {
	switch in.Kind {
	case InputClick:
		return s.Click(in.ID)
	case InputClickAt:
		_, ok := s.ClickAt(in.X, in.Y)
		return ok
	case InputStart:
		return s.Start(now) == nil
	case InputStop:
		running := s.State() == Running
		s.Stop()
		return running
	case InputMode:
		return s.SetMode(in.Mode) == nil
	case InputResize:
		if !validSize(in.W) || !validSize(in.H) {
			return false
		}
		s.SetViewport(core.NewRect(0, 0, in.W, in.H))
		return true
	}
	return false
}

// validSize reports whether v is a usable field dimension.
func validSize(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Loop drives a session in real time from a single goroutine: inputs are
// applied as they arrive and the session ticks at TickRate.
type Loop struct {
	Session  *Session
	Clock    Clock
	TickRate int
	Inputs   <-chan Input

	// OnTick runs after every tick and after every applied input.
	OnTick func(*Session)

	// ExitOnEnd returns from Run when the round ends.
	ExitOnEnd bool
}

// Run blocks until ctx is cancelled or, with ExitOnEnd, the round ends.
// A cancelled context stops a running round and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	if l.TickRate <= 0 {
		return errors.New("engine: tick rate must be positive")
	}
	clock := l.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Session.Stop()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case in, ok := <-l.Inputs:
			if !ok {
				l.Inputs = nil
				continue
			}
			if in.Apply(l.Session, clock.Now()) {
				l.notify()
			}

		case <-ticker.C:
			wasRunning := l.Session.State() == Running
			l.Session.Tick(clock.Now())
			if wasRunning {
				l.notify()
			}
			if l.ExitOnEnd && l.Session.State() == Ended {
				return nil
			}
		}
	}
}

func (l *Loop) notify() {
	if l.OnTick != nil {
		l.OnTick(l.Session)
	}
}

// Simulate runs a whole round on a manual clock as fast as possible.
// before is called ahead of every tick and may click targets.
func Simulate(s *Session, clock *ManualClock, tickRate int, before func(*Session, time.Time)) (Score, error) {
	if tickRate <= 0 {
		return Score{}, errors.New("engine: tick rate must be positive")
	}
	if err := s.Start(clock.Now()); err != nil {
		return Score{}, err
	}

	interval := time.Second / time.Duration(tickRate)
	for s.State() == Running {
		if before != nil {
			before(s, clock.Now())
		}
		s.Tick(clock.Advance(interval))
	}
	return s.Score(), nil
}
