package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestInputApply(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)

	if !(Input{Kind: InputMode, Mode: Gliding}).Apply(s, t0) {
		t.Fatal("InputMode should apply while idle")
	}
	if !(Input{Kind: InputStart}).Apply(s, t0) {
		t.Fatal("InputStart should apply while idle")
	}
	if (Input{Kind: InputStart}).Apply(s, t0) {
		t.Error("InputStart should be rejected while running")
	}
	if (Input{Kind: InputMode, Mode: Classic}).Apply(s, t0) {
		t.Error("InputMode should be rejected while running")
	}

	s.Tick(t0.Add(ms(500)))
	if !(Input{Kind: InputClick, ID: 1}).Apply(s, t0) {
		t.Error("InputClick on an active target should apply")
	}
	if (Input{Kind: InputClickAt, X: -500, Y: -500}).Apply(s, t0) {
		t.Error("InputClickAt on empty space should not apply")
	}
	if !(Input{Kind: InputStop}).Apply(s, t0) {
		t.Error("InputStop should apply while running")
	}
	if (Input{Kind: InputStop}).Apply(s, t0) {
		t.Error("InputStop should not apply twice")
	}
	if s.Settings().Mode != Gliding {
		t.Errorf("Mode = %v, expected Gliding", s.Settings().Mode)
	}

	if !(Input{Kind: InputResize, W: 800, H: 600}).Apply(s, t0) {
		t.Error("InputResize should apply")
	}
	if vp := s.Settings().Viewport; vp.W != 800 || vp.H != 600 {
		t.Errorf("Viewport = %+v, expected 800x600", vp)
	}
	for _, size := range [][2]float64{
		{0, 0},
		{-800, 600},
		{math.NaN(), 600},
		{800, math.NaN()},
		{math.Inf(1), 600},
		{800, math.Inf(-1)},
	} {
		if (Input{Kind: InputResize, W: size[0], H: size[1]}).Apply(s, t0) {
			t.Errorf("InputResize %vx%v should be rejected", size[0], size[1])
		}
	}
	if vp := s.Settings().Viewport; vp.W != 800 || vp.H != 600 {
		t.Errorf("Viewport = %+v after rejected resizes, expected 800x600", vp)
	}
}

func TestLoopCancelStopsRound(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Classic, realPicker(), rec)
	inputs := make(chan Input)
	l := &Loop{Session: s, Clock: NewManualClock(t0), TickRate: 100, Inputs: inputs}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	inputs <- Input{Kind: InputStart}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	if s.State() != Ended {
		t.Errorf("State() = %v, expected Ended", s.State())
	}
	if n := rec.count(func(e Event) bool { _, ok := e.(SessionEnded); return ok }); n != 1 {
		t.Errorf("expected one SessionEnded, got %d", n)
	}
}

func TestLoopExitOnEnd(t *testing.T) {
	settings := testSettings(Classic)
	settings.Duration = 50 * time.Millisecond
	settings.SpawnFrequency = 10 * time.Millisecond
	s := NewSession(settings, realPicker(), nil, nil)

	inputs := make(chan Input, 1)
	inputs <- Input{Kind: InputStart}
	ticks := 0
	l := &Loop{
		Session:   s,
		TickRate:  200,
		Inputs:    inputs,
		ExitOnEnd: true,
		OnTick:    func(*Session) { ticks++ },
	}

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return at end of round")
	}

	if s.State() != Ended {
		t.Errorf("State() = %v, expected Ended", s.State())
	}
	if s.SpawnAttempts() != 4 {
		t.Errorf("SpawnAttempts() = %d, expected 4", s.SpawnAttempts())
	}
	if ticks == 0 {
		t.Error("OnTick was never called")
	}
}

func TestLoopDeadline(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	l := &Loop{Session: s, TickRate: 60}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected DeadlineExceeded", err)
	}
}

func TestLoopRejectsBadTickRate(t *testing.T) {
	l := &Loop{Session: newTestSession(Classic, realPicker(), nil)}
	if err := l.Run(context.Background()); err == nil {
		t.Error("expected error for zero tick rate")
	}
	if _, err := Simulate(newTestSession(Classic, realPicker(), nil), NewManualClock(t0), 0, nil); err == nil {
		t.Error("expected error for zero tick rate")
	}
}
