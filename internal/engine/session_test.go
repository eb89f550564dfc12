package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
)

func TestRealClicksScore(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Classic, realPicker(), rec)
	if err := s.Start(t0); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	s.Tick(t0.Add(ms(1000)))
	if len(s.Entities()) != 2 {
		t.Fatalf("expected 2 targets after 1s, got %d", len(s.Entities()))
	}
	if !s.Click(1) || !s.Click(2) {
		t.Fatal("clicks on active targets should succeed")
	}

	got := s.Score()
	want := Score{Points: 4, Hits: 2}
	if got != want {
		t.Errorf("Score() = %+v, expected %+v", got, want)
	}
	if got.Accuracy() != 100 {
		t.Errorf("Accuracy() = %v, expected 100", got.Accuracy())
	}
	if n := rec.count(func(e Event) bool {
		ef, ok := e.(EffectRequested)
		return ok && ef.Effect == EffectHit
	}); n != 2 {
		t.Errorf("expected 2 hit effects, got %d", n)
	}
}

func TestFakeClickThenExpiry(t *testing.T) {
	s := newTestSession(Classic, fakePicker(), nil)
	s.Start(t0)

	s.Tick(t0.Add(ms(500)))
	if !s.Click(1) {
		t.Fatal("Click(1) should succeed")
	}
	// Target 2 spawns at 1s and shrinks away on its fourth boundary at 3s.
	s.Tick(t0.Add(ms(3000)))

	got := s.Score()
	want := Score{Points: -1, Hits: 1, Missed: 1}
	if got != want {
		t.Errorf("Score() = %+v, expected %+v", got, want)
	}
	if got.Accuracy() != 50 {
		t.Errorf("Accuracy() = %v, expected 50", got.Accuracy())
	}
}

func TestClickBeatsExpiryInSameTick(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	s.Start(t0)

	s.Tick(t0.Add(ms(2999)))
	if !s.Click(2) {
		t.Fatal("Click(2) should succeed before its expiry tick")
	}
	s.Tick(t0.Add(ms(3000)))

	got := s.Score()
	// Target 1 expired at 2.5s; target 2 was clicked.
	want := Score{Points: 2, Hits: 1, Missed: 1}
	if got != want {
		t.Errorf("Score() = %+v, expected %+v", got, want)
	}
}

func TestClickIgnored(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	if s.Click(1) {
		t.Error("Click before Start should be ignored")
	}

	s.Start(t0)
	s.Tick(t0.Add(ms(500)))

	if s.Click(99) {
		t.Error("Click on unknown id should be ignored")
	}
	if !s.Click(1) {
		t.Fatal("first Click(1) should succeed")
	}
	if s.Click(1) {
		t.Error("second Click(1) should be ignored")
	}
	if s.Score().Hits != 1 {
		t.Errorf("Hits = %d, expected 1", s.Score().Hits)
	}
}

func TestControlWhileRunning(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	s.Start(t0)

	if err := s.Start(t0); !errors.Is(err, ErrSessionRunning) {
		t.Errorf("Start() while running = %v, expected ErrSessionRunning", err)
	}
	if err := s.SetMode(Bouncing); !errors.Is(err, ErrSessionRunning) {
		t.Errorf("SetMode() while running = %v, expected ErrSessionRunning", err)
	}
	if err := s.Configure(DefaultSettings()); !errors.Is(err, ErrSessionRunning) {
		t.Errorf("Configure() while running = %v, expected ErrSessionRunning", err)
	}

	s.Stop()
	if s.State() != Ended {
		t.Fatalf("State() = %v, expected Ended", s.State())
	}
	if err := s.SetMode(Bouncing); err != nil {
		t.Errorf("SetMode() after Stop: %v", err)
	}
	if s.Settings().Mode != Bouncing {
		t.Errorf("Mode = %v, expected Bouncing", s.Settings().Mode)
	}
}

func TestSimulateSpawnCount(t *testing.T) {
	tests := []struct {
		name      string
		frequency time.Duration
		expected  int
	}{
		{"500ms", ms(500), 39},
		{"333ms", ms(333), 60},
		{"7s", 7 * time.Second, 2},
		{"duration tie", 10 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			settings := testSettings(Classic)
			settings.SpawnFrequency = tt.frequency
			s := NewSession(settings, realPicker(), rec, nil)

			if _, err := Simulate(s, NewManualClock(t0), 60, nil); err != nil {
				t.Fatalf("Simulate() error: %v", err)
			}
			created := rec.count(func(e Event) bool { _, ok := e.(EntityCreated); return ok })
			if created != tt.expected {
				t.Errorf("created %d targets, expected %d", created, tt.expected)
			}
			if s.SpawnAttempts() != tt.expected {
				t.Errorf("SpawnAttempts() = %d, expected %d", s.SpawnAttempts(), tt.expected)
			}
			if s.SpawnBoundaries() != tt.expected {
				t.Errorf("SpawnBoundaries() = %d, expected %d", s.SpawnBoundaries(), tt.expected)
			}
			if s.State() != Ended {
				t.Errorf("State() = %v, expected Ended", s.State())
			}
		})
	}
}

func TestEmptyPickerSpawnsNothing(t *testing.T) {
	s := newTestSession(Classic, fixedPicker{}, nil)
	if _, err := Simulate(s, NewManualClock(t0), 30, nil); err != nil {
		t.Fatalf("Simulate() error: %v", err)
	}
	if s.Spawned() != 0 {
		t.Errorf("Spawned() = %d, expected 0", s.Spawned())
	}
	if s.SpawnAttempts() != 39 {
		t.Errorf("SpawnAttempts() = %d, expected 39", s.SpawnAttempts())
	}
}

func TestEndClearsWithoutScoring(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Classic, realPicker(), rec)
	s.Start(t0)
	s.Tick(t0.Add(ms(1500)))
	before := s.Score()

	s.Tick(t0.Add(20 * time.Second))

	if s.State() != Ended {
		t.Fatalf("State() = %v, expected Ended", s.State())
	}
	if len(s.Entities()) != 0 {
		t.Errorf("expected no targets after end, got %d", len(s.Entities()))
	}
	cleared := rec.count(func(e Event) bool {
		r, ok := e.(EntityRemoved)
		return ok && r.Reason == ResolvedCleared
	})
	if cleared == 0 {
		t.Error("expected cleared removals at end")
	}
	if s.Score().Hits != before.Hits || s.Score().Points != before.Points {
		t.Errorf("end should not score hits, before %+v after %+v", before, s.Score())
	}
	if n := rec.count(func(e Event) bool { _, ok := e.(SessionEnded); return ok }); n != 1 {
		t.Errorf("expected one SessionEnded, got %d", n)
	}
	if s.Click(uint64(s.Spawned())) {
		t.Error("clicks after end should be ignored")
	}
}

func TestScoreMatchesRemovals(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			rec := &recorder{}
			s := newTestSession(mode, realPicker(), rec)
			tick := 0
			score, err := Simulate(s, NewManualClock(t0), 60, func(s *Session, _ time.Time) {
				tick++
				if views := s.Entities(); tick%45 == 0 && len(views) > 0 {
					s.Click(views[0].ID)
				}
			})
			if err != nil {
				t.Fatalf("Simulate() error: %v", err)
			}

			hits := rec.count(func(e Event) bool {
				r, ok := e.(EntityRemoved)
				return ok && r.Reason == ResolvedHit
			})
			misses := rec.count(func(e Event) bool {
				r, ok := e.(EntityRemoved)
				return ok && r.Reason == ResolvedMiss
			})
			removed := rec.count(func(e Event) bool { _, ok := e.(EntityRemoved); return ok })

			if score.Hits != hits || score.Missed != misses {
				t.Errorf("score %+v does not match removals hits=%d misses=%d", score, hits, misses)
			}
			if removed != s.Spawned() {
				t.Errorf("removed %d targets, spawned %d", removed, s.Spawned())
			}
			if score.Points != score.Hits*realHitPoints {
				t.Errorf("Points = %d, expected %d", score.Points, score.Hits*realHitPoints)
			}
		})
	}
}

func TestEntityAtReturnsTopmost(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	// A field the size of a target pins every spawn to the same spot.
	s.SetViewport(core.NewRect(0, 0, 150, 150))
	s.Start(t0)
	s.Tick(t0.Add(ms(1000)))

	id, ok := s.EntityAt(75, 75)
	if !ok || id != 2 {
		t.Fatalf("EntityAt() = %d, %v; expected 2, true", id, ok)
	}

	if id, ok := s.ClickAt(75, 75); !ok || id != 2 {
		t.Fatalf("ClickAt() = %d, %v; expected 2, true", id, ok)
	}
	if id, ok := s.EntityAt(75, 75); !ok || id != 1 {
		t.Errorf("EntityAt() after click = %d, %v; expected 1, true", id, ok)
	}
	if _, ok := s.EntityAt(1, 1); ok {
		t.Error("corner of the bounding box lies outside the ellipse")
	}
}

func TestThemeSwapKeepsSpawnedContent(t *testing.T) {
	pool := content.NewPool(
		content.Lists{RealArtists: []string{"Standard"}},
		content.Lists{RealArtists: []string{"Festive"}},
	)
	s := NewSession(testSettings(Classic), pool, nil, nil)
	s.Start(t0)
	s.Tick(t0.Add(ms(500)))

	pool.SetThemeVariant(content.Themed)
	s.Tick(t0.Add(ms(1000)))

	views := s.Entities()
	if len(views) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(views))
	}
	if views[0].Name != "Standard" || views[1].Name != "Festive" {
		t.Errorf("names = %q, %q; expected Standard, Festive", views[0].Name, views[1].Name)
	}
}

func TestHighScoreAcrossRounds(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	s.Start(t0)
	s.Tick(t0.Add(ms(1000)))
	s.Click(1)
	s.Click(2)
	s.Stop()

	if err := s.Start(t0.Add(time.Minute)); err != nil {
		t.Fatalf("second Start() error: %v", err)
	}
	if s.Score() != (Score{}) {
		t.Errorf("Score() after restart = %+v, expected zero", s.Score())
	}
	if s.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected 4", s.HighScore())
	}

	s.Tick(t0.Add(time.Minute + ms(500)))
	views := s.Entities()
	if len(views) != 1 || views[0].ID != 3 {
		t.Errorf("ids should continue across rounds, got %+v", views)
	}
}

func TestGlidingFollower(t *testing.T) {
	rec := &recorder{}
	s := newTestSession(Gliding, realPicker(), rec)
	s.Start(t0)
	s.Tick(t0.Add(ms(1000)))

	views := s.Entities()
	if len(views) != 2 {
		t.Fatalf("expected 2 gliders, got %d", len(views))
	}
	f := s.Follower()
	if !f.Visible || f.Y != followerTop || f.X != views[1].X {
		t.Errorf("Follower() = %+v, expected aligned with newest glider at x=%v", f, views[1].X)
	}

	s.Stop()
	if s.Follower().Visible {
		t.Error("follower should hide when the round ends")
	}
}

func TestRemaining(t *testing.T) {
	s := newTestSession(Classic, realPicker(), nil)
	if s.Remaining() != 0 {
		t.Errorf("Remaining() when idle = %v, expected 0", s.Remaining())
	}
	s.Start(t0)
	s.Tick(t0.Add(5 * time.Second))
	if s.Remaining() != 15*time.Second {
		t.Errorf("Remaining() = %v, expected 15s", s.Remaining())
	}
	if s.Elapsed() != 5*time.Second {
		t.Errorf("Elapsed() = %v, expected 5s", s.Elapsed())
	}
}

func TestViewportShrinkDoesNotExpireBouncers(t *testing.T) {
	s := newTestSession(Bouncing, realPicker(), nil)
	s.Start(t0)
	s.Tick(t0.Add(ms(1000)))
	before := s.Score().Missed

	s.SetViewport(core.NewRect(0, 0, 640, 360))
	for at := 1016; at <= 1400; at += 16 {
		s.Tick(t0.Add(ms(at)))
	}

	if got := s.Score().Missed; got != before {
		t.Errorf("missed went from %d to %d after a resize with no input", before, got)
	}
}
