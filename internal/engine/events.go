package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// Event is emitted by a Session. The set of events is closed.
type Event interface {
	engineEvent()
}

// Effect names a sound or visual cue.
type Effect int

const (
	EffectHit     Effect = iota // Real target clicked
	EffectFakeHit               // Fake target clicked
	EffectMiss                  // Target expired
)

func (e Effect) String() string {
	switch e {
	case EffectHit:
		return "hit"
	case EffectFakeHit:
		return "fake-hit"
	case EffectMiss:
		return "miss"
	default:
		return "unknown"
	}
}

type (
	EntityCreated struct {
		Entity EntityView
	}

	EntityMoved struct {
		Entity EntityView
	}

	EntityRemoved struct {
		ID     uint64
		Reason Resolution
	}

	EffectRequested struct {
		Effect Effect
		ID     uint64
		X, Y   float64 // Centre of the target
	}

	// FollowerMoved tracks the decorative follower in gliding mode.
	FollowerMoved struct {
		X, Y    float64
		Visible bool
	}

	ScoreChanged struct {
		Score     Score
		HighScore int
	}

	SessionStarted struct {
		Mode     Mode
		Duration time.Duration
	}

	SessionEnded struct {
		Score     Score
		HighScore int
		Spawned   int
	}
)

func (EntityCreated) engineEvent()   {}
func (EntityMoved) engineEvent()     {}
func (EntityRemoved) engineEvent()   {}
func (EffectRequested) engineEvent() {}
func (FollowerMoved) engineEvent()   {}
func (ScoreChanged) engineEvent()    {}
func (SessionStarted) engineEvent()  {}
func (SessionEnded) engineEvent()    {}

// Sink receives session events. Emit must not block and must not call
// back into the session.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// MultiSink fans events out in order.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// LogSink logs session lifecycle events at info and resolutions at debug.
type LogSink struct {
	Logger *log.Logger
}

func (l LogSink) Emit(e Event) {
	switch ev := e.(type) {
	case SessionStarted:
		l.Logger.Info("session started", "mode", ev.Mode, "duration", ev.Duration)
	case SessionEnded:
		l.Logger.Info("session ended",
			"points", ev.Score.Points,
			"hits", ev.Score.Hits,
			"missed", ev.Score.Missed,
			"accuracy", ev.Score.Accuracy(),
			"high", ev.HighScore,
			"spawned", ev.Spawned,
		)
	case EntityRemoved:
		l.Logger.Debug("target removed", "id", ev.ID, "reason", ev.Reason)
	}
}
