// Package ws serves game sessions to browser clients over WebSocket.
// Every connection gets its own session; frames are msgpack envelopes.
package ws

import (
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tunehunt/internal/engine"
)

// Message types, server to client.
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgEffect  = "effect"
	MsgEnded   = "ended"
	MsgError   = "error"
)

// Message types, client to server.
const (
	MsgStart   = "start"
	MsgStop    = "stop"
	MsgClick   = "click"
	MsgClickAt = "click_at"
	MsgMode    = "mode"
	MsgTheme   = "theme"
	MsgResize  = "resize"
)

// ErrEmptyFrame is returned for zero-length frames.
var ErrEmptyFrame = errors.New("ws: empty frame")

// Envelope wraps every frame: a type tag and its encoded payload.
type Envelope struct {
	T string             `msgpack:"t"`
	P msgpack.RawMessage `msgpack:"p,omitempty"`
}

// Welcome is sent once after the upgrade.
type Welcome struct {
	TickHz int      `msgpack:"tick_hz"`
	ViewW  float64  `msgpack:"view_w"`
	ViewH  float64  `msgpack:"view_h"`
	Modes  []string `msgpack:"modes"`
	Mode   string   `msgpack:"mode"`
	Theme  string   `msgpack:"theme"`
}

// Target is the public view of an entity. Whether it is fake is not sent.
type Target struct {
	ID   uint64  `msgpack:"id"`
	Name string  `msgpack:"name"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	W    float64 `msgpack:"w"`
	H    float64 `msgpack:"h"`
	Font float64 `msgpack:"font"`
}

// Follower is the gliding-mode follower.
type Follower struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// Score mirrors engine.Score with the derived accuracy.
type Score struct {
	Points   int     `msgpack:"points"`
	Hits     int     `msgpack:"hits"`
	Missed   int     `msgpack:"missed"`
	Accuracy float64 `msgpack:"accuracy"`
	High     int     `msgpack:"high"`
}

// State is the field snapshot sent after every tick and applied command.
type State struct {
	Seq         uint64    `msgpack:"seq"`
	Running     bool      `msgpack:"running"`
	Mode        string    `msgpack:"mode"`
	Theme       string    `msgpack:"theme"`
	RemainingMs int64     `msgpack:"remaining_ms"`
	Score       Score     `msgpack:"score"`
	Targets     []Target  `msgpack:"targets"`
	Follower    *Follower `msgpack:"follower,omitempty"`
}

// Effect asks the client to play a hit or miss cue at a point.
type Effect struct {
	Kind string  `msgpack:"kind"`
	ID   uint64  `msgpack:"id"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
}

// Ended reports the final tally of a round.
type Ended struct {
	Score   Score `msgpack:"score"`
	Spawned int   `msgpack:"spawned"`
}

// Error reports a rejected client frame.
type Error struct {
	Message string `msgpack:"message"`
}

// Click resolves a target by id.
type Click struct {
	ID uint64 `msgpack:"id"`
}

// ClickAt hit-tests a world point.
type ClickAt struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// ModeSelect picks the mode for the next round.
type ModeSelect struct {
	Mode string `msgpack:"mode"`
}

// ThemeSelect switches the content variant.
type ThemeSelect struct {
	Theme string `msgpack:"theme"`
}

// Resize sets the play field size in world pixels.
type Resize struct {
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

// Encode builds an envelope frame. A nil payload sends the tag alone.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("ws: encode: empty message type")
	}
	env := Envelope{T: t}
	if payload != nil {
		p, err := msgpack.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("ws: encode %s: %w", t, err)
		}
		env.P = p
	}
	return msgpack.Marshal(&env)
}

// DecodeEnvelope reads the outer frame.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyFrame
	}
	var env Envelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("ws: decode envelope: %w", err)
	}
	if env.T == "" {
		return Envelope{}, errors.New("ws: decode envelope: missing type")
	}
	return env, nil
}

// DecodePayload decodes the payload of env into T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("ws: empty payload for %q", env.T)
	}
	if err := msgpack.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("ws: decode %s: %w", env.T, err)
	}
	return out, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func targetOf(v engine.EntityView) Target {
	return Target{
		ID:   v.ID,
		Name: v.Name,
		X:    round1(v.X),
		Y:    round1(v.Y),
		W:    round1(v.Width),
		H:    round1(v.Height),
		Font: round1(v.FontSize),
	}
}

func scoreOf(s engine.Score, high int) Score {
	return Score{
		Points:   s.Points,
		Hits:     s.Hits,
		Missed:   s.Missed,
		Accuracy: math.Round(s.Accuracy()*100) / 100,
		High:     high,
	}
}

func modeNames() []string {
	names := make([]string, len(engine.Modes))
	for i, m := range engine.Modes {
		names[i] = m.String()
	}
	return names
}
