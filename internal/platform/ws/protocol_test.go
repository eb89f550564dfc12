package ws

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	b, err := Encode(MsgClick, Click{ID: 42})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.T != MsgClick {
		t.Errorf("T = %q, expected %q", env.T, MsgClick)
	}
	click, err := DecodePayload[Click](env)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if click.ID != 42 {
		t.Errorf("ID = %d, expected 42", click.ID)
	}
}

func TestCodecErrors(t *testing.T) {
	if _, err := Encode("", nil); err == nil {
		t.Error("Encode with empty type should fail")
	}
	if _, err := DecodeEnvelope(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("DecodeEnvelope(nil) = %v, expected ErrEmptyFrame", err)
	}
	if _, err := DecodeEnvelope([]byte{0xc1}); err == nil {
		t.Error("DecodeEnvelope should reject garbage")
	}

	b, _ := Encode(MsgStart, nil)
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if _, err := DecodePayload[Click](env); err == nil {
		t.Error("DecodePayload on an empty payload should fail")
	}
}

func encode(t *testing.T, typ string, payload any) []byte {
	t.Helper()
	b, err := Encode(typ, payload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b
}

func TestCommand(t *testing.T) {
	pool := content.NewDefaultPool()

	tests := []struct {
		name    string
		frame   []byte
		want    engine.Input
		ok      bool
		wantErr bool
	}{
		{"start", encode(t, MsgStart, nil), engine.Input{Kind: engine.InputStart}, true, false},
		{"stop", encode(t, MsgStop, nil), engine.Input{Kind: engine.InputStop}, true, false},
		{"click", encode(t, MsgClick, Click{ID: 7}), engine.Input{Kind: engine.InputClick, ID: 7}, true, false},
		{"click at", encode(t, MsgClickAt, ClickAt{X: 1, Y: 2}), engine.Input{Kind: engine.InputClickAt, X: 1, Y: 2}, true, false},
		{"mode", encode(t, MsgMode, ModeSelect{Mode: "gliding"}), engine.Input{Kind: engine.InputMode, Mode: engine.Gliding}, true, false},
		{"resize", encode(t, MsgResize, Resize{W: 800, H: 600}), engine.Input{Kind: engine.InputResize, W: 800, H: 600}, true, false},
		{"theme", encode(t, MsgTheme, ThemeSelect{Theme: "themed"}), engine.Input{}, false, false},
		{"bad mode", encode(t, MsgMode, ModeSelect{Mode: "sideways"}), engine.Input{}, false, true},
		{"bad theme", encode(t, MsgTheme, ThemeSelect{Theme: "neon"}), engine.Input{}, false, true},
		{"click without payload", encode(t, MsgClick, nil), engine.Input{}, false, true},
		{"unknown", encode(t, "dance", nil), engine.Input{}, false, true},
		{"empty", nil, engine.Input{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := command(tt.frame, pool)
			if (err != nil) != tt.wantErr {
				t.Fatalf("command() error = %v, wantErr %v", err, tt.wantErr)
			}
			if ok != tt.ok || got != tt.want {
				t.Errorf("command() = %+v, %v; expected %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	if pool.ThemeVariant() != content.Themed {
		t.Errorf("theme frame should switch the pool, got %v", pool.ThemeVariant())
	}
}

func TestOutboxCollectsEffects(t *testing.T) {
	o := &outbox{}
	o.Emit(engine.EffectRequested{Effect: engine.EffectFakeHit, ID: 3, X: 10.04, Y: 20.06})
	o.Emit(engine.ScoreChanged{})
	o.Emit(engine.SessionEnded{Score: engine.Score{Points: 2, Hits: 1}, HighScore: 5, Spawned: 4})

	if len(o.effects) != 1 {
		t.Fatalf("expected 1 effect, got %d", len(o.effects))
	}
	if e := o.effects[0]; e.Kind != "fake-hit" || e.ID != 3 || e.X != 10 || e.Y != 20.1 {
		t.Errorf("effect = %+v", e)
	}
	if o.ended == nil || o.ended.Score.High != 5 || o.ended.Spawned != 4 || o.ended.Score.Accuracy != 100 {
		t.Errorf("ended = %+v", o.ended)
	}
}
