package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
)

var t0 = time.Date(2024, 12, 24, 12, 0, 0, 0, time.UTC)

type fixedPicker struct {
	c  content.Content
	ok bool
}

func (p fixedPicker) Pick(*rand.Rand) (content.Content, bool) {
	return p.c, p.ok
}

func realPicker() fixedPicker {
	return fixedPicker{c: content.Content{Name: "Real Song"}, ok: true}
}

func fakePicker() fixedPicker {
	return fixedPicker{c: content.Content{Name: "Fake Song", IsFake: true}, ok: true}
}

type recorder struct {
	events []Event
}

func (r *recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, e := range r.events {
		if match(e) {
			n++
		}
	}
	return n
}

func testSettings(mode Mode) Settings {
	s := DefaultSettings()
	s.Duration = 20 * time.Second
	s.SpawnFrequency = 500 * time.Millisecond
	s.Mode = mode
	return s
}

func newTestSession(mode Mode, picker ContentPicker, sink Sink) *Session {
	return NewSession(testSettings(mode), picker, sink, rand.New(rand.NewSource(42)))
}

func testFrame(vp core.Rect, p *Physics, seed int64) Frame {
	return Frame{Step: 1, Viewport: vp, Physics: p, RNG: rand.New(rand.NewSource(seed))}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
