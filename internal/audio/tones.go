// Package audio plays short synthesized cues for hit and miss effects.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tunehunt/internal/core"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// tone is a fixed-length oscillator with a linear fade-in and fade-out.
type tone struct {
	freq  float64
	wave  Wave
	phase float64
	pos   int
	total int
	fade  int
	rate  beep.SampleRate
}

// Tone returns a streamer of freq Hz lasting d. A 5 ms ramp at both ends
// keeps the edges from clicking.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &tone{
		freq:  freq,
		wave:  wave,
		total: total,
		fade:  min(rate.N(5*time.Millisecond), total/2),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var v float64
		switch t.wave {
		case Square:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case Saw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.gain()

		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) gain() float64 {
	if t.fade <= 0 {
		return 1
	}
	if t.pos < t.fade {
		return float64(t.pos) / float64(t.fade)
	}
	if left := t.total - t.pos; left < t.fade {
		return float64(left) / float64(t.fade)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// withVolume scales s linearly; 0 or less is silent, above 1 is full scale.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	vol = core.ClampF(vol, 0, 1)
	if vol == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue builds the sound for an effect at the given volume (0..1).
func Cue(effect engine.Effect, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case engine.EffectHit:
		// Rising fifth.
		s = beep.Seq(
			Tone(660, 60*time.Millisecond, Sine, rate),
			Tone(990, 90*time.Millisecond, Sine, rate),
		)
	case engine.EffectFakeHit:
		s = Tone(140, 180*time.Millisecond, Square, rate)
	default:
		s = beep.Seq(
			Tone(330, 70*time.Millisecond, Saw, rate),
			Tone(220, 110*time.Millisecond, Saw, rate),
		)
	}
	return withVolume(s, vol)
}
