package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tunehunt/internal/engine"
)

// maxVoices bounds how many cues may overlap.
const maxVoices = 8

// Player is an engine.Sink that turns EffectRequested events into sound.
// Until Init succeeds every call is a no-op, so a missing audio device
// never affects the game.
type Player struct {
	Volume float64
	Logger *log.Logger

	mu     sync.Mutex
	mixer  *beep.Mixer
	ready  bool
	played int
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64, logger *log.Logger) *Player {
	return &Player{
		Volume: volume,
		Logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Emit plays the cue for effect events and ignores everything else.
func (p *Player) Emit(e engine.Event) {
	if ev, ok := e.(engine.EffectRequested); ok {
		p.Play(ev.Effect)
	}
}

// Play queues the cue for effect. Cues beyond maxVoices are dropped.
func (p *Player) Play(effect engine.Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len() >= maxVoices {
		if p.Logger != nil {
			p.Logger.Debug("dropping cue", "effect", effect)
		}
		return
	}
	p.mixer.Add(Cue(effect, p.Volume, SampleRate))
	p.played++
}

// Played returns how many cues were queued.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences all cues. The device stays open for the process lifetime.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}
