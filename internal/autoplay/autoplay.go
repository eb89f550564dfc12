// Package autoplay drives a session without a human, for tuning runs.
package autoplay

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tunehunt/internal/engine"
)

// Player clicks targets a fixed reaction time after they appear.
// Each target is rolled once against HitRate; a failed roll leaves it to expire.
type Player struct {
	Reaction time.Duration
	HitRate  float64
	// FakeRate is the chance a fake target is clicked anyway.
	FakeRate float64

	rng     *rand.Rand
	seen    map[uint64]time.Duration
	decided map[uint64]bool
}

// New creates a player. A nil rng is seeded from the clock.
func New(reaction time.Duration, hitRate, fakeRate float64, rng *rand.Rand) *Player {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Player{
		Reaction: reaction,
		HitRate:  hitRate,
		FakeRate: fakeRate,
		rng:      rng,
		seen:     make(map[uint64]time.Duration),
		decided:  make(map[uint64]bool),
	}
}

// Act looks at the field and clicks whatever is due. It has the signature
// engine.Simulate expects for its before hook.
func (p *Player) Act(s *engine.Session, _ time.Time) {
	now := s.Elapsed()
	for _, v := range s.Entities() {
		first, ok := p.seen[v.ID]
		if !ok {
			p.seen[v.ID] = now
			continue
		}
		if p.decided[v.ID] || now-first < p.Reaction {
			continue
		}

		p.decided[v.ID] = true
		rate := p.HitRate
		if v.IsFake {
			rate = p.FakeRate
		}
		if p.rng.Float64() < rate {
			s.Click(v.ID)
		}
	}
}

// Reset forgets every target, for reuse across rounds.
func (p *Player) Reset() {
	clear(p.seen)
	clear(p.decided)
}

// Run plays one full round on a manual clock and returns the final score.
func (p *Player) Run(s *engine.Session, start time.Time, tickRate int) (engine.Score, error) {
	p.Reset()
	return engine.Simulate(s, engine.NewManualClock(start), tickRate, p.Act)
}
