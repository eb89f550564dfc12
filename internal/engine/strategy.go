package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tunehunt/internal/core"
)

// Frame is the context of one movement update.
type Frame struct {
	Now      time.Duration // Session-relative time at the end of the step
	Step     float64       // Step length in reference frames
	Viewport core.Rect
	Physics  *Physics
	RNG      *rand.Rand
}

// MovementStrategy places new targets and advances them each frame.
type MovementStrategy interface {
	// Spawn sets the initial position and motion of e.
	Spawn(e *Entity, f Frame)
	// Update advances e by one frame. Expire resolves it as a miss.
	Update(e *Entity, f Frame) Outcome
}

// spawnTicker is implemented by strategies that react to spawn boundaries.
type spawnTicker interface {
	OnSpawnTick(e *Entity, f Frame) Outcome
}

// NewStrategy returns a fresh strategy for the mode. Strategies may keep
// per-session state, so each session start gets a new one.
func NewStrategy(m Mode) MovementStrategy {
	switch m {
	case Bouncing:
		return &bouncingStrategy{}
	case Shooting:
		return &shootingStrategy{}
	case Gliding:
		return &glidingStrategy{cursor: glideCursorStart}
	default:
		return &classicStrategy{}
	}
}

// randomInside returns a top-left corner that keeps a w x h box inside vp.
func randomInside(rng *rand.Rand, vp core.Rect, w, h float64) (float64, float64) {
	return vp.X + rng.Float64()*math.Max(0, vp.W-w), vp.Y + rng.Float64()*math.Max(0, vp.H-h)
}

// offscreen reports whether b lies entirely outside vp grown by margin on every side.
func offscreen(b, vp core.Rect, margin float64) bool {
	outer := vp.Expand(margin)
	return b.Y > outer.Bottom() || b.X > outer.Right() || b.Right() < outer.X || b.Bottom() < outer.Y
}

// classicStrategy: fixed position, shrinks on every spawn boundary.
type classicStrategy struct{}

func (classicStrategy) Spawn(e *Entity, f Frame) {
	e.Geometry.X, e.Geometry.Y = randomInside(f.RNG, f.Viewport, e.Geometry.Width, e.Geometry.Height)
}

func (classicStrategy) Update(*Entity, Frame) Outcome {
	return Continue
}

func (classicStrategy) OnSpawnTick(e *Entity, f Frame) Outcome {
	g := &e.Geometry
	w := g.Width - f.Physics.ShrinkStep
	h := g.Height - f.Physics.ShrinkStep
	font := g.FontSize - f.Physics.FontShrinkStep
	if w <= 0 || h <= 0 || font <= 0 {
		return Expire
	}

	// Shrink around the centre so the target stays put.
	c := g.Center()
	g.Width, g.Height, g.FontSize = w, h, font
	g.X, g.Y = c.X-w/2, c.Y-h/2
	return Continue
}

// bouncingStrategy: reflects off walls, speeds up on every bounce and
// expires when too fast or after its timeout.
type bouncingStrategy struct{}

func (bouncingStrategy) Spawn(e *Entity, f Frame) {
	p := f.Physics
	e.Geometry.X, e.Geometry.Y = randomInside(f.RNG, f.Viewport, e.Geometry.Width, e.Geometry.Height)
	e.Velocity = core.Vec{
		X: bounceSpeed(f.RNG, p.BounceSpeedRange, p.BounceMinSpeed),
		Y: bounceSpeed(f.RNG, p.BounceSpeedRange, p.BounceMinSpeed),
	}

	timeout := p.BounceTimeoutMin
	if spread := p.BounceTimeoutMax - p.BounceTimeoutMin; spread > 0 {
		timeout += time.Duration(f.RNG.Int63n(int64(spread)))
	}
	e.Deadline = e.SpawnedAt + timeout
}

// bounceSpeed draws from [-limit, limit], rejecting magnitudes below min.
func bounceSpeed(rng *rand.Rand, limit, min float64) float64 {
	for {
		v := (rng.Float64()*2 - 1) * limit
		if math.Abs(v) >= min {
			return v
		}
	}
}

func (bouncingStrategy) Update(e *Entity, f Frame) Outcome {
	if e.Deadline > 0 && f.Now >= e.Deadline {
		return Expire
	}

	p := f.Physics
	g := &e.Geometry
	v := &e.Velocity

	g.X += v.X * f.Step
	g.Y += v.Y * f.Step

	// Only a target heading into a wall bounces. One already past it and
	// moving back in, after a collision push or a resize, just travels on.
	if g.X < f.Viewport.X && v.X < 0 {
		v.X = -v.X
		if bounce(v, p) {
			return Expire
		}
	} else if g.X+g.Width > f.Viewport.Right() && v.X > 0 {
		v.X = -v.X
		if bounce(v, p) {
			return Expire
		}
	}
	if g.Y < f.Viewport.Y && v.Y < 0 {
		v.Y = -v.Y
		if bounce(v, p) {
			return Expire
		}
	} else if g.Y+g.Height > f.Viewport.Bottom() && v.Y > 0 {
		v.Y = -v.Y
		if bounce(v, p) {
			return Expire
		}
	}

	// Snap near-stopped axes to ±1 and damp slow ones.
	if math.Abs(v.X) < 0.5 {
		v.X = randomSign(f.RNG)
	}
	if math.Abs(v.Y) < 0.5 {
		v.Y = randomSign(f.RNG)
	}
	damping := math.Pow(0.99, f.Step)
	if math.Abs(v.X) < 1 {
		v.X *= damping
	}
	if math.Abs(v.Y) < 1 {
		v.Y *= damping
	}
	return Continue
}

// bounce applies the per-bounce speed-up and cap. It reports whether the
// target is now fast enough to be removed.
func bounce(v *core.Vec, p *Physics) bool {
	v.X = capMagnitude(v.X*p.BounceGrowth, p.BounceMaxSpeed)
	v.Y = capMagnitude(v.Y*p.BounceGrowth, p.BounceMaxSpeed)
	return math.Abs(v.X) >= p.BounceDeleteSpeed || math.Abs(v.Y) >= p.BounceDeleteSpeed
}

func capMagnitude(v, max float64) float64 {
	if math.Abs(v) > max {
		return core.Sign(v) * max
	}
	return v
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// shootingStrategy: launched from the upper-left region, moves in a
// straight line until it leaves the extended viewport.
type shootingStrategy struct{}

func (shootingStrategy) Spawn(e *Entity, f Frame) {
	p := f.Physics
	vp := f.Viewport
	e.Geometry.X = vp.X + vp.W*(0.1+f.RNG.Float64()*0.2)
	e.Geometry.Y = vp.Y + vp.H*(0.1+f.RNG.Float64()*0.2)
	e.Velocity = core.Vec{
		X: (f.RNG.Float64() + p.ShootingOffset) * p.ShootingSpeed,
		Y: (f.RNG.Float64() + p.ShootingOffset) * p.ShootingSpeed,
	}
}

func (shootingStrategy) Update(e *Entity, f Frame) Outcome {
	e.Geometry.X += e.Velocity.X * f.Step
	e.Geometry.Y += e.Velocity.Y * f.Step
	if offscreen(e.Geometry.Bounds(), f.Viewport, f.Physics.OffscreenMargin) {
		return Expire
	}
	return Continue
}

const (
	glideCursorStart = 50
	glideRightGap    = 80
)

// glidingStrategy: targets enter at a fixed height, each one further right
// than the last, and fall straight down.
type glidingStrategy struct {
	cursor float64
}

func (s *glidingStrategy) Spawn(e *Entity, f Frame) {
	p := f.Physics
	s.cursor += p.GlideStepMin + f.RNG.Float64()*p.GlideStepRange
	if s.cursor+glideRightGap > f.Viewport.W {
		s.cursor = glideCursorStart
	}
	e.Geometry.X = f.Viewport.X + s.cursor
	e.Geometry.Y = f.Viewport.Y + p.GlideTop
	e.Velocity = core.Vec{Y: p.GlideSpeedMin + f.RNG.Float64()*p.GlideSpeedRange}
}

func (s *glidingStrategy) Update(e *Entity, f Frame) Outcome {
	e.Geometry.Y += e.Velocity.Y * f.Step
	if offscreen(e.Geometry.Bounds(), f.Viewport, f.Physics.OffscreenMargin) {
		return Expire
	}
	return Continue
}
