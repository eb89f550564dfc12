package engine

import (
	"time"

	"github.com/vovakirdan/tunehunt/internal/core"
)

// Physics holds the per-mode motion constants.
// Speeds are in px per reference frame (1/60 s).
type Physics struct {
	ShrinkStep     float64
	FontShrinkStep float64

	BounceSpeedRange  float64
	BounceMinSpeed    float64
	BounceGrowth      float64
	BounceMaxSpeed    float64
	BounceDeleteSpeed float64
	BounceTimeoutMin  time.Duration
	BounceTimeoutMax  time.Duration

	ShootingSpeed  float64
	ShootingOffset float64

	GlideStepMin    float64
	GlideStepRange  float64
	GlideTop        float64
	GlideSpeedMin   float64
	GlideSpeedRange float64

	OffscreenMargin float64
}

// Settings configures a Session.
type Settings struct {
	Duration        time.Duration
	SpawnFrequency  time.Duration
	InitialSize     float64
	InitialFontSize float64
	Mode            Mode
	Viewport        core.Rect
	Physics         Physics
}

// DefaultPhysics returns the stock motion constants.
func DefaultPhysics() Physics {
	return Physics{
		ShrinkStep:        30,
		FontShrinkStep:    5,
		BounceSpeedRange:  3,
		BounceMinSpeed:    1,
		BounceGrowth:      1.05,
		BounceMaxSpeed:    5,
		BounceDeleteSpeed: 5,
		BounceTimeoutMin:  5 * time.Second,
		BounceTimeoutMax:  7 * time.Second,
		ShootingSpeed:     3,
		ShootingOffset:    0.2,
		GlideStepMin:      20,
		GlideStepRange:    200,
		GlideTop:          130,
		GlideSpeedMin:     2,
		GlideSpeedRange:   3,
		OffscreenMargin:   0.2,
	}
}

// DefaultSettings returns a 20 s classic session on a 1280x720 field.
func DefaultSettings() Settings {
	return Settings{
		Duration:        20 * time.Second,
		SpawnFrequency:  333 * time.Millisecond,
		InitialSize:     150,
		InitialFontSize: 20,
		Mode:            Classic,
		Viewport:        core.NewRect(0, 0, 1280, 720),
		Physics:         DefaultPhysics(),
	}
}

// referenceFrame is the frame length velocities are expressed in.
const referenceFrame = time.Second / 60

// maxStep bounds a single integration step, in reference frames.
// Longer ticks are split so fast targets cannot tunnel through walls.
const maxStep = 2.0
