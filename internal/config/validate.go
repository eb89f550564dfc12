package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Game.Duration <= 0 {
		bad("game.duration must be positive, got %d", c.Game.Duration)
	}
	if c.Game.SpawnFrequency <= 0 {
		bad("game.spawn_frequency must be positive, got %d", c.Game.SpawnFrequency)
	}
	if c.Game.InitialSize <= 0 {
		bad("game.initial_size must be positive, got %v", c.Game.InitialSize)
	}
	if c.Game.InitialFontSize <= 0 {
		bad("game.initial_font_size must be positive, got %v", c.Game.InitialFontSize)
	}
	if !slices.Contains(Modes, c.Game.SelectedMode) {
		bad("game.selected_mode %q is not one of %v", c.Game.SelectedMode, Modes)
	}
	if !slices.Contains(Variants, c.Game.ThemeVariant) {
		bad("game.theme_variant %q is not one of %v", c.Game.ThemeVariant, Variants)
	}

	p := c.Physics
	if p.BounceGrowth < 1 {
		bad("physics.bounce_growth must be at least 1, got %v", p.BounceGrowth)
	}
	if p.BounceMinSpeed <= 0 || p.BounceSpeedRange <= p.BounceMinSpeed {
		bad("physics.bounce_speed_range (%v) must exceed bounce_min_speed (%v) > 0", p.BounceSpeedRange, p.BounceMinSpeed)
	}
	if p.BounceTimeoutMin <= 0 || p.BounceTimeoutMax < p.BounceTimeoutMin {
		bad("physics.bounce_timeout range [%d, %d] is invalid", p.BounceTimeoutMin, p.BounceTimeoutMax)
	}
	if p.OffscreenMargin < 0 {
		bad("physics.offscreen_margin must not be negative, got %v", p.OffscreenMargin)
	}

	if !slices.Contains(Sources, c.Content.Source) {
		bad("content.source %q is not one of %v", c.Content.Source, Sources)
	}
	if c.Content.Source == "http" && c.Content.URL == "" {
		bad("content.url is required for the http source")
	}
	if c.Content.Source == "file" && c.Content.File == "" {
		bad("content.file is required for the file source")
	}
	if c.Content.RefreshInterval < 0 {
		bad("content.refresh_interval must not be negative, got %d", c.Content.RefreshInterval)
	}

	if c.Runtime.TickRate <= 0 {
		bad("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.ViewWidth <= 0 || c.Runtime.ViewHeight <= 0 {
		bad("runtime viewport must be positive, got %vx%v", c.Runtime.ViewWidth, c.Runtime.ViewHeight)
	}

	return errors.Join(errs...)
}
