package config

import (
	_ "embed"
)

//go:embed defaults/tunehunt.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Duration:        20000,
			SpawnFrequency:  333,
			InitialSize:     150,
			InitialFontSize: 20,
			SelectedMode:    "classic",
			ThemeVariant:    "standard",
		},
		Physics: PhysicsConfig{
			ShrinkStep:        30,
			FontShrinkStep:    5,
			BounceSpeedRange:  3,
			BounceMinSpeed:    1,
			BounceGrowth:      1.05,
			BounceMaxSpeed:    5,
			BounceDeleteSpeed: 5,
			BounceTimeoutMin:  5000,
			BounceTimeoutMax:  7000,
			ShootingSpeed:     3,
			ShootingOffset:    0.2,
			GlideStepMin:      20,
			GlideStepRange:    200,
			GlideTop:          130,
			GlideSpeedMin:     2,
			GlideSpeedRange:   3,
			OffscreenMargin:   0.2,
		},
		Content: ContentConfig{
			Source:      "builtin",
			CatalogPath: "~/.tunehunt/catalog.db",
			Timeout:     5,
		},
		Runtime: RuntimeConfig{
			TickRate:   60,
			ViewWidth:  1280,
			ViewHeight: 720,
			LogLevel:   "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config init`.
func DefaultYAML() []byte {
	return defaultYAML
}
