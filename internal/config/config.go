// Package config provides YAML-based game configuration loading with
// environment overrides for tunehunt.
package config

// Config is the complete tunehunt configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Physics PhysicsConfig `yaml:"physics"`
	Content ContentConfig `yaml:"content"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// GameConfig defines session parameters.
type GameConfig struct {
	Duration        int     `yaml:"duration"`        // Session length in ms
	SpawnFrequency  int     `yaml:"spawn_frequency"` // Spawn interval in ms
	InitialSize     float64 `yaml:"initial_size"`    // Target diameter in px
	InitialFontSize float64 `yaml:"initial_font_size"`
	SelectedMode    string  `yaml:"selected_mode"` // classic, bouncing, shooting, gliding
	ThemeVariant    string  `yaml:"theme_variant"` // standard, themed
}

// PhysicsConfig defines per-mode motion parameters.
// Speeds are in px per 1/60 s reference frame.
type PhysicsConfig struct {
	ShrinkStep     float64 `yaml:"shrink_step"`
	FontShrinkStep float64 `yaml:"font_shrink_step"`

	BounceSpeedRange  float64 `yaml:"bounce_speed_range"` // Initial speed drawn from [-range, range]
	BounceMinSpeed    float64 `yaml:"bounce_min_speed"`   // Initial draws below this are rejected
	BounceGrowth      float64 `yaml:"bounce_growth"`
	BounceMaxSpeed    float64 `yaml:"bounce_max_speed"`
	BounceDeleteSpeed float64 `yaml:"bounce_delete_speed"`
	BounceTimeoutMin  int     `yaml:"bounce_timeout_min"` // ms
	BounceTimeoutMax  int     `yaml:"bounce_timeout_max"` // ms

	ShootingSpeed  float64 `yaml:"shooting_speed"`
	ShootingOffset float64 `yaml:"shooting_offset"`

	GlideStepMin    float64 `yaml:"glide_step_min"`
	GlideStepRange  float64 `yaml:"glide_step_range"`
	GlideTop        float64 `yaml:"glide_top"`
	GlideSpeedMin   float64 `yaml:"glide_speed_min"`
	GlideSpeedRange float64 `yaml:"glide_speed_range"`

	OffscreenMargin float64 `yaml:"offscreen_margin"` // Fraction of the viewport
}

// ContentConfig selects where the real name lists come from.
type ContentConfig struct {
	Source          string `yaml:"source"` // builtin, http, file, catalog
	URL             string `yaml:"url"`
	File            string `yaml:"file"`
	CatalogPath     string `yaml:"catalog_path"`
	RefreshInterval int    `yaml:"refresh_interval"` // seconds, 0 disables periodic refresh
	Timeout         int    `yaml:"timeout"`          // seconds
}

// RuntimeConfig holds front-end and process settings.
type RuntimeConfig struct {
	TickRate   int     `yaml:"tick_rate"`
	Seed       int64   `yaml:"seed"`
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	LogLevel   string  `yaml:"log_level"`
	Sound      bool    `yaml:"sound"`
}

// Known enum values.
var (
	Modes    = []string{"classic", "bouncing", "shooting", "gliding"}
	Variants = []string{"standard", "themed"}
	Sources  = []string{"builtin", "http", "file", "catalog"}
)
