package core

// RuntimeConfig contains the front-end parameters resolved at startup:
// the play field size, tick rate and RNG seed.
type RuntimeConfig struct {
	ViewW    float64 // Play field width in world pixels
	ViewH    float64 // Play field height in world pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    1280,
		ViewH:    720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the play field as a rectangle anchored at the origin.
func (c RuntimeConfig) Viewport() Rect {
	return Rect{W: c.ViewW, H: c.ViewH}
}
