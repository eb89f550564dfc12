package engine

import (
	"time"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
)

// Geometry is a target's box in world pixels; X, Y is the top-left corner.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	FontSize      float64
}

// Bounds returns the bounding box.
func (g Geometry) Bounds() core.Rect {
	return core.NewRect(g.X, g.Y, g.Width, g.Height)
}

// Center returns the centre point.
func (g Geometry) Center() core.Vec {
	return g.Bounds().Center()
}

// Radius is half the width; targets are circles.
func (g Geometry) Radius() float64 {
	return g.Width / 2
}

// Contains reports whether p lies inside the target's ellipse.
func (g Geometry) Contains(p core.Vec) bool {
	rx, ry := g.Width/2, g.Height/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := g.Center()
	dx, dy := (p.X-c.X)/rx, (p.Y-c.Y)/ry
	return dx*dx+dy*dy <= 1
}

type lifecycle int

const (
	active lifecycle = iota
	resolved
)

// Entity is one spawned target.
type Entity struct {
	ID        uint64
	Content   content.Content
	Geometry  Geometry
	Velocity  core.Vec
	Deadline  time.Duration // Session-relative expiry; zero means none
	Mode      Mode
	SpawnedAt time.Duration

	state lifecycle
}

// Active reports whether the entity can still be hit or expire.
func (e *Entity) Active() bool {
	return e.state == active
}

// resolve moves the entity to Resolved. Only the first call succeeds.
func (e *Entity) resolve() bool {
	if e.state != active {
		return false
	}
	e.state = resolved
	return true
}

// View returns an immutable snapshot for sinks and renderers.
func (e *Entity) View() EntityView {
	return EntityView{
		ID:       e.ID,
		Name:     e.Content.Name,
		IsFake:   e.Content.IsFake,
		Mode:     e.Mode,
		X:        e.Geometry.X,
		Y:        e.Geometry.Y,
		Width:    e.Geometry.Width,
		Height:   e.Geometry.Height,
		FontSize: e.Geometry.FontSize,
		VX:       e.Velocity.X,
		VY:       e.Velocity.Y,
	}
}

// EntityView is a copy of an entity's render state.
type EntityView struct {
	ID       uint64
	Name     string
	IsFake   bool
	Mode     Mode
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
	VX       float64
	VY       float64
}

// Center returns the centre of the viewed target.
func (v EntityView) Center() core.Vec {
	return core.Vec{X: v.X + v.Width/2, Y: v.Y + v.Height/2}
}
