package engine

import "github.com/vovakirdan/tunehunt/internal/core"

// ResolveCollisions separates overlapping bouncing targets and exchanges
// their velocity components along the collision normal (equal masses).
// Each unordered pair is checked once, in spawn order. Returns the number
// of colliding pairs.
func ResolveCollisions(entities []*Entity) int {
	hits := 0
	for i, a := range entities {
		if !collidable(a) {
			continue
		}
		for _, b := range entities[i+1:] {
			if !collidable(b) {
				continue
			}
			if collide(a, b) {
				hits++
			}
		}
	}
	return hits
}

func collidable(e *Entity) bool {
	return e.Active() && e.Mode == Bouncing
}

func collide(a, b *Entity) bool {
	ca, cb := a.Geometry.Center(), b.Geometry.Center()
	d := cb.Sub(ca)
	dist := d.Len()
	reach := a.Geometry.Radius() + b.Geometry.Radius()
	if dist >= reach {
		return false
	}

	// Coincident centres have no direction; push apart along x.
	angle := 0.0
	if dist > 0 {
		angle = d.Angle()
	}
	n := core.Polar(1, angle)

	// Normal components of each velocity.
	an := a.Velocity.Dot(n)
	bn := b.Velocity.Dot(n)
	if an-bn > 0 {
		// Approaching: swap the normal components, keep the tangential ones.
		a.Velocity = a.Velocity.Add(n.Scale(bn - an))
		b.Velocity = b.Velocity.Add(n.Scale(an - bn))
	}

	push := n.Scale((reach - dist) / 2)
	a.Geometry.X -= push.X
	a.Geometry.Y -= push.Y
	b.Geometry.X += push.X
	b.Geometry.Y += push.Y
	return true
}
