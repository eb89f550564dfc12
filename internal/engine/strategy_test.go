package engine

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tunehunt/internal/core"
)

func TestClassicShrinksToExpiry(t *testing.T) {
	p := DefaultPhysics()
	f := testFrame(core.NewRect(0, 0, 1280, 720), &p, 1)
	e := &Entity{Geometry: Geometry{X: 100, Y: 100, Width: 150, Height: 150, FontSize: 20}}
	center := e.Geometry.Center()

	s := classicStrategy{}
	for i := 1; i <= 3; i++ {
		if got := s.OnSpawnTick(e, f); got != Continue {
			t.Fatalf("shrink %d expired early", i)
		}
	}

	if e.Geometry.Width != 60 || e.Geometry.Height != 60 || e.Geometry.FontSize != 5 {
		t.Errorf("after 3 shrinks geometry = %+v, expected 60x60 font 5", e.Geometry)
	}
	if c := e.Geometry.Center(); !approx(c.X, center.X) || !approx(c.Y, center.Y) {
		t.Errorf("shrinking moved the centre from %v to %v", center, c)
	}

	if got := s.OnSpawnTick(e, f); got != Expire {
		t.Error("4th shrink should expire the target (font reaches 0)")
	}
	if got := s.Update(e, f); got != Continue {
		t.Error("classic targets never expire from movement")
	}
}

func TestClassicSpawnInsideViewport(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 400, 300)
	f := testFrame(vp, &p, 9)

	for i := 0; i < 200; i++ {
		e := &Entity{Geometry: Geometry{Width: 150, Height: 150, FontSize: 20}}
		classicStrategy{}.Spawn(e, f)
		b := e.Geometry.Bounds()
		if b.X < 0 || b.Y < 0 || b.Right() > vp.W || b.Bottom() > vp.H {
			t.Fatalf("spawned outside viewport: %+v", b)
		}
	}
}

func TestBounceSpeedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		v := bounceSpeed(rng, 3, 1)
		if math.Abs(v) < 1 || math.Abs(v) > 3 {
			t.Fatalf("bounceSpeed() = %v, expected |v| in [1, 3]", v)
		}
	}
}

func TestBouncingRemovedOnEleventhBounce(t *testing.T) {
	p := DefaultPhysics()
	// Narrow and very tall: only the side walls are ever hit.
	vp := core.NewRect(0, 0, 100, 1e6)
	f := testFrame(vp, &p, 1)

	e := &Entity{
		Mode:     Bouncing,
		Geometry: Geometry{X: 45, Y: 1000, Width: 10, Height: 10, FontSize: 20},
		Velocity: core.Vec{X: 3, Y: 1},
	}

	s := bouncingStrategy{}
	bounces := 0
	lastSign := core.Sign(e.Velocity.X)
	for frame := 0; frame < 10000; frame++ {
		if s.Update(e, f) == Expire {
			bounces++
			break
		}
		if sign := core.Sign(e.Velocity.X); sign != lastSign {
			bounces++
			lastSign = sign
		}
	}

	if bounces != 11 {
		t.Errorf("target removed on bounce %d, expected 11", bounces)
	}
}

func TestBounceCapAndThreshold(t *testing.T) {
	p := DefaultPhysics()

	v := core.Vec{X: 4.8, Y: -1}
	if !bounce(&v, &p) {
		t.Error("4.8 * 1.05 reaches the cap and should trigger removal")
	}
	if v.X != 5 {
		t.Errorf("capped speed = %v, expected 5", v.X)
	}

	v = core.Vec{X: 4.7, Y: -1}
	if bounce(&v, &p) {
		t.Error("4.7 * 1.05 stays below the threshold")
	}
	if !approx(v.X, 4.7*1.05) {
		t.Errorf("speed = %v, expected %v", v.X, 4.7*1.05)
	}

	v = core.Vec{X: -3, Y: 2}
	if bounce(&v, &p) {
		t.Error("3 * 1.05 should not trigger removal")
	}
	if !approx(v.X, -3.15) || !approx(v.Y, 2.1) {
		t.Errorf("bounce should scale both axes: %+v", v)
	}
}

func TestBouncingPastWallMovingInward(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 400, 300)

	tests := []struct {
		name string
		geom Geometry
		vel  core.Vec
	}{
		{"left", Geometry{X: -40, Y: 100, Width: 50, Height: 50}, core.Vec{X: 1.5, Y: 0}},
		{"right", Geometry{X: 380, Y: 100, Width: 50, Height: 50}, core.Vec{X: -1.5, Y: 0}},
		{"top", Geometry{X: 100, Y: -30, Width: 50, Height: 50}, core.Vec{X: 0, Y: 2}},
		{"bottom", Geometry{X: 100, Y: 280, Width: 50, Height: 50}, core.Vec{X: 0, Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testFrame(vp, &p, 1)
			e := &Entity{Mode: Bouncing, Geometry: tt.geom, Velocity: tt.vel}
			var s bouncingStrategy

			for frame := 0; frame < 60; frame++ {
				if s.Update(e, f) == Expire {
					t.Fatalf("expired on frame %d while heading back inside", frame)
				}
			}
			moving := tt.vel.X
			got := e.Velocity.X
			if moving == 0 {
				moving, got = tt.vel.Y, e.Velocity.Y
			}
			if got != moving {
				t.Errorf("speed changed from %v to %v without hitting a wall", moving, got)
			}
		})
	}
}

func TestBouncingPastWallMovingOutwardBouncesOnce(t *testing.T) {
	p := DefaultPhysics()
	f := testFrame(core.NewRect(0, 0, 400, 300), &p, 1)

	e := &Entity{Mode: Bouncing, Geometry: Geometry{X: -40, Y: 100, Width: 50, Height: 50}, Velocity: core.Vec{X: -2, Y: 1}}
	var s bouncingStrategy
	for range 10 {
		s.Update(e, f)
	}
	if !approx(e.Velocity.X, 2*1.05) {
		t.Errorf("vx = %v, expected one bounce to %v", e.Velocity.X, 2*1.05)
	}
}

func TestBouncingTimeout(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 1280, 720)
	f := testFrame(vp, &p, 3)

	e := &Entity{Mode: Bouncing, SpawnedAt: time.Second, Geometry: Geometry{Width: 150, Height: 150}}
	bouncingStrategy{}.Spawn(e, f)

	timeout := e.Deadline - e.SpawnedAt
	if timeout < 5*time.Second || timeout >= 7*time.Second {
		t.Fatalf("timeout = %v, expected [5s, 7s)", timeout)
	}

	f.Now = e.Deadline - time.Millisecond
	if (bouncingStrategy{}).Update(e, f) == Expire {
		t.Error("expired before deadline")
	}
	f.Now = e.Deadline
	if (bouncingStrategy{}).Update(e, f) != Expire {
		t.Error("should expire at deadline")
	}
}

func TestBouncingSlowAxisSnaps(t *testing.T) {
	p := DefaultPhysics()
	f := testFrame(core.NewRect(0, 0, 1000, 1000), &p, 2)

	e := &Entity{Geometry: Geometry{X: 500, Y: 500, Width: 10, Height: 10}, Velocity: core.Vec{X: 0.2, Y: 0.8}}
	bouncingStrategy{}.Update(e, f)

	if math.Abs(e.Velocity.X) < 0.98 || math.Abs(e.Velocity.X) > 1 {
		t.Errorf("|vx| < 0.5 should snap to ±1 (then damp), got %v", e.Velocity.X)
	}
	if !approx(e.Velocity.Y, 0.8*0.99) {
		t.Errorf("vy in [0.5, 1) should be damped by 0.99, got %v", e.Velocity.Y)
	}
}

func TestShootingSpawnAndExit(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 1000, 500)
	f := testFrame(vp, &p, 4)

	for i := 0; i < 200; i++ {
		e := &Entity{Geometry: Geometry{Width: 150, Height: 150}}
		shootingStrategy{}.Spawn(e, f)
		if e.Geometry.X < 100 || e.Geometry.X > 300 || e.Geometry.Y < 50 || e.Geometry.Y > 150 {
			t.Fatalf("spawn at (%v, %v) outside the 10-30%% band", e.Geometry.X, e.Geometry.Y)
		}
		for _, v := range []float64{e.Velocity.X, e.Velocity.Y} {
			if v < 0.6 || v >= 3.6 {
				t.Fatalf("speed %v outside [0.6, 3.6)", v)
			}
		}
	}

	e := &Entity{Geometry: Geometry{X: 1195, Y: 100, Width: 150, Height: 150}, Velocity: core.Vec{X: 3, Y: 0}}
	if (shootingStrategy{}).Update(e, f) != Continue {
		t.Error("still inside the 20% margin, should continue")
	}
	e.Geometry.X = 1201
	if (shootingStrategy{}).Update(e, f) != Expire {
		t.Error("past the 20% margin, should expire")
	}
}

func TestGlidingCursorWalk(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 600, 400)
	f := testFrame(vp, &p, 6)

	s := NewStrategy(Gliding).(*glidingStrategy)
	prev := float64(glideCursorStart)
	for i := 0; i < 100; i++ {
		e := &Entity{Geometry: Geometry{Width: 150, Height: 150}}
		s.Spawn(e, f)

		if e.Geometry.Y != p.GlideTop {
			t.Fatalf("glider top = %v, expected %v", e.Geometry.Y, p.GlideTop)
		}
		if e.Geometry.X+glideRightGap > vp.W {
			t.Fatalf("glider x = %v too close to the right edge", e.Geometry.X)
		}
		if e.Geometry.X != glideCursorStart {
			step := e.Geometry.X - prev
			if step < 20 || step > 220 {
				t.Fatalf("cursor step = %v, expected [20, 220]", step)
			}
		}
		if e.Velocity.X != 0 || e.Velocity.Y < 2 || e.Velocity.Y >= 5 {
			t.Fatalf("glider velocity = %+v", e.Velocity)
		}
		prev = e.Geometry.X
	}
}

func TestGlidingFallsOffscreen(t *testing.T) {
	p := DefaultPhysics()
	vp := core.NewRect(0, 0, 600, 400)
	f := testFrame(vp, &p, 6)

	e := &Entity{Geometry: Geometry{X: 100, Y: 130, Width: 150, Height: 150}, Velocity: core.Vec{Y: 4}}
	frames := 0
	for (&glidingStrategy{}).Update(e, f) == Continue {
		frames++
		if frames > 1000 {
			t.Fatal("glider never left the screen")
		}
	}
	if e.Geometry.Y <= vp.H*1.2 {
		t.Errorf("expired at y = %v, expected beyond %v", e.Geometry.Y, vp.H*1.2)
	}
}

func TestOffscreen(t *testing.T) {
	vp := core.NewRect(0, 0, 100, 100)
	tests := []struct {
		name string
		box  core.Rect
		want bool
	}{
		{"inside", core.NewRect(10, 10, 10, 10), false},
		{"partly outside", core.NewRect(95, 95, 10, 10), false},
		{"in right margin", core.NewRect(110, 10, 10, 10), false},
		{"beyond right margin", core.NewRect(121, 10, 10, 10), true},
		{"beyond left margin", core.NewRect(-31, 10, 10, 10), true},
		{"beyond top margin", core.NewRect(10, -31, 10, 10), true},
		{"beyond bottom margin", core.NewRect(10, 121, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := offscreen(tc.box, vp, 0.2); got != tc.want {
				t.Errorf("offscreen(%+v) = %v, expected %v", tc.box, got, tc.want)
			}
		})
	}
}
