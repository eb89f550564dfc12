package engine

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
)

// ContentPicker supplies target labels. *content.Pool implements it.
type ContentPicker interface {
	Pick(rng *rand.Rand) (content.Content, bool)
}

// followerTop is the follower's fixed height in world pixels.
const followerTop = 20

// Session aggregates the scheduler, the active targets and the score.
type Session struct {
	settings Settings
	picker   ContentPicker
	sink     Sink
	rng      *rand.Rand

	state     State
	scheduler Scheduler
	score     ScoreTracker
	strategy  MovementStrategy

	startedAt time.Time
	elapsed   time.Duration // Session time of the last processed tick

	nextID   uint64
	spawned  int
	entities []*Entity // Spawn order
	byID     map[uint64]*Entity

	follower FollowerMoved
}

// NewSession creates an idle session. A nil sink discards events.
func NewSession(settings Settings, picker ContentPicker, sink Sink, rng *rand.Rand) *Session {
	if sink == nil {
		sink = Discard
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		settings: settings,
		picker:   picker,
		sink:     sink,
		rng:      rng,
		byID:     make(map[uint64]*Entity),
	}
}

// Configure replaces the settings. Rejected while running.
func (s *Session) Configure(settings Settings) error {
	if s.state == Running {
		return ErrSessionRunning
	}
	s.settings = settings
	return nil
}

// SetMode changes the mode for the next start. Rejected while running.
func (s *Session) SetMode(m Mode) error {
	if s.state == Running {
		return ErrSessionRunning
	}
	s.settings.Mode = m
	return nil
}

// SetViewport resizes the play field. Active targets keep their positions.
func (s *Session) SetViewport(vp core.Rect) {
	s.settings.Viewport = vp
}

// Start begins a new round at now. The score is reset; the high score is kept.
func (s *Session) Start(now time.Time) error {
	if s.state == Running {
		return ErrSessionRunning
	}

	s.state = Running
	s.startedAt = now
	s.elapsed = 0
	s.spawned = 0
	s.entities = s.entities[:0]
	clear(s.byID)
	s.score.Reset()
	s.strategy = NewStrategy(s.settings.Mode)
	s.scheduler.Frequency, s.scheduler.Duration = s.settings.SpawnFrequency, s.settings.Duration
	s.scheduler.Reset()
	s.follower = FollowerMoved{}

	s.sink.Emit(SessionStarted{Mode: s.settings.Mode, Duration: s.settings.Duration})
	s.emitScore()
	return nil
}

// Stop ends a running session early. Remaining targets are cleared unscored.
func (s *Session) Stop() {
	if s.state == Running {
		s.end()
	}
}

// Tick advances the session to now: due spawn boundaries first, then
// movement, then collisions. Ends the session once the duration passes.
func (s *Session) Tick(now time.Time) {
	if s.state != Running {
		return
	}

	elapsed := now.Sub(s.startedAt)
	target := min(elapsed, s.settings.Duration)

	// Movement is integrated up to each boundary so a spawn sees the field
	// as it was at that instant.
	for _, at := range s.scheduler.Due(target) {
		s.advance(at)
		s.spawnTick(at)
	}
	s.advance(target)

	if s.scheduler.Expired(elapsed) {
		s.end()
	}
}

// advance integrates movement from s.elapsed to t in bounded steps.
func (s *Session) advance(t time.Duration) {
	dt := t - s.elapsed
	if dt <= 0 {
		return
	}

	frames := float64(dt) / float64(referenceFrame)
	steps := int(math.Ceil(frames / maxStep))
	stepDur := dt / time.Duration(steps)

	for i := 1; i <= steps; i++ {
		now := s.elapsed + stepDur*time.Duration(i)
		if i == steps {
			now = t
		}
		s.step(s.frame(now, frames/float64(steps)))
	}
	s.elapsed = t
	s.compact()
	s.updateFollower()
}

func (s *Session) frame(now time.Duration, step float64) Frame {
	return Frame{
		Now:      now,
		Step:     step,
		Viewport: s.settings.Viewport,
		Physics:  &s.settings.Physics,
		RNG:      s.rng,
	}
}

// step moves every target once, then resolves collisions.
func (s *Session) step(f Frame) {
	for _, e := range s.entities {
		if e.Active() && s.strategy.Update(e, f) == Expire {
			s.miss(e)
		}
	}

	if s.settings.Mode == Bouncing {
		ResolveCollisions(s.entities)
	}

	for _, e := range s.entities {
		if e.Active() && e.Velocity != (core.Vec{}) {
			s.sink.Emit(EntityMoved{Entity: e.View()})
		}
	}
}

// spawnTick handles one spawn boundary: the shrink tick for strategies that
// have one, then the new target.
func (s *Session) spawnTick(at time.Duration) {
	f := s.frame(at, 0)

	if ticker, ok := s.strategy.(spawnTicker); ok {
		for _, e := range s.entities {
			if !e.Active() {
				continue
			}
			if ticker.OnSpawnTick(e, f) == Expire {
				s.miss(e)
				continue
			}
			s.sink.Emit(EntityMoved{Entity: e.View()})
		}
		s.compact()
	}

	c, ok := s.picker.Pick(s.rng)
	if !ok {
		return
	}

	s.nextID++
	e := &Entity{
		ID:      s.nextID,
		Content: c,
		Geometry: Geometry{
			Width:    s.settings.InitialSize,
			Height:   s.settings.InitialSize,
			FontSize: s.settings.InitialFontSize,
		},
		Mode:      s.settings.Mode,
		SpawnedAt: at,
	}
	s.strategy.Spawn(e, f)

	s.entities = append(s.entities, e)
	s.byID[e.ID] = e
	s.spawned++
	s.sink.Emit(EntityCreated{Entity: e.View()})
	s.updateFollower()
}

// Click resolves the target as a hit. Unknown, resolved or late clicks are
// ignored and return false.
func (s *Session) Click(id uint64) bool {
	if s.state != Running {
		return false
	}
	e, ok := s.byID[id]
	if !ok || !e.resolve() {
		return false
	}

	s.score.Hit(e.Content.IsFake)
	effect := EffectHit
	if e.Content.IsFake {
		effect = EffectFakeHit
	}
	s.remove(e, ResolvedHit, effect)
	s.compact()
	s.updateFollower()
	s.emitScore()
	return true
}

// ClickAt hit-tests a world point and clicks the topmost target there.
func (s *Session) ClickAt(x, y float64) (uint64, bool) {
	id, ok := s.EntityAt(x, y)
	if !ok {
		return 0, false
	}
	return id, s.Click(id)
}

// EntityAt returns the topmost (most recently spawned) active target
// containing the point.
func (s *Session) EntityAt(x, y float64) (uint64, bool) {
	p := core.Vec{X: x, Y: y}
	for i := len(s.entities) - 1; i >= 0; i-- {
		e := s.entities[i]
		if e.Active() && e.Geometry.Contains(p) {
			return e.ID, true
		}
	}
	return 0, false
}

func (s *Session) miss(e *Entity) {
	if !e.resolve() {
		return
	}
	s.score.Miss()
	s.remove(e, ResolvedMiss, EffectMiss)
	s.emitScore()
}

func (s *Session) remove(e *Entity, reason Resolution, effect Effect) {
	delete(s.byID, e.ID)
	c := e.Geometry.Center()
	s.sink.Emit(EffectRequested{Effect: effect, ID: e.ID, X: c.X, Y: c.Y})
	s.sink.Emit(EntityRemoved{ID: e.ID, Reason: reason})
}

// compact drops resolved targets from the spawn-ordered list.
func (s *Session) compact() {
	s.entities = slices.DeleteFunc(s.entities, func(e *Entity) bool {
		return !e.Active()
	})
}

// updateFollower aligns the follower with the newest gliding target.
func (s *Session) updateFollower() {
	if s.settings.Mode != Gliding {
		return
	}

	next := FollowerMoved{Y: followerTop}
	for i := len(s.entities) - 1; i >= 0; i-- {
		if e := s.entities[i]; e.Active() {
			next.X = e.Geometry.X
			next.Visible = true
			break
		}
	}
	if !next.Visible {
		next.X = s.follower.X
	}
	if next != s.follower {
		s.follower = next
		s.sink.Emit(next)
	}
}

// end stops all updates, clears the field without scoring and reports.
func (s *Session) end() {
	s.state = Ended
	for _, e := range s.entities {
		if e.resolve() {
			s.sink.Emit(EntityRemoved{ID: e.ID, Reason: ResolvedCleared})
		}
	}
	s.entities = s.entities[:0]
	clear(s.byID)

	if s.follower.Visible {
		s.follower.Visible = false
		s.sink.Emit(s.follower)
	}

	s.score.reconcile()
	s.sink.Emit(SessionEnded{Score: s.score.Score(), HighScore: s.score.HighScore(), Spawned: s.spawned})
}

func (s *Session) emitScore() {
	s.sink.Emit(ScoreChanged{Score: s.score.Score(), HighScore: s.score.HighScore()})
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current tally.
func (s *Session) Score() Score { return s.score.Score() }

// HighScore returns the best points value this session object has seen.
func (s *Session) HighScore() int { return s.score.HighScore() }

// Settings returns the current settings.
func (s *Session) Settings() Settings { return s.settings }

// Spawned returns how many targets the current round created.
func (s *Session) Spawned() int { return s.spawned }

// SpawnAttempts returns how many spawn boundaries the current round passed.
func (s *Session) SpawnAttempts() int { return s.scheduler.Fired() }

// SpawnBoundaries returns how many spawn boundaries a full round has.
func (s *Session) SpawnBoundaries() int { return s.scheduler.Total() }

// Elapsed returns the session time of the last tick.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Remaining returns the time left in the round.
func (s *Session) Remaining() time.Duration {
	if s.state != Running {
		return 0
	}
	return max(0, s.settings.Duration-s.elapsed)
}

// Follower returns the follower state in gliding mode.
func (s *Session) Follower() FollowerMoved { return s.follower }

// Entities returns snapshots of the active targets in spawn order.
func (s *Session) Entities() []EntityView {
	views := make([]EntityView, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Active() {
			views = append(views, e.View())
		}
	}
	return views
}
