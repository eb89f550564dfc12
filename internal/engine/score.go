package engine

// Score is the running tally of a session.
type Score struct {
	Points int
	Hits   int
	Missed int
}

// Accuracy returns hits/(hits+missed) as a percentage, 0 when nothing resolved.
func (s Score) Accuracy() float64 {
	total := s.Hits + s.Missed
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Points awarded per click.
const (
	realHitPoints = 2
	fakeHitPoints = -1
)

// ScoreTracker keeps the session score and the process-lifetime high score.
type ScoreTracker struct {
	score Score
	high  int
}

// Hit records a click. Every click counts as a hit; fakes cost a point.
func (t *ScoreTracker) Hit(isFake bool) {
	if isFake {
		t.score.Points += fakeHitPoints
	} else {
		t.score.Points += realHitPoints
	}
	t.score.Hits++
	t.reconcile()
}

// Miss records an expired target.
func (t *ScoreTracker) Miss() {
	t.score.Missed++
	t.reconcile()
}

// Reset clears the session score. The high score is kept.
func (t *ScoreTracker) Reset() {
	t.score = Score{}
}

// Score returns the current tally.
func (t *ScoreTracker) Score() Score {
	return t.score
}

// HighScore returns the best points value seen so far.
func (t *ScoreTracker) HighScore() int {
	return t.high
}

func (t *ScoreTracker) reconcile() {
	if t.score.Points > t.high {
		t.high = t.score.Points
	}
}
