package engine

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		want  float64
	}{
		{"nothing resolved", Score{}, 0},
		{"three of four", Score{Hits: 3, Missed: 1}, 75},
		{"all hits", Score{Hits: 2}, 100},
		{"all missed", Score{Missed: 5}, 0},
		{"one of two", Score{Hits: 1, Missed: 1}, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.score.Accuracy(); got != tc.want {
				t.Errorf("Accuracy() = %.2f, expected %.2f", got, tc.want)
			}
		})
	}
}

func TestScoreTrackerHits(t *testing.T) {
	var tr ScoreTracker

	tr.Hit(false)
	tr.Hit(false)
	if got := tr.Score(); got != (Score{Points: 4, Hits: 2}) {
		t.Errorf("after two real hits: %+v", got)
	}

	tr.Hit(true)
	if got := tr.Score(); got.Points != 3 || got.Hits != 3 {
		t.Errorf("fake hit should cost a point and still count as a hit: %+v", got)
	}

	tr.Miss()
	if got := tr.Score(); got.Missed != 1 || got.Points != 3 {
		t.Errorf("miss should not change points: %+v", got)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	var tr ScoreTracker
	prev := tr.HighScore()

	steps := []func(){
		func() { tr.Hit(false) },
		func() { tr.Hit(false) },
		func() { tr.Hit(true) },
		func() { tr.Hit(true) },
		func() { tr.Hit(true) },
		func() { tr.Reset() },
		func() { tr.Hit(true) },
		func() { tr.Miss() },
	}
	for i, step := range steps {
		step()
		if tr.HighScore() < prev {
			t.Fatalf("step %d: high score dropped from %d to %d", i, prev, tr.HighScore())
		}
		prev = tr.HighScore()
	}

	if tr.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected 4", tr.HighScore())
	}
	if tr.Score().Points != -1 {
		t.Errorf("Points after reset and fake hit = %d, expected -1", tr.Score().Points)
	}
}
