package tui

import (
	"fmt"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/core"
	"github.com/vovakirdan/tunehunt/internal/engine"
)

// modeInfo describes a mode in the picker.
var modeInfo = map[engine.Mode]string{
	engine.Classic:  "targets sit still and shrink",
	engine.Bouncing: "targets bounce off walls and each other",
	engine.Shooting: "targets fly across the field",
	engine.Gliding:  "targets fall from the top",
}

// modeColors gives every mode its own target color.
var modeColors = map[engine.Mode]core.Color{
	engine.Classic:  core.ColorCyan,
	engine.Bouncing: core.ColorMagenta,
	engine.Shooting: core.ColorOrange,
	engine.Gliding:  core.ColorGreen,
}

// drawMenu renders the between-rounds screen: title, last result and the
// mode picker with the selected mode under the cursor.
func drawMenu(s *core.Screen, top int, selected engine.Mode, variant content.Variant, last *engine.Score, high int) {
	y := top + 1
	s.DrawTextCentered(y, "T U N E H U N T")
	y += 2
	s.DrawTextCentered(y, "Click the real artists and songs. Leave the fakes alone.")
	y += 2

	if last != nil {
		s.DrawTextCentered(y, fmt.Sprintf("Round over: %d points, %d hits, %d missed, %.1f%% accuracy",
			last.Points, last.Hits, last.Missed, last.Accuracy()))
		y++
		s.DrawTextCentered(y, fmt.Sprintf("High score: %d", high))
		y += 2
	}

	s.DrawTextCentered(y, "Select a mode")
	y += 2

	for _, m := range engine.Modes {
		cursor := "  "
		c := core.ColorGray
		if m == selected {
			cursor = "> "
			c = modeColors[m]
		}
		line := fmt.Sprintf("%s%-9s %s", cursor, m, modeInfo[m])
		x := (s.Width() - len(line)) / 2
		s.DrawTextColored(x, y, line, c)
		y++
	}

	y++
	s.DrawTextCentered(y, fmt.Sprintf("Theme: %s", variant))
}
