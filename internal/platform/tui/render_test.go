package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tunehunt/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "hello")
	s.DrawTextColored(6, 0, "red", core.ColorRed)
	s.DrawTextColored(0, 1, "gray", core.ColorGray)

	out := RenderScreen(s)
	for _, want := range []string{"hello", "red", "gray"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("expected 1 newline, got %d", n)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Yesterday", 20, "Yesterday"},
		{"Yesterday", 9, "Yesterday"},
		{"Yesterday", 5, "Yest."},
		{"Yesterday", 1, "."},
		{"Yesterday", 0, ""},
		{"Bublé", 4, "Bub."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.expected)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}

func TestDefaultKeyMapHelp(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	n := 0
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	if n != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", n)
	}
}
