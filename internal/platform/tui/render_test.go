package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '●', core.ColorYellow)
	s.SetColored(4, 1, '▓', core.ColorRed)

	got := RenderScreen(s)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "ab ● " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "    ▓" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	style := styleFor(core.Color(250))
	if style.GetForeground() != colorStyles[core.ColorDefault].GetForeground() {
		t.Error("unknown colors should use the default style")
	}
}
