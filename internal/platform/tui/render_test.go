package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/colorbang/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 1, "cd")

	got := RenderScreen(s)
	want := "ab  \n  cd"
	if got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	a := styleFor(core.RGB(1, 0, 0))
	b := styleFor(core.RGBA(1, 0, 0, 0.5))
	if a.GetForeground() != b.GetForeground() {
		t.Error("colors with equal RGB should share a style")
	}
	if fg, ok := a.GetForeground().(lipgloss.Color); !ok || !strings.EqualFold(string(fg), "#ff0000") {
		t.Errorf("foreground = %v, want #ff0000", a.GetForeground())
	}
}
