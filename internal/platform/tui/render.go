package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorbang/internal/core"
)

type rgb [3]uint8

// styleCache holds one truecolor foreground style per distinct color.
// Particles fade through many shades, so styles are built on demand.
var styleCache = struct {
	sync.Mutex
	styles map[rgb]lipgloss.Style
}{styles: make(map[rgb]lipgloss.Style)}

func styleFor(c core.Color) lipgloss.Style {
	r, g, b, _ := c.Bytes()
	key := rgb{r, g, b}

	styleCache.Lock()
	defer styleCache.Unlock()
	if st, ok := styleCache.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)))
	styleCache.styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
