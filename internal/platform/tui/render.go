package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ski-runner/internal/core"
)

// colorStyles maps palette colors to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Palette() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

// hexStyles caches true-color styles by hex value. SSH sessions render
// concurrently, so access goes through hexMu.
var (
	hexStyles = map[string]lipgloss.Style{}
	hexMu     sync.RWMutex
)

func hexStyle(hex string) lipgloss.Style {
	hexMu.RLock()
	style, ok := hexStyles[hex]
	hexMu.RUnlock()
	if ok {
		return style
	}

	style = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	hexMu.Lock()
	hexStyles[hex] = style
	hexMu.Unlock()
	return style
}

func cellStyle(c core.Cell) lipgloss.Style {
	if c.Hex != "" {
		return hexStyle(c.Hex)
	}
	style, ok := colorStyles[c.Color]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

func sameStyle(a, b core.Cell) bool {
	return a.Color == b.Color && a.Hex == b.Hex
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
