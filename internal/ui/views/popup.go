package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// Center returns the top-left cell that centres block in a width x height screen
func Center(block string, width, height int) (int, int) {
	x := (width - lipgloss.Width(block)) / 2
	y := (height - lipgloss.Height(block)) / 2
	return max(x, 0), max(y, 0)
}

// RenderPopupOverlay renders a popup overlay on top of main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, width, height int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	x, y := Center(styledPopup, width, height)

	// Greyed base, padded to the full screen height
	baseLines := strings.Split(desaturateANSI(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = splice(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

// splice writes overlay into line starting at cell x, keeping what lies on
// either side of it
func splice(line, overlay string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(line, x+ansi.StringWidth(overlay), "")
	return left + overlay + right
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		if line != "" {
			lines[i] = grey.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
