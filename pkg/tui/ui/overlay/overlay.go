// Package overlay draws floating panels (tooltips, the numeric selector)
// over an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// AlignStart pins a panel to the left or top edge. lipgloss.Left and
// lipgloss.Top are zero, which Placement treats as centred.
const AlignStart = lipgloss.Position(-1)

// Placement positions a panel relative to the background.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Anchor returns a placement that puts the panel's top-left corner at
// column x, row y.
func Anchor(x, y int) Placement {
	return Placement{Horizontal: AlignStart, Vertical: AlignStart, MarginX: x, MarginY: y}
}

// Compose draws panel on top of background. The background is padded or
// cut to width x height; cells outside the panel are kept.
func Compose(background string, width, height int, panel string, p Placement) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := fit(background, width, height)
	if panel == "" {
		return strings.Join(canvas, "\n")
	}
	lines := strings.Split(panel, "\n")
	pw := 0
	for _, l := range lines {
		pw = max(pw, ansi.StringWidth(l))
	}
	pw = min(pw, width)
	ph := min(len(lines), height)

	x := offset(p.Horizontal, p.MarginX, width, pw)
	y := offset(p.Vertical, p.MarginY, height, ph)

	for i := 0; i < ph; i++ {
		row := canvas[y+i]
		left := ansi.Truncate(row, x, "")
		right := ansi.Cut(row, x+pw, width)
		canvas[y+i] = left + pad(ansi.Truncate(lines[i], pw, ""), pw) + right
	}
	return strings.Join(canvas, "\n")
}

func offset(pos lipgloss.Position, margin, outer, inner int) int {
	var v int
	switch {
	case pos == AlignStart:
		v = margin
	case pos == lipgloss.Right || pos == lipgloss.Bottom:
		v = outer - inner - margin
	default:
		v = (outer - inner) / 2
	}
	return max(0, min(v, outer-inner))
}

func fit(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
