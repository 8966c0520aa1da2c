package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the menu components.
type Theme struct {
	Menu    MenuTheme
	Numeric NumericTheme
	Panel   PanelTheme
	Tooltip TooltipTheme
}

// MenuTheme styles menubar rows.
type MenuTheme struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Subtitle lipgloss.Style
	Shortcut lipgloss.Style
	Opener   lipgloss.Style
	More     lipgloss.Style
	Filter   lipgloss.Style
	Loading  lipgloss.Style
}

// NumericTheme styles the numeric selector rows.
type NumericTheme struct {
	Title     lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Default   lipgloss.Style
	FreeEntry lipgloss.Style
	Empty     lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// TooltipTheme styles the tooltip box under the highlighted item.
type TooltipTheme struct {
	Frame lipgloss.Style
	Text  lipgloss.Style
}

const (
	accentHex = "#FF5FD7"
	baseHex   = "#1C1C1C"
)

// Accent blends the accent colour toward the base background by t in
// [0, 1]; t=0 is the pure accent.
func Accent(t float64) colorful.Color {
	accent, err := colorful.Hex(accentHex)
	if err != nil {
		return colorful.Color{R: 1, G: 0.37, B: 0.84}
	}
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return accent
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return accent.BlendLab(base, t).Clamped()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	selectedBg := lipgloss.Color(Accent(0.55).Hex())
	accent := lipgloss.Color(Accent(0).Hex())
	muted := lipgloss.Color("244")

	selected := lipgloss.NewStyle().
		Background(selectedBg).
		Foreground(lipgloss.Color("231")).
		Bold(true)

	return Theme{
		Menu: MenuTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
			Section:  lipgloss.NewStyle().Foreground(muted).Underline(true),
			Item:     lipgloss.NewStyle(),
			Selected: selected,
			Subtitle: lipgloss.NewStyle().Foreground(muted),
			Shortcut: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Opener:   lipgloss.NewStyle().Foreground(accent),
			More:     lipgloss.NewStyle().Italic(true).Foreground(muted),
			Filter:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Loading:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		},
		Numeric: NumericTheme{
			Title:     lipgloss.NewStyle().Bold(true),
			Row:       lipgloss.NewStyle(),
			Selected:  selected,
			Default:   lipgloss.NewStyle().Bold(true),
			FreeEntry: lipgloss.NewStyle().Italic(true).Foreground(accent),
			Empty:     lipgloss.NewStyle().Italic(true).Foreground(muted),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Tooltip: TooltipTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Text: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},
	}
}
