// Package help renders the key reference overlay shown by the demo.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Binding documents one or more keys.
type Binding struct {
	Keys string
	Help string
}

// Group is a titled block of bindings.
type Group struct {
	Title    string
	Bindings []Binding
}

// DefaultGroups describes the menubar and numeric selector keys.
func DefaultGroups() []Group {
	return []Group{
		{Title: "Menu", Bindings: []Binding{
			{Keys: "↑/k ↓/j", Help: "move"},
			{Keys: "enter →/l", Help: "run item, open submenu or selector"},
			{Keys: "esc ←/h", Help: "back"},
			{Keys: "/", Help: "filter the current level"},
		}},
		{Title: "Selector", Bindings: []Binding{
			{Keys: "type", Help: "search or enter a number"},
			{Keys: "↑ ↓ pgup pgdown", Help: "move"},
			{Keys: "enter", Help: "commit the highlighted value"},
			{Keys: "esc", Help: "clear search, then close"},
		}},
		{Title: "General", Bindings: []Binding{
			{Keys: "?", Help: "toggle this help"},
			{Keys: "q ctrl+c", Help: "quit"},
		}},
	}
}

// Model renders the key reference inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	groups   []Group
	width    int
	height   int

	frame lipgloss.Style
	title lipgloss.Style
	keys  lipgloss.Style
}

// New constructs a help overlay sized to the provided bounds.
func New(width, height int, groups []Group) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		groups:   groups,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		title: lipgloss.NewStyle().Bold(true).Underline(true),
		keys:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
	model.SetSize(width, height)
	return model
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the bindings inside a rounded frame.
func (m *Model) View() (string, *tea.Cursor) {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View()), nil
}

// SetSize configures the overlay dimensions and re-renders the content.
func (m *Model) SetSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.viewport.SetContent(m.render(innerWidth))
	m.viewport.SetYOffset(0)
}

func (m *Model) render(width int) string {
	keyWidth := 0
	for _, g := range m.groups {
		for _, b := range g.Bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Keys))
		}
	}
	var lines []string
	for i, g := range m.groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, m.title.Render(g.Title))
		for _, b := range g.Bindings {
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(b.Keys))
			line := m.keys.Render(b.Keys) + pad + "  " + b.Help
			lines = append(lines, ansi.Truncate(line, width, "…"))
		}
	}
	return strings.Join(lines, "\n")
}
