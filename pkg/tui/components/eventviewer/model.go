// Package eventviewer keeps a scrollable log of menu activity: HUD
// confirmations, failure toasts, selections and navigation.
package eventviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/menukit/pkg/tui/events"
)

// Level is the severity of an entry.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Entry is one logged line.
type Entry struct {
	Timestamp time.Time
	Source    string
	Summary   string
	Detail    string
	Level     Level
}

// Styles controls the log's presentation.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Timestamp lipgloss.Style
	Source    lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD787")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Model renders the newest entries first.
type Model struct {
	viewport viewport.Model
	entries  []Entry
	limit    int

	// Verbose also records key presses and resizes.
	Verbose bool

	width  int
	height int
	styles Styles
	now    func() time.Time
}

// NewModel keeps at most limit entries; zero or less means 200.
func NewModel(limit int) *Model {
	if limit <= 0 {
		limit = 200
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		limit:    limit,
		styles:   DefaultStyles(),
		now:      time.Now,
	}
}

// SetSize resizes the frame.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 4)
	m.height = max(height, 3)
	m.viewport.SetWidth(max(1, m.width-2))
	// border plus header
	m.viewport.SetHeight(max(1, m.height-3))
	m.render()
}

// View renders the framed log.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left, m.styles.Header.Render("Activity"), m.viewport.View())
	return m.styles.Frame.Width(m.width).Height(m.height).Render(body)
}

// Entries returns the log, newest first.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Latest returns the newest entry.
func (m *Model) Latest() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[0], true
}

// Record turns msg into an entry when it is worth logging and reports
// whether it did.
func (m *Model) Record(msg tea.Msg) bool {
	entry, ok := m.classify(msg)
	if !ok {
		return false
	}
	m.Append(entry)
	return true
}

func (m *Model) classify(msg tea.Msg) (Entry, bool) {
	e := Entry{Source: "menukit", Level: LevelInfo}
	if id, ok := events.Source(msg); ok {
		e.Source = string(id)
	}
	switch v := msg.(type) {
	case events.HUDMsg:
		e.Summary, e.Level = v.Text, LevelSuccess
	case events.ToastMsg:
		e.Summary, e.Detail, e.Level = v.Title, v.Message, LevelError
	case events.ActionResultMsg:
		e.Summary = v.Title
		if v.Err != nil {
			e.Detail, e.Level = v.Err.Error(), LevelError
		}
	case events.ValueSelectMsg:
		e.Summary, e.Detail = "selected "+v.Label, v.Describe()
	case events.ValueCancelMsg:
		e.Summary = "cancelled"
	case events.MenuNavigateMsg:
		e.Summary, e.Detail = "open "+v.Title, v.Describe()
	case tea.KeyPressMsg:
		if !m.Verbose {
			return Entry{}, false
		}
		e.Summary, e.Source = fmt.Sprintf("key %q", v.String()), "tea"
	case tea.WindowSizeMsg:
		if !m.Verbose {
			return Entry{}, false
		}
		e.Summary, e.Source = fmt.Sprintf("size %dx%d", v.Width, v.Height), "tea"
	default:
		return Entry{}, false
	}
	return e, true
}

// Append adds entry at the top of the log.
func (m *Model) Append(entry Entry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = m.now()
	}
	m.entries = append([]Entry{entry}, m.entries...)
	if len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
	m.render()
	m.viewport.SetYOffset(0)
}

// Clear drops every entry.
func (m *Model) Clear() {
	m.entries = nil
	m.render()
}

func (m *Model) render() {
	if len(m.entries) == 0 {
		m.viewport.SetContent(m.styles.Timestamp.Render("Nothing yet"))
		return
	}
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, m.line(e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) line(e Entry) string {
	text := e.Summary
	if e.Detail != "" {
		text += ": " + e.Detail
	}
	style := m.styles.Info
	switch e.Level {
	case LevelSuccess:
		style = m.styles.Success
	case LevelError:
		style = m.styles.Error
	}
	return fmt.Sprintf("%s %s %s",
		m.styles.Timestamp.Render(e.Timestamp.Format("15:04:05")),
		m.styles.Source.Render("["+e.Source+"]"),
		style.Render(text))
}
