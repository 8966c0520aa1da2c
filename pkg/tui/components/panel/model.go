// Package panel renders a framed block of labelled values.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/menukit/pkg/tui/theme"
)

// Field is one labelled line.
type Field struct {
	Label string
	Value string
}

// Model renders a title above aligned fields.
type Model struct {
	title  string
	fields []Field

	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns a panel styled by th.
func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
	}
}

// SetContent replaces the title and fields.
func (m *Model) SetContent(title string, fields []Field) {
	m.title = title
	m.fields = fields
}

// Set updates the value of label, appending the field when missing.
func (m *Model) Set(label, value string) {
	for i := range m.fields {
		if m.fields[i].Label == label {
			m.fields[i].Value = value
			return
		}
	}
	m.fields = append(m.fields, Field{Label: label, Value: value})
}

// Fields returns the current fields.
func (m Model) Fields() []Field { return m.fields }

// View returns the rendered panel and its height in lines.
func (m Model) View() (string, int) {
	labelWidth := 0
	for _, f := range m.fields {
		labelWidth = max(labelWidth, ansi.StringWidth(f.Label))
	}
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, f := range m.fields {
		pad := strings.Repeat(" ", labelWidth-ansi.StringWidth(f.Label))
		content = append(content, m.bodyStyle.Render(f.Label+pad+"  "+f.Value))
	}
	view := m.frameStyle.Render(strings.Join(content, "\n"))
	return view, strings.Count(view, "\n") + 1
}
