// Package numeric renders a numeric value selector as a Bubble Tea
// component: a search prompt above the admitted values, with an optional
// free entry for typed numbers.
package numeric

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	core "tableflip.dev/menukit/pkg/numeric"
	"tableflip.dev/menukit/pkg/tui/events"
	"tableflip.dev/menukit/pkg/tui/theme"
	"tableflip.dev/menukit/pkg/tui/ui"
)

const (
	defaultMaxRows = 8
	searchPrefix   = "/ "
)

// Options configures the component.
type Options struct {
	ID          events.ComponentID
	Title       string
	Placeholder string
	// MaxRows caps the visible rows; zero means 8.
	MaxRows  int
	Selector core.Options
	Theme    *theme.Theme
}

var _ ui.Component = (*Model)(nil)

// Model is the interactive numeric selector.
type Model struct {
	id    events.ComponentID
	title string

	sel   *core.Selector
	input textinput.Model

	cursor  int
	offset  int
	maxRows int

	width   int
	height  int
	focused bool

	theme theme.Theme
}

// New builds the component. It fails when the range in opts cannot produce
// a step.
func New(opts Options) (*Model, error) {
	sel, err := core.NewSelector(opts.Selector)
	if err != nil {
		return nil, err
	}
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = opts.Placeholder
	if input.Placeholder == "" {
		input.Placeholder = "Search or type a number"
	}

	id := opts.ID
	if id == "" {
		id = events.ComponentID("numeric")
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	return &Model{
		id:      id,
		title:   opts.Title,
		sel:     sel,
		input:   input,
		maxRows: maxRows,
		theme:   th,
	}, nil
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Selector exposes the underlying selector state.
func (m *Model) Selector() *core.Selector { return m.sel }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize bounds the rendered panel.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 10)
	m.height = max(height, 4)
	m.input.SetWidth(max(1, m.width-len(searchPrefix)-4))
	m.clampWindow()
}

// SetOptions replaces the selector configuration and clears the search.
func (m *Model) SetOptions(opts core.Options) error {
	if err := m.sel.SetOptions(opts); err != nil {
		return err
	}
	m.input.SetValue("")
	m.cursor = 0
	m.offset = 0
	return nil
}

// SetSearchText replaces the prompt text and refilters.
func (m *Model) SetSearchText(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.refilter()
}

// Focus starts accepting input.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return tea.Batch(m.input.Focus(), events.FocusCmd(m.id))
}

// Blur stops accepting input.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	m.input.Blur()
	return events.BlurCmd(m.id)
}

// Focused reports whether the component accepts input.
func (m *Model) Focused() bool { return m.focused }

// Cursor returns the highlighted row index.
func (m *Model) Cursor() int { return m.cursor }

// Rows returns the rows currently offered.
func (m *Model) Rows() []core.Row { return m.sel.Rows() }

// Update handles navigation, commit and search input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "up", "ctrl+p", "shift+tab":
		m.move(-1)
		return m, nil
	case "down", "ctrl+n", "tab":
		m.move(1)
		return m, nil
	case "pgup":
		m.move(-m.maxRows)
		return m, nil
	case "pgdown":
		m.move(m.maxRows)
		return m, nil
	case "enter":
		return m, m.commit()
	case "esc":
		if m.input.Value() != "" {
			m.SetSearchText("")
			return m, nil
		}
		return m, events.ValueCancelCmd(m.id)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) refilter() {
	m.sel.SetSearchText(m.input.Value())
	m.cursor = 0
	m.offset = 0
}

func (m *Model) move(delta int) {
	rows := m.sel.Rows()
	if len(rows) == 0 {
		return
	}
	m.cursor = max(0, min(len(rows)-1, m.cursor+delta))
	m.clampWindow()
}

func (m *Model) clampWindow() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if limit := m.visibleRows(); m.cursor >= m.offset+limit {
		m.offset = m.cursor - limit + 1
	}
}

func (m *Model) visibleRows() int {
	limit := m.maxRows
	if m.height > 0 {
		// border, title and prompt take four lines
		limit = min(limit, max(1, m.height-4))
	}
	return limit
}

func (m *Model) commit() tea.Cmd {
	rows := m.sel.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	row := rows[m.cursor]
	if !m.sel.Select(row.Value) {
		return nil
	}
	return events.ValueSelectCmd(m.id, row.Value, row.Label, row.FreeEntry)
}

// View renders the framed panel and places the terminal cursor in the
// prompt while focused.
func (m *Model) View() (string, *tea.Cursor) {
	st := m.theme.Numeric
	lines := make([]string, 0, m.maxRows+2)
	title := m.title
	if title == "" {
		title = "Select a value"
	}
	lines = append(lines, st.Title.Render(title))
	lines = append(lines, m.theme.Menu.Filter.Render(searchPrefix)+m.input.View())

	rows := m.sel.Rows()
	if len(rows) == 0 {
		lines = append(lines, st.Empty.Render("No values"))
	}
	end := min(len(rows), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i == m.cursor))
	}

	frame := m.theme.Panel.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(lines, "\n"))

	if !m.focused {
		return view, nil
	}
	c := m.input.Cursor()
	if c == nil {
		return view, nil
	}
	pos := *c
	pos.X += frame.GetBorderLeftSize() + frame.GetPaddingLeft() + len(searchPrefix)
	pos.Y = frame.GetBorderTopSize() + frame.GetPaddingTop() + 1
	return view, &pos
}

func (m *Model) renderRow(row core.Row, selected bool) string {
	st := m.theme.Numeric
	style := st.Row
	switch {
	case row.FreeEntry:
		style = st.FreeEntry
	case row.IsDefault:
		style = st.Default
	}
	if selected {
		style = st.Selected
	}
	marker := "  "
	if selected {
		marker = "> "
	}
	return marker + style.Render(row.Label)
}
