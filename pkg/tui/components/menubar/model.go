// Package menubar renders a menu.Root as a navigable dropdown with nested
// submenus, fuzzy filtering, tooltips and numeric selector panels.
package menubar

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/menukit/pkg/tui/components/numeric"
	"tableflip.dev/menukit/pkg/tui/events"
	"tableflip.dev/menukit/pkg/tui/menu"
	"tableflip.dev/menukit/pkg/tui/theme"
	"tableflip.dev/menukit/pkg/tui/ui"
	"tableflip.dev/menukit/pkg/tui/ui/overlay"
)

const (
	defaultWidth   = 60
	defaultMaxRows = 12
)

// Options configures the menubar.
type Options struct {
	ID    events.ComponentID
	Root  *menu.Root
	Theme *theme.Theme
	// MaxRows caps the rows shown per level; zero means 12.
	MaxRows int
	// Context is handed to item actions. Nil means context.Background.
	Context context.Context
}

type level struct {
	title  string
	rows   []menu.Row
	cursor int
	offset int
}

var _ ui.Component = (*Model)(nil)

// Model is the menubar component.
type Model struct {
	id   events.ComponentID
	root *menu.Root
	ctx  context.Context

	stack   []level
	visible []menu.Row

	filter    textinput.Model
	filtering bool

	panel *numeric.Model

	width   int
	height  int
	maxRows int
	focused bool

	theme theme.Theme
}

// New builds a menubar showing opts.Root.
func New(opts Options) *Model {
	id := opts.ID
	if id == "" {
		id = events.ComponentID("menubar")
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	filter := textinput.New()
	filter.Prompt = ""
	filter.Placeholder = "filter"

	m := &Model{
		id:      id,
		ctx:     ctx,
		filter:  filter,
		width:   defaultWidth,
		maxRows: maxRows,
		theme:   th,
	}
	m.SetRoot(opts.Root)
	return m
}

// ID exposes the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// SetRoot replaces the menu and returns to the top level.
func (m *Model) SetRoot(root *menu.Root) {
	if root == nil {
		root = &menu.Root{}
	}
	m.root = root
	m.panel = nil
	m.stack = []level{{title: root.Title, rows: menu.Flatten(root.Children)}}
	m.clearFilter()
}

// SetSize bounds the rendered menu.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 20)
	m.height = max(height, 5)
	m.filter.SetWidth(max(1, m.width-4))
	if m.panel != nil {
		m.panel.SetSize(m.panelWidth(), m.height)
	}
	m.clampWindow()
}

// Focus starts accepting keys.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	if m.panel != nil {
		return m.panel.Focus()
	}
	return events.FocusCmd(m.id)
}

// Blur stops accepting keys.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	m.filter.Blur()
	if m.panel != nil {
		m.panel.Blur()
	}
	return events.BlurCmd(m.id)
}

// Depth is the number of open submenus.
func (m *Model) Depth() int { return len(m.stack) - 1 }

// Breadcrumb joins the titles of the open levels.
func (m *Model) Breadcrumb() string {
	titles := make([]string, 0, len(m.stack))
	for _, l := range m.stack {
		titles = append(titles, l.title)
	}
	return menu.JoinNonEmpty(titles, " › ")
}

// Rows returns the rows of the current level after filtering.
func (m *Model) Rows() []menu.Row { return m.visible }

// Selected returns the highlighted row.
func (m *Model) Selected() (menu.Row, bool) {
	cur := m.current()
	if cur.cursor < 0 || cur.cursor >= len(m.visible) {
		return menu.Row{}, false
	}
	return m.visible[cur.cursor], true
}

// Filtering reports whether the filter prompt has the keys.
func (m *Model) Filtering() bool { return m.filtering }

// PanelOpen reports whether a numeric selector is showing.
func (m *Model) PanelOpen() bool { return m.panel != nil }

// Panel returns the open numeric selector, if any.
func (m *Model) Panel() *numeric.Model { return m.panel }

func (m *Model) current() *level { return &m.stack[len(m.stack)-1] }

func (m *Model) panelID() events.ComponentID { return m.id + "/numeric" }

func (m *Model) panelWidth() int { return max(20, min(m.width-4, 40)) }

// Update routes keys to the open panel or the menu itself.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case events.ValueSelectMsg:
		if msg.Component == m.panelID() {
			return m, m.closePanel()
		}
		return m, nil
	case events.ValueCancelMsg:
		if msg.Component == m.panelID() {
			return m, m.closePanel()
		}
		return m, nil
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		if m.panel != nil {
			_, cmd := m.panel.Update(msg)
			return m, cmd
		}
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k", "ctrl+p":
		m.move(-1)
	case "down", "j", "ctrl+n":
		m.move(1)
	case "home", "g":
		m.current().cursor = menu.FirstSelectable(m.visible, 0)
		m.clampWindow()
	case "enter", "right", "l", "space":
		return m.activate()
	case "left", "h", "backspace":
		return m.pop()
	case "esc":
		return m.pop()
	case "/":
		m.filtering = true
		return m.filter.Focus()
	}
	return nil
}

func (m *Model) updateFilter(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.clearFilter()
		return nil
	case "enter":
		return m.activate()
	case "up", "ctrl+p":
		m.move(-1)
		return nil
	case "down", "ctrl+n":
		m.move(1)
		return nil
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refresh()
	}
	return cmd
}

func (m *Model) clearFilter() {
	m.filtering = false
	m.filter.SetValue("")
	m.filter.Blur()
	m.refresh()
}

func (m *Model) refresh() {
	cur := m.current()
	m.visible = menu.Filter(cur.rows, strings.TrimSpace(m.filter.Value()))
	cur.cursor = menu.FirstSelectable(m.visible, 0)
	cur.offset = 0
	m.clampWindow()
}

func (m *Model) move(delta int) {
	cur := m.current()
	if cur.cursor < 0 {
		return
	}
	cur.cursor = menu.NextSelectable(m.visible, cur.cursor, delta)
	m.clampWindow()
}

func (m *Model) clampWindow() {
	cur := m.current()
	limit := m.visibleRows()
	if cur.cursor >= 0 {
		if cur.cursor < cur.offset {
			cur.offset = cur.cursor
		}
		if cur.cursor >= cur.offset+limit {
			cur.offset = cur.cursor - limit + 1
		}
	}
	cur.offset = max(0, min(cur.offset, len(m.visible)-limit))
}

func (m *Model) visibleRows() int {
	limit := m.maxRows
	if m.height > 0 {
		// title, filter line and tooltip room
		limit = min(limit, max(1, m.height-4))
	}
	return limit
}

func (m *Model) activate() tea.Cmd {
	if m.root.RootOnly() && m.Depth() == 0 {
		return m.run(m.root.Title, m.root.OnAction)
	}
	row, ok := m.Selected()
	if !ok {
		return nil
	}
	switch row.Kind {
	case menu.RowItem, menu.RowMore:
		return m.run(row.Item.Title, row.Item.OnAction)
	case menu.RowSubmenu:
		return m.push(row.Label, row.Submenu.Children)
	case menu.RowNumeric:
		return m.openPanel(row.Numeric)
	}
	return nil
}

func (m *Model) run(title string, action menu.Action) tea.Cmd {
	if action == nil {
		return nil
	}
	ctx := m.ctx
	id := m.id
	return func() tea.Msg {
		return events.ActionResultMsg{Component: id, Title: title, Err: action(ctx)}
	}
}

func (m *Model) push(title string, children []menu.Entry) tea.Cmd {
	m.stack = append(m.stack, level{title: title, rows: menu.Flatten(children)})
	m.clearFilter()
	return events.MenuNavigateCmd(m.id, title, m.Depth())
}

func (m *Model) pop() tea.Cmd {
	if len(m.stack) == 1 {
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	m.clearFilter()
	return events.MenuNavigateCmd(m.id, m.current().title, m.Depth())
}

func (m *Model) openPanel(entry *menu.Numeric) tea.Cmd {
	panel, err := numeric.New(numeric.Options{
		ID:       m.panelID(),
		Title:    entry.Title,
		Selector: entry.Options,
		Theme:    &m.theme,
	})
	if err != nil {
		return func() tea.Msg {
			return events.ActionResultMsg{Component: m.id, Title: entry.Title, Err: err}
		}
	}
	panel.SetSize(m.panelWidth(), m.height)
	m.panel = panel
	return panel.Focus()
}

func (m *Model) closePanel() tea.Cmd {
	if m.panel == nil {
		return nil
	}
	cmd := m.panel.Blur()
	m.panel = nil
	return cmd
}

// View renders the current level with the tooltip and any open panel on
// top.
func (m *Model) View() (string, *tea.Cursor) {
	st := m.theme.Menu
	lines := []string{m.renderTitle()}

	if m.filtering {
		lines = append(lines, st.Filter.Render("/ ")+m.filter.View())
	}
	filterLine := len(lines) - 1

	cur := m.current()
	switch {
	case m.root.Loading && m.Depth() == 0:
		lines = append(lines, st.Loading.Render("Loading…"))
	case len(m.visible) == 0 && !m.root.RootOnly():
		lines = append(lines, st.More.Render("Nothing here"))
	}
	end := min(len(m.visible), cur.offset+m.visibleRows())
	tipRow := -1
	for i := cur.offset; i < end; i++ {
		if i == cur.cursor {
			tipRow = len(lines)
		}
		lines = append(lines, m.renderRow(m.visible[i], i == cur.cursor))
	}

	height := len(lines)
	tip := m.tooltip()
	if tip != "" {
		height += lipgloss.Height(tip)
	}
	if m.height > 0 {
		height = min(max(height, len(lines)), m.height)
	}
	view := strings.Join(lines, "\n")
	if tip != "" {
		if tipRow < 0 {
			tipRow = len(lines) - 1
		}
		view = overlay.Compose(view, m.width, height, tip, overlay.Anchor(2, tipRow+1))
	}

	if m.panel != nil {
		pv, pc := m.panel.View()
		height = max(height, lipgloss.Height(pv))
		view = overlay.Compose(view, m.width, height, pv, overlay.Placement{})
		if pc != nil {
			c := *pc
			c.X += (m.width - lipgloss.Width(pv)) / 2
			c.Y += (height - lipgloss.Height(pv)) / 2
			return view, &c
		}
		return view, nil
	}

	if m.filtering && m.focused {
		if c := m.filter.Cursor(); c != nil {
			pos := *c
			pos.X += 2
			pos.Y = filterLine
			return view, &pos
		}
	}
	return view, nil
}

func (m *Model) renderTitle() string {
	st := m.theme.Menu
	title := m.Breadcrumb()
	if title == "" {
		title = "Menu"
	}
	if m.root.Icon != menu.IconNone {
		title = string(m.root.Icon) + " " + title
	}
	return st.Title.Render(title)
}

func (m *Model) renderRow(row menu.Row, selected bool) string {
	st := m.theme.Menu
	indent := strings.Repeat("  ", row.Depth)
	if row.Kind == menu.RowHeader {
		return indent + st.Section.Render(row.Label)
	}

	label := row.Label
	if row.Icon != menu.IconNone {
		label = string(row.Icon) + " " + label
	}
	style := st.Item
	if row.Kind == menu.RowMore {
		style = st.More
	}
	if selected {
		style = st.Selected
	}
	line := indent + style.Render(label)
	if row.Subtitle != "" {
		line += " " + st.Subtitle.Render(row.Subtitle)
	}
	switch row.Kind {
	case menu.RowSubmenu:
		line += " " + st.Opener.Render("›")
	case menu.RowNumeric:
		line += " " + st.Opener.Render("…")
	}
	if row.Shortcut != "" {
		sc := st.Shortcut.Render(row.Shortcut)
		if gap := m.width - lipgloss.Width(line) - lipgloss.Width(sc); gap > 0 {
			line += strings.Repeat(" ", gap) + sc
		}
	}
	return line
}

func (m *Model) tooltip() string {
	var text string
	if m.root.RootOnly() && m.Depth() == 0 {
		text = m.root.Tooltip
	} else if row, ok := m.Selected(); ok {
		text = row.Tooltip
	}
	if text == "" {
		return ""
	}
	wrapped := wordwrap.String(text, max(10, m.width-8))
	return m.theme.Tooltip.Frame.Render(m.theme.Tooltip.Text.Render(wrapped))
}
