// Package demo runs the menubar over a sample menu with an activity log.
package demo

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/prefs"
	"tableflip.dev/menukit/pkg/tui/components/eventviewer"
	"tableflip.dev/menukit/pkg/tui/components/help"
	"tableflip.dev/menukit/pkg/tui/components/menubar"
	"tableflip.dev/menukit/pkg/tui/components/panel"
	"tableflip.dev/menukit/pkg/tui/events"
	"tableflip.dev/menukit/pkg/tui/menu"
	"tableflip.dev/menukit/pkg/tui/theme"
	"tableflip.dev/menukit/pkg/tui/ui/overlay"
)

const (
	logHeight = 8
	menuWidth = 56
)

// Demo runs the sample menu.
type Demo struct {
	Env     *actions.Env
	Store   prefs.Store
	Clip    int
	Verbose bool
}

// Do runs the program until the user quits. Notifications from actions
// are delivered to the activity log.
func (d *Demo) Do(ctx context.Context) error {
	env := d.Env
	if env == nil {
		env = &actions.Env{}
	}
	m := New(ctx, SampleRoot(env, d.Store, d.Clip), d.Store)
	m.log.Verbose = d.Verbose

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	env.Notifier = actions.ProgramNotifier{Send: p.Send}
	_, err := p.Run()
	return err
}

type prefChangedMsg struct {
	name string
	ch   <-chan prefs.Event
}

// Model hosts the menubar, a status panel, the activity log and the help
// overlay.
type Model struct {
	menu   *menubar.Model
	log    *eventviewer.Model
	status panel.Model
	help   *help.Model
	store  prefs.Store
	ctx    context.Context

	showHelp bool
	width    int
	height   int
}

// New builds the host model for root.
func New(ctx context.Context, root *menu.Root, store prefs.Store) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	th := theme.Default()
	m := &Model{
		menu:   menubar.New(menubar.Options{ID: "menubar", Root: root, Theme: &th, Context: ctx}),
		log:    eventviewer.NewModel(100),
		status: panel.New(th.Panel),
		help:   help.New(48, 18, help.DefaultGroups()),
		store:  store,
		ctx:    ctx,
	}
	m.status.SetContent("Status", []panel.Field{
		{Label: "Font Size", Value: m.pref(PrefFontSize)},
		{Label: "Temperature", Value: m.pref(PrefTemperature)},
		{Label: "Last", Value: "-"},
	})
	m.menu.Focus()
	return m
}

func (m *Model) pref(name string) string {
	if m.store == nil {
		return "-"
	}
	v, err := m.store.Get(name)
	if err != nil {
		return "-"
	}
	return v
}

// Init starts watching the preference store.
func (m *Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	ch, err := m.store.Watch(m.ctx)
	if err != nil {
		return func() tea.Msg {
			return events.ToastMsg{Title: "Preferences", Message: err.Error()}
		}
	}
	return waitForPref(ch)
}

func waitForPref(ch <-chan prefs.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return prefChangedMsg{name: ev.Name, ch: ch}
	}
}

// Update records activity, handles global keys and forwards the rest to
// the menubar.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.log.Record(msg)

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = v.Width, v.Height
		m.layout()
		return m, nil
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showHelp {
			switch v.String() {
			case "?", "esc", "q":
				m.showHelp = false
				return m, nil
			}
			_, cmd := m.help.Update(msg)
			return m, cmd
		}
		if !m.menu.Filtering() && !m.menu.PanelOpen() {
			switch v.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	case prefChangedMsg:
		switch v.name {
		case PrefFontSize:
			m.status.Set("Font Size", m.pref(PrefFontSize))
		case PrefTemperature:
			m.status.Set("Temperature", m.pref(PrefTemperature))
		}
		return m, waitForPref(v.ch)
	case events.ValueSelectMsg:
		m.status.Set("Last", v.Label)
	case events.ActionResultMsg:
		if v.Err == nil {
			m.status.Set("Last", v.Title)
		} else {
			m.status.Set("Last", fmt.Sprintf("%s failed", v.Title))
		}
	}

	_, cmd := m.menu.Update(msg)
	return m, cmd
}

func (m *Model) layout() {
	w := min(menuWidth, max(20, m.width-30))
	m.menu.SetSize(w, max(5, m.height-logHeight))
	m.log.SetSize(m.width, logHeight)
	m.help.SetSize(min(48, m.width-4), min(18, m.height-2))
}

// View draws the menu beside the status panel above the activity log.
func (m *Model) View() (string, *tea.Cursor) {
	menuView, cursor := m.menu.View()
	statusView, _ := m.status.View()
	top := lipgloss.JoinHorizontal(lipgloss.Top, menuView, "  ", statusView)
	view := top
	if logView := m.log.View(); logView != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, top, logView)
	}
	if m.showHelp && m.width > 0 && m.height > 0 {
		hv, _ := m.help.View()
		return overlay.Compose(view, m.width, m.height, hv, overlay.Placement{}), nil
	}
	return view, cursor
}
