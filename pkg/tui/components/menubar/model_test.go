package menubar

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	core "tableflip.dev/menukit/pkg/numeric"
	"tableflip.dev/menukit/pkg/tui/events"
	"tableflip.dev/menukit/pkg/tui/menu"
)

func newMenubar(t *testing.T, root *menu.Root) *Model {
	t.Helper()
	m := New(Options{ID: "test-menubar", Root: root})
	m.SetSize(60, 20)
	_ = m.Focus()
	return m
}

func press(m *Model, code rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func sampleRoot(calls *[]string) *menu.Root {
	record := func(name string) menu.Action {
		return func(context.Context) error {
			*calls = append(*calls, name)
			return nil
		}
	}
	return &menu.Root{
		Title: "Demo",
		Children: []menu.Entry{
			&menu.Section{Title: "Actions", Children: []menu.Entry{
				&menu.Item{Title: "Copy", OnAction: record("copy")},
				&menu.Item{Title: "Paste", OnAction: record("paste")},
			}},
			&menu.Submenu{Title: "More", Children: []menu.Entry{
				&menu.Item{Title: "Nested", OnAction: record("nested")},
			}},
		},
	}
}

func TestCursorSkipsHeaders(t *testing.T) {
	var calls []string
	m := newMenubar(t, sampleRoot(&calls))
	row, ok := m.Selected()
	if !ok || row.Label != "Copy" {
		t.Fatalf("expected first item selected, got %+v", row)
	}
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	row, _ = m.Selected()
	if row.Kind != menu.RowSubmenu {
		t.Fatalf("expected submenu row, got %v", row.Kind)
	}
	press(m, tea.KeyUp)
	press(m, tea.KeyUp)
	press(m, tea.KeyUp)
	row, _ = m.Selected()
	if row.Label != "Copy" {
		t.Fatalf("expected cursor to stop at the first item, got %q", row.Label)
	}
}

func TestEnterRunsAction(t *testing.T) {
	var calls []string
	m := newMenubar(t, sampleRoot(&calls))
	press(m, tea.KeyDown)
	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected action command")
	}
	msg, ok := cmd().(events.ActionResultMsg)
	if !ok || msg.Title != "Paste" || msg.Err != nil {
		t.Fatalf("unexpected result %+v", msg)
	}
	if len(calls) != 1 || calls[0] != "paste" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestActionErrorIsReported(t *testing.T) {
	boom := errors.New("boom")
	m := newMenubar(t, &menu.Root{Children: []menu.Entry{
		&menu.Item{Title: "Fail", OnAction: func(context.Context) error { return boom }},
	}})
	msg := press(m, tea.KeyEnter)().(events.ActionResultMsg)
	if !errors.Is(msg.Err, boom) {
		t.Fatalf("expected boom, got %v", msg.Err)
	}
}

func TestSubmenuNavigation(t *testing.T) {
	var calls []string
	m := newMenubar(t, sampleRoot(&calls))
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	cmd := press(m, tea.KeyEnter)
	nav, ok := cmd().(events.MenuNavigateMsg)
	if !ok || nav.Depth != 1 || nav.Title != "More" {
		t.Fatalf("unexpected navigation %+v", nav)
	}
	if m.Breadcrumb() != "Demo › More" {
		t.Fatalf("unexpected breadcrumb %q", m.Breadcrumb())
	}
	row, _ := m.Selected()
	if row.Label != "Nested" {
		t.Fatalf("expected nested item, got %q", row.Label)
	}
	press(m, tea.KeyEscape)
	if m.Depth() != 0 {
		t.Fatalf("expected to return to root")
	}
	if cmd := press(m, tea.KeyEscape); cmd != nil {
		t.Fatalf("escape at root should do nothing")
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	var calls []string
	m := newMenubar(t, sampleRoot(&calls))
	typeText(m, "/")
	typeText(m, "pst")
	rows := m.Rows()
	if len(rows) != 1 || rows[0].Label != "Paste" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	press(m, tea.KeyEscape)
	if len(m.Rows()) != 4 {
		t.Fatalf("expected rows restored, got %d", len(m.Rows()))
	}
}

func TestNumericPanelLifecycle(t *testing.T) {
	var picked []float64
	m := newMenubar(t, &menu.Root{Children: []menu.Entry{
		&menu.Numeric{Title: "Volume", Options: core.Options{
			Predefined:     core.List(1, 2, 3),
			Default:        core.Float(2),
			OnValueChanged: func(v float64) { picked = append(picked, v) },
		}},
	}})
	press(m, tea.KeyEnter)
	if !m.PanelOpen() {
		t.Fatalf("expected numeric panel to open")
	}
	cmd := press(m, tea.KeyEnter)
	msg, ok := cmd().(events.ValueSelectMsg)
	if !ok || msg.Value != 2 {
		t.Fatalf("unexpected selection %+v", msg)
	}
	m.Update(msg)
	if m.PanelOpen() {
		t.Fatalf("expected panel to close after selection")
	}
	if len(picked) != 1 || picked[0] != 2 {
		t.Fatalf("unexpected callback values %v", picked)
	}
}

func TestNumericPanelBadRangeReportsError(t *testing.T) {
	m := newMenubar(t, &menu.Root{Children: []menu.Entry{
		&menu.Numeric{Title: "Broken", Options: core.Options{Predefined: core.RangeSteps(1, 2, 0)}},
	}})
	msg := press(m, tea.KeyEnter)().(events.ActionResultMsg)
	if !errors.Is(msg.Err, core.ErrInvalidStep) {
		t.Fatalf("expected step error, got %v", msg.Err)
	}
	if m.PanelOpen() {
		t.Fatalf("panel must stay closed")
	}
}

func TestRootOnlyRunsRootAction(t *testing.T) {
	ran := false
	m := newMenubar(t, &menu.Root{
		Title:    "Only",
		Tooltip:  "runs directly",
		OnAction: func(context.Context) error { ran = true; return nil },
	})
	msg := press(m, tea.KeyEnter)().(events.ActionResultMsg)
	if !ran || msg.Title != "Only" {
		t.Fatalf("expected root action to run, got %+v", msg)
	}
	view, _ := m.View()
	if !strings.Contains(ansi.Strip(view), "runs directly") {
		t.Fatalf("expected root tooltip in view:\n%s", view)
	}
}

func TestViewShowsClippedTooltip(t *testing.T) {
	m := newMenubar(t, &menu.Root{Children: []menu.Entry{
		&menu.Item{Title: "A very long title", TextLimits: &menu.TextLimits{MaxLength: 6}},
	}})
	view := ansi.Strip(func() string { v, _ := m.View(); return v }())
	if !strings.Contains(view, "A very ...") {
		t.Fatalf("expected clipped title:\n%s", view)
	}
	if !strings.Contains(view, "A very long title") {
		t.Fatalf("expected tooltip with full title:\n%s", view)
	}
}

func TestBlurredIgnoresKeys(t *testing.T) {
	var calls []string
	m := newMenubar(t, sampleRoot(&calls))
	_ = m.Blur()
	if cmd := press(m, tea.KeyEnter); cmd != nil {
		t.Fatalf("blurred menubar must ignore keys")
	}
}
