package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ValueSelectMsg is emitted when the user commits an admitted value in a
// numeric selector.
type ValueSelectMsg struct {
	Component ComponentID
	Value     float64
	Label     string
	FreeEntry bool
}

// Describe renders the selection in a human-friendly format for logs.
func (m ValueSelectMsg) Describe() string {
	return fmt.Sprintf(`value:%v label:%q free:%t`, m.Value, m.Label, m.FreeEntry)
}

// ValueSelectCmd wraps ValueSelectMsg into a tea.Cmd.
func ValueSelectCmd(component ComponentID, value float64, label string, free bool) tea.Cmd {
	return func() tea.Msg {
		return ValueSelectMsg{Component: component, Value: value, Label: label, FreeEntry: free}
	}
}

// ValueCancelMsg is emitted when a numeric selector is dismissed without a
// selection.
type ValueCancelMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m ValueCancelMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// ValueCancelCmd wraps ValueCancelMsg into a tea.Cmd.
func ValueCancelCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return ValueCancelMsg{Component: component}
	}
}

// ActionResultMsg reports the outcome of a menu item action.
type ActionResultMsg struct {
	Component ComponentID
	Title     string
	Err       error
}

// Describe implements the logging helper.
func (m ActionResultMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`title:%q error:%q`, m.Title, m.Err.Error())
	}
	return fmt.Sprintf(`title:%q`, m.Title)
}

// HUDMsg is a short transient confirmation ("Copied to Clipboard").
type HUDMsg struct {
	Text string
}

// Describe implements the logging helper.
func (m HUDMsg) Describe() string {
	return fmt.Sprintf(`text:%q`, m.Text)
}

// ToastMsg surfaces a failure to the user.
type ToastMsg struct {
	Title   string
	Message string
}

// Describe implements the logging helper.
func (m ToastMsg) Describe() string {
	return fmt.Sprintf(`title:%q message:%q`, m.Title, m.Message)
}

// MenuNavigateMsg is emitted when the menubar pushes or pops a level.
type MenuNavigateMsg struct {
	Component ComponentID
	Title     string
	Depth     int
}

// Describe implements the logging helper.
func (m MenuNavigateMsg) Describe() string {
	return fmt.Sprintf(`title:%q depth:%d`, m.Title, m.Depth)
}

// MenuNavigateCmd wraps MenuNavigateMsg into a tea.Cmd.
func MenuNavigateCmd(component ComponentID, title string, depth int) tea.Cmd {
	return func() tea.Msg {
		return MenuNavigateMsg{Component: component, Title: title, Depth: depth}
	}
}

// FocusMsg is emitted when a component gains focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// BlurMsg is emitted when a component loses focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// FocusCmd wraps FocusMsg into a tea.Cmd.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps BlurMsg into a tea.Cmd.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// Source returns the component that emitted msg, when known.
func Source(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case ValueSelectMsg:
		return v.Component, true
	case ValueCancelMsg:
		return v.Component, true
	case ActionResultMsg:
		return v.Component, true
	case MenuNavigateMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	default:
		return "", false
	}
}
