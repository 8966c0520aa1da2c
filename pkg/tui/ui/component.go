// Package ui holds contracts shared by the menu components.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is implemented by the menubar and the numeric panel so a host
// can size, focus and stack them.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() (string, *tea.Cursor)
	SetSize(width, height int)
	Focus() tea.Cmd
	Blur() tea.Cmd
}
