package actions

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"

	"tableflip.dev/menukit/pkg/tui/events"
)

// DefaultErrorTitle is used when ShowError gets no title.
const DefaultErrorTitle = "Something went wrong"

// ErrorMessage returns err's message, or "Unknown Error" for nil.
func ErrorMessage(err error) string {
	if err == nil {
		return "Unknown Error"
	}
	return err.Error()
}

// ShowError reports a failure through n.
func ShowError(n Notifier, message, title string) {
	if title == "" {
		title = DefaultErrorTitle
	}
	n.Error(title, message)
}

// LogNotifier writes notifications to a logger. It is used for background
// runs where nothing can be shown.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) log() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

func (n LogNotifier) HUD(text string) {
	n.log().Info(text)
}

func (n LogNotifier) Error(title, message string) {
	n.log().Error(title, "message", message)
}

// ConsoleNotifier prints notifications for CLI use.
type ConsoleNotifier struct {
	Out io.Writer
	Err io.Writer
}

func (n ConsoleNotifier) HUD(text string) {
	fmt.Fprintln(n.Out, color.GreenString("✓"), text)
}

func (n ConsoleNotifier) Error(title, message string) {
	fmt.Fprintf(n.Err, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint(title+":"), message)
}

// ProgramNotifier turns notifications into Bubble Tea messages, typically
// via tea.Program.Send.
type ProgramNotifier struct {
	Send func(tea.Msg)
}

func (n ProgramNotifier) HUD(text string) {
	if n.Send != nil {
		n.Send(events.HUDMsg{Text: text})
	}
}

func (n ProgramNotifier) Error(title, message string) {
	if n.Send != nil {
		n.Send(events.ToastMsg{Title: title, Message: message})
	}
}
