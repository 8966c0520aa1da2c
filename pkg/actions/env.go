// Package actions provides ready-made menu items for common tasks: opening
// preferences, URLs and maps, launching commands and copying text.
package actions

import (
	"context"
	"log/slog"

	"tableflip.dev/menukit/pkg/prefs"
)

// Opener opens a URL or path with the desktop handler.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// Launcher starts another command.
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) error
}

// Notifier shows short confirmations and failures to the user.
type Notifier interface {
	HUD(text string)
	Error(title, message string)
}

// Env is what item actions run against. Nil fields fall back to the
// system implementations and a logging notifier.
type Env struct {
	Opener    Opener
	Clipboard Clipboard
	Launcher  Launcher
	Notifier  Notifier
	Prefs     prefs.Store
	Logger    *slog.Logger
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Env) opener() Opener {
	if e == nil || e.Opener == nil {
		return SystemOpener{}
	}
	return e.Opener
}

func (e *Env) clipboard() Clipboard {
	if e == nil || e.Clipboard == nil {
		return SystemClipboard{}
	}
	return e.Clipboard
}

func (e *Env) launcher() Launcher {
	if e == nil || e.Launcher == nil {
		return ExecLauncher{}
	}
	return e.Launcher
}

func (e *Env) notifier() Notifier {
	if e == nil || e.Notifier == nil {
		return LogNotifier{Logger: e.logger()}
	}
	return e.Notifier
}

// Notify returns the notifier actions report through.
func (e *Env) Notify() Notifier { return e.notifier() }

// Log returns the logger, slog.Default when unset.
func (e *Env) Log() *slog.Logger { return e.logger() }
