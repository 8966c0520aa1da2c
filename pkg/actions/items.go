package actions

import (
	"context"
	"errors"
	"os"
	"strings"

	"tableflip.dev/menukit/pkg/maps"
	"tableflip.dev/menukit/pkg/tui/menu"
)

// Default titles, confirmations and error titles.
const (
	TitleConfigureCommand   = "Configure Command"
	TitleConfigureExtension = "Configure Extension"
	TitleOpenInBrowser      = "Open In Browser"
	TitleLaunchCommand      = "Launch Command"
	TitleCopyToClipboard    = "Copy To Clipboard"
	TitleOpenMaps           = "Open Maps"

	HUDCopied   = "Copied to Clipboard"
	HUDOpenMaps = "Open Maps"

	ErrTitleConfigureCommand   = "Could not launch Configure Command"
	ErrTitleConfigureExtension = "Could not launch Configure Extension Command"
)

// Option overrides a default on a built item.
type Option func(*menu.Item)

// WithTitle replaces the default title.
func WithTitle(title string) Option {
	return func(i *menu.Item) {
		if title != "" {
			i.Title = title
		}
	}
}

// WithIcon replaces the default icon.
func WithIcon(icon menu.Icon) Option {
	return func(i *menu.Item) { i.Icon = icon }
}

// WithShortcut replaces the default shortcut.
func WithShortcut(s menu.Shortcut) Option {
	return func(i *menu.Item) { i.Shortcut = &s }
}

// WithTooltip sets a tooltip.
func WithTooltip(text string) Option {
	return func(i *menu.Item) { i.Tooltip = text }
}

// WithSubtitle sets a subtitle.
func WithSubtitle(text string) Option {
	return func(i *menu.Item) { i.Subtitle = text }
}

// WithTextLimits clips the title.
func WithTextLimits(l menu.TextLimits) Option {
	return func(i *menu.Item) { i.TextLimits = &l }
}

// WithAction replaces the built-in action.
func WithAction(a menu.Action) Option {
	return func(i *menu.Item) { i.OnAction = a }
}

func build(i *menu.Item, opts []Option) *menu.Item {
	for _, o := range opts {
		o(i)
	}
	return i
}

// guard runs fn and reports a failure through the notifier. The error is
// still returned so hosts can log it; context cancellation is not reported.
func (e *Env) guard(ctx context.Context, name, errTitle string, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	e.logger().Warn("action failed", "action", name, "error", err)
	ShowError(e.notifier(), ErrorMessage(err), errTitle)
	return err
}

// OpenPreferences opens the preference store directory in $VISUAL or
// $EDITOR, or with the desktop opener when neither is set.
func (e *Env) OpenPreferences(ctx context.Context) error {
	if e == nil || e.Prefs == nil {
		return errors.New("actions: no preference store")
	}
	dir := e.Prefs.BasePath()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			args := append(fields[1:len(fields):len(fields)], dir)
			return e.launcher().Launch(ctx, LaunchOptions{Name: fields[0], Args: args})
		}
	}
	return e.opener().Open(ctx, dir)
}

// ConfigureCommand opens the preferences. Defaults: "Configure Command",
// cmd+, and a gear icon.
func ConfigureCommand(env *Env, opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title:    TitleConfigureCommand,
		Icon:     menu.IconGear,
		Shortcut: &menu.Shortcut{Modifiers: []string{"cmd"}, Key: ","},
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "configure-command", ErrTitleConfigureCommand, env.OpenPreferences)
		},
	}, opts)
}

// ConfigureExtension opens the preferences. Defaults: "Configure
// Extension", opt+cmd+, and a gear icon.
func ConfigureExtension(env *Env, opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title:    TitleConfigureExtension,
		Icon:     menu.IconGear,
		Shortcut: &menu.Shortcut{Modifiers: []string{"opt", "cmd"}, Key: ","},
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "configure-extension", ErrTitleConfigureExtension, env.OpenPreferences)
		},
	}, opts)
}

// OpenInBrowser opens url and then calls onOpen, which may be nil.
func OpenInBrowser(env *Env, url string, onOpen func(url string), opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title: TitleOpenInBrowser,
		Icon:  menu.IconGlobe,
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "open-in-browser", "", func(ctx context.Context) error {
				if err := env.opener().Open(ctx, url); err != nil {
					return err
				}
				if onOpen != nil {
					onOpen(url)
				}
				return nil
			})
		},
	}, opts)
}

// LaunchCommand starts another command.
func LaunchCommand(env *Env, command LaunchOptions, opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title: TitleLaunchCommand,
		Icon:  menu.IconTerminal,
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "launch-command", "", func(ctx context.Context) error {
				return env.launcher().Launch(ctx, command)
			})
		},
	}, opts)
}

// CopyToClipboard copies content and confirms with a HUD.
func CopyToClipboard(env *Env, content string, opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title: TitleCopyToClipboard,
		Icon:  menu.IconClipboard,
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "copy-to-clipboard", "", func(context.Context) error {
				return env.CopyWithHUD(content)
			})
		},
	}, opts)
}

// CopyWithHUD copies content and shows "Copied to Clipboard".
func (e *Env) CopyWithHUD(content string) error {
	if err := e.clipboard().Copy(content); err != nil {
		return err
	}
	e.notifier().HUD(HUDCopied)
	return nil
}

// OpenMaps shows q in Apple Maps.
func OpenMaps(env *Env, q maps.Query, opts ...Option) *menu.Item {
	return build(&menu.Item{
		Title: TitleOpenMaps,
		Icon:  menu.IconPin,
		OnAction: func(ctx context.Context) error {
			return env.guard(ctx, "open-maps", "", func(ctx context.Context) error {
				env.notifier().HUD(HUDOpenMaps)
				return env.opener().Open(ctx, q.URL())
			})
		},
	}, opts)
}
