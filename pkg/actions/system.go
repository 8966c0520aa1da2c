package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ErrNoClipboard is returned when neither the system clipboard nor a
// terminal is available.
var ErrNoClipboard = errors.New("actions: no clipboard available")

// SystemOpener uses open, xdg-open or rundll32 depending on the platform.
type SystemOpener struct{}

func (SystemOpener) Open(ctx context.Context, target string) error {
	name, args := openCommand(runtime.GOOS, target)
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("actions: open %s: %w", target, err)
	}
	return nil
}

func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// SystemClipboard writes to the OS clipboard and falls back to an OSC52
// escape sequence when stdout is a terminal.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		termenv.NewOutput(os.Stdout).Copy(text)
		return nil
	}
	return ErrNoClipboard
}

// LaunchType says who started a command.
type LaunchType string

const (
	UserInitiated LaunchType = "userInitiated"
	Background    LaunchType = "background"
)

// LaunchOptions describes a command to start.
type LaunchOptions struct {
	Name string
	Args []string
	// Arguments are passed as --key=value flags, sorted by key.
	Arguments map[string]string
	// FallbackText is passed as the last argument when set.
	FallbackText string
	Type         LaunchType
}

// CommandLine returns the argv the launcher runs.
func (o LaunchOptions) CommandLine() []string {
	argv := append([]string{o.Name}, o.Args...)
	keys := make([]string, 0, len(o.Arguments))
	for k := range o.Arguments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		argv = append(argv, "--"+k+"="+o.Arguments[k])
	}
	if o.FallbackText != "" {
		argv = append(argv, o.FallbackText)
	}
	return argv
}

// ExecLauncher runs commands with os/exec. User-initiated commands share
// the terminal and are waited for; background ones are only started.
type ExecLauncher struct{}

func (ExecLauncher) Launch(ctx context.Context, opts LaunchOptions) error {
	if opts.Name == "" {
		return errors.New("actions: launch needs a command name")
	}
	argv := opts.CommandLine()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	typ := opts.Type
	if typ == "" {
		typ = UserInitiated
	}
	cmd.Env = append(os.Environ(), "MENUKIT_LAUNCH_TYPE="+string(typ))
	if typ == Background {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("actions: launch %s: %w", opts.Name, err)
		}
		go func() { _ = cmd.Wait() }()
		return nil
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("actions: launch %s: %w", opts.Name, err)
	}
	return nil
}
