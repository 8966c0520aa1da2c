package actions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/menukit/pkg/maps"
	"tableflip.dev/menukit/pkg/prefs"
	"tableflip.dev/menukit/pkg/tui/events"
	"tableflip.dev/menukit/pkg/tui/menu"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(_ context.Context, target string) error {
	f.opened = append(f.opened, target)
	return f.err
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakeLauncher struct {
	launched []LaunchOptions
	err      error
}

func (f *fakeLauncher) Launch(_ context.Context, opts LaunchOptions) error {
	f.launched = append(f.launched, opts)
	return f.err
}

type note struct {
	kind, title, message string
}

type fakeNotifier struct {
	notes []note
}

func (f *fakeNotifier) HUD(text string) {
	f.notes = append(f.notes, note{kind: "hud", title: text})
}

func (f *fakeNotifier) Error(title, message string) {
	f.notes = append(f.notes, note{kind: "error", title: title, message: message})
}

func newEnv() (*Env, *fakeOpener, *fakeClipboard, *fakeLauncher, *fakeNotifier) {
	o, c, l, n := &fakeOpener{}, &fakeClipboard{}, &fakeLauncher{}, &fakeNotifier{}
	return &Env{
		Opener:    o,
		Clipboard: c,
		Launcher:  l,
		Notifier:  n,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, o, c, l, n
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(nil); got != "Unknown Error" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := ErrorMessage(errors.New("boom")); got != "boom" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestShowErrorDefaultTitle(t *testing.T) {
	n := &fakeNotifier{}
	ShowError(n, "boom", "")
	want := []note{{kind: "error", title: "Something went wrong", message: "boom"}}
	if diff := cmp.Diff(want, n.notes, cmp.AllowUnexported(note{})); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaults(t *testing.T) {
	env, _, _, _, _ := newEnv()
	cc := ConfigureCommand(env)
	if cc.Title != "Configure Command" || cc.Shortcut.String() != "cmd+," || cc.Icon != menu.IconGear {
		t.Fatalf("unexpected configure command defaults %+v", cc)
	}
	ce := ConfigureExtension(env)
	if ce.Title != "Configure Extension" || ce.Shortcut.String() != "opt+cmd+," {
		t.Fatalf("unexpected configure extension defaults %+v", ce)
	}
	if i := OpenInBrowser(env, "https://example.com", nil); i.Title != "Open In Browser" || i.Icon != menu.IconGlobe {
		t.Fatalf("unexpected browser defaults %+v", i)
	}
	if i := LaunchCommand(env, LaunchOptions{Name: "true"}); i.Title != "Launch Command" || i.Icon != menu.IconTerminal {
		t.Fatalf("unexpected launch defaults %+v", i)
	}
	if i := OpenMaps(env, maps.Query{}); i.Title != "Open Maps" || i.Icon != menu.IconPin {
		t.Fatalf("unexpected maps defaults %+v", i)
	}
	i := CopyToClipboard(env, "x", WithTitle("Copy ID"), WithShortcut(menu.Shortcut{Modifiers: []string{"cmd"}, Key: "c"}))
	if i.Title != "Copy ID" || i.Shortcut.String() != "cmd+c" {
		t.Fatalf("expected overridden title and shortcut, got %+v", i)
	}
}

func TestCopyToClipboard(t *testing.T) {
	env, _, clip, _, n := newEnv()
	item := CopyToClipboard(env, "hello")
	if err := item.OnAction(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"hello"}, clip.copied); diff != "" {
		t.Fatalf("copied mismatch (-want +got):\n%s", diff)
	}
	if len(n.notes) != 1 || n.notes[0].title != "Copied to Clipboard" {
		t.Fatalf("expected HUD, got %+v", n.notes)
	}
}

func TestCopyFailureShowsError(t *testing.T) {
	env, _, clip, _, n := newEnv()
	clip.err = ErrNoClipboard
	err := CopyToClipboard(env, "hello").OnAction(context.Background())
	if !errors.Is(err, ErrNoClipboard) {
		t.Fatalf("expected ErrNoClipboard, got %v", err)
	}
	want := []note{{kind: "error", title: "Something went wrong", message: ErrNoClipboard.Error()}}
	if diff := cmp.Diff(want, n.notes, cmp.AllowUnexported(note{})); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenInBrowserCallsOnOpen(t *testing.T) {
	env, opener, _, _, _ := newEnv()
	var opened string
	item := OpenInBrowser(env, "https://example.com", func(u string) { opened = u })
	if err := item.OnAction(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != "https://example.com" || len(opener.opened) != 1 {
		t.Fatalf("expected url opened and callback run, got %q %v", opened, opener.opened)
	}

	opener.err = errors.New("no browser")
	opened = ""
	_ = item.OnAction(context.Background())
	if opened != "" {
		t.Fatalf("callback must not run when opening fails")
	}
}

func TestOpenMaps(t *testing.T) {
	env, opener, _, _, n := newEnv()
	q := maps.Query{Coordinates: &maps.Coordinates{Lat: 1.5, Long: 2.5}, Type: maps.Hybrid}
	if err := OpenMaps(env, q).OnAction(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"maps://maps.apple.com/?ll=1.5,2.5&t=h"}, opener.opened); diff != "" {
		t.Fatalf("opened mismatch (-want +got):\n%s", diff)
	}
	if len(n.notes) != 1 || n.notes[0].title != "Open Maps" {
		t.Fatalf("expected Open Maps HUD, got %+v", n.notes)
	}
}

func TestLaunchCommand(t *testing.T) {
	env, _, _, launcher, n := newEnv()
	launcher.err = errors.New("not found")
	cmd := LaunchOptions{Name: "menukit", Args: []string{"demo"}, Type: Background}
	err := LaunchCommand(env, cmd).OnAction(context.Background())
	if err == nil || len(launcher.launched) != 1 {
		t.Fatalf("expected launch attempt and error")
	}
	if len(n.notes) != 1 || n.notes[0].message != "not found" {
		t.Fatalf("expected error toast, got %+v", n.notes)
	}
}

func TestLaunchOptionsCommandLine(t *testing.T) {
	o := LaunchOptions{
		Name:         "menukit",
		Args:         []string{"numeric"},
		Arguments:    map[string]string{"steps": "5", "default": "2"},
		FallbackText: "hello",
	}
	want := []string{"menukit", "numeric", "--default=2", "--steps=5", "hello"}
	if diff := cmp.Diff(want, o.CommandLine()); diff != "" {
		t.Fatalf("argv mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureCommandUsesEditor(t *testing.T) {
	env, opener, _, launcher, n := newEnv()
	store, err := prefs.Load(prefs.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	env.Prefs = store

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "vi")
	if err := ConfigureCommand(env).OnAction(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(launcher.launched) != 1 || launcher.launched[0].Name != "vi" {
		t.Fatalf("expected editor launch, got %+v", launcher.launched)
	}

	t.Setenv("EDITOR", "")
	opener.err = errors.New("no handler")
	_ = ConfigureExtension(env).OnAction(context.Background())
	if len(opener.opened) != 1 || opener.opened[0] != store.BasePath() {
		t.Fatalf("expected opener fallback, got %v", opener.opened)
	}
	if len(n.notes) != 1 || n.notes[0].title != ErrTitleConfigureExtension {
		t.Fatalf("expected extension error title, got %+v", n.notes)
	}
}

func TestConfigureCommandSplitsEditorArguments(t *testing.T) {
	env, _, _, launcher, _ := newEnv()
	store, err := prefs.Load(prefs.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	env.Prefs = store

	t.Setenv("VISUAL", "code -w")
	if err := ConfigureCommand(env).OnAction(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(launcher.launched) != 1 {
		t.Fatalf("expected one launch, got %+v", launcher.launched)
	}
	got := launcher.launched[0]
	if got.Name != "code" {
		t.Fatalf("expected executable code, got %q", got.Name)
	}
	if diff := cmp.Diff([]string{"-w", store.BasePath()}, got.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestConsoleNotifier(t *testing.T) {
	var out, errOut bytes.Buffer
	n := ConsoleNotifier{Out: &out, Err: &errOut}
	n.HUD("Copied to Clipboard")
	n.Error("Failed", "boom")
	if !strings.Contains(out.String(), "Copied to Clipboard") {
		t.Fatalf("unexpected HUD output %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("unexpected error output %q", errOut.String())
	}
}

func TestProgramNotifier(t *testing.T) {
	var got []tea.Msg
	n := ProgramNotifier{Send: func(msg tea.Msg) { got = append(got, msg) }}
	n.HUD("ok")
	n.Error("t", "m")
	want := []tea.Msg{events.HUDMsg{Text: "ok"}, events.ToastMsg{Title: "t", Message: "m"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenCommand(t *testing.T) {
	name, args := openCommand("darwin", "x")
	if name != "open" || args[0] != "x" {
		t.Fatalf("unexpected darwin command %s %v", name, args)
	}
	name, _ = openCommand("linux", "x")
	if name != "xdg-open" {
		t.Fatalf("unexpected linux command %s", name)
	}
}
