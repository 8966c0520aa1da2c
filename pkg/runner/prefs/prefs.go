// Package prefs implements the preference subcommands.
package prefs

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/menukit/pkg/actions"
	"tableflip.dev/menukit/pkg/prefs"
	"tableflip.dev/menukit/pkg/printers"
)

// Base holds what every preference runner needs.
type Base struct {
	Store  prefs.Store
	Format printers.Format
	Out    io.Writer
}

func (b *Base) out() io.Writer {
	if b.Out == nil {
		return color.Output
	}
	return b.Out
}

func (b *Base) format() printers.Format {
	if b.Format == "" {
		return printers.Table
	}
	return b.Format
}

func (b *Base) print(list []printers.Preference) error {
	return printers.Preferences(b.out(), list, b.format())
}

// Get prints one value, falling back to the configured default.
type Get struct {
	Base
	Name string
}

func (g *Get) Do(_ context.Context) error {
	v, err := g.Store.Get(g.Name)
	if err != nil {
		return err
	}
	if g.format() == printers.Table {
		_, err = fmt.Fprintln(g.out(), v)
		return err
	}
	return g.print([]printers.Preference{{Name: g.Name, Value: v}})
}

// Set stores a value.
type Set struct {
	Base
	Name  string
	Value string
}

func (s *Set) Do(_ context.Context) error {
	return s.Store.Set(s.Name, s.Value)
}

// Remove deletes a stored value.
type Remove struct {
	Base
	Name string
}

func (r *Remove) Do(_ context.Context) error {
	return r.Store.Delete(r.Name)
}

// List prints every stored value.
type List struct {
	Base
}

func (l *List) Do(ctx context.Context) error {
	names := l.Store.Names(ctx)
	list := make([]printers.Preference, 0, len(names))
	for _, n := range names {
		v, err := l.Store.Get(n)
		if err != nil {
			return err
		}
		list = append(list, printers.Preference{Name: n, Value: v})
	}
	return l.print(list)
}

// Bounded prints a numeric preference clamped to its bounds.
type Bounded struct {
	Base
	Options prefs.BoundedOptions
}

func (b *Bounded) Do(_ context.Context) error {
	v := prefs.BoundedNumber(b.Store, b.Options)
	value := strconv.FormatFloat(v, 'f', -1, 64)
	if b.format() == printers.Table {
		_, err := fmt.Fprintln(b.out(), value)
		return err
	}
	return b.print([]printers.Preference{{Name: b.Options.Name, Value: value}})
}

// Watch prints the names of changed preferences until ctx is done.
type Watch struct {
	Base
}

func (w *Watch) Do(ctx context.Context) error {
	ch, err := w.Store.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			v, err := w.Store.Get(ev.Name)
			if err != nil {
				_, _ = fmt.Fprintf(w.out(), "%s %s\n", color.CyanString(ev.Name), color.New(color.Faint).Sprint("(removed)"))
				continue
			}
			_, _ = fmt.Fprintf(w.out(), "%s %s\n", color.CyanString(ev.Name), v)
		}
	}
}

// Open opens the store directory in an editor.
type Open struct {
	Env *actions.Env
}

func (o *Open) Do(ctx context.Context) error {
	return actions.ConfigureCommand(o.Env).OnAction(ctx)
}
