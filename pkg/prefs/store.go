// Package prefs is a file-backed preference store: one file per named
// value under a base directory, with defaults from the menukit config.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/peterbourgon/diskv/v3"
)

var (
	// ErrNotFound is returned for a preference with no value and no default.
	ErrNotFound = errors.New("prefs: not found")
	// ErrInvalidName is returned for names that cannot be used as file names.
	ErrInvalidName = errors.New("prefs: invalid name")
)

// Store reads and writes preferences.
type Store interface {
	Get(name string) (string, error)
	Set(name, value string) error
	Delete(name string) error
	// Names lists stored preferences, sorted.
	Names(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
	BasePath() string
}

// Load opens the store described by cfg, loading the config file when cfg
// is nil.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			return nil, err
		}
	}
	base := cfg.BasePath()
	if base == "" {
		return nil, errors.New("prefs: base path unknown")
	}
	return &store{
		d: diskv.New(diskv.Options{
			BasePath:     base,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 64 * 1024,
		}),
		cfg:  cfg,
		base: base,
	}, nil
}

type store struct {
	d    *diskv.Diskv
	cfg  Config
	base string
}

func (s *store) BasePath() string { return s.base }

func (s *store) Get(name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if s.d.Has(name) {
		val, err := s.d.Read(name)
		if err != nil {
			return "", fmt.Errorf("prefs: read %s: %w", name, err)
		}
		return strings.TrimRight(string(val), "\n"), nil
	}
	if def := s.cfg.Default(name); def != "" {
		return def, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (s *store) Set(name, value string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := s.d.Write(name, []byte(value)); err != nil {
		return fmt.Errorf("prefs: write %s: %w", name, err)
	}
	return nil
}

func (s *store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := s.d.Erase(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("prefs: erase %s: %w", name, err)
	}
	return nil
}

func (s *store) Names(ctx context.Context) []string {
	var names []string
	for key := range s.d.Keys(ctx.Done()) {
		if validName(key) == nil {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names
}

// validName accepts letters, digits, '-', '_' and '.', not starting with a
// dot.
func validName(name string) error {
	if name == "" || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func lower(s string) string { return strings.ToLower(s) }
