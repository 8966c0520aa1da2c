package prefs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports that a preference changed on disk. Name is empty when the
// watcher could not tell which preference changed.
type Event struct {
	Name string
}

// WatchDelay is how long bursts of file writes are coalesced.
var WatchDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. The channel is
// closed when ctx is done or the watcher fails.
func (s *store) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(s.base, 0o755); err != nil {
		return nil, fmt.Errorf("prefs: ensure base path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefs: create watcher: %w", err)
	}
	if err := watcher.Add(s.base); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("prefs: watch %s: %w", s.base, err)
	}

	out := make(chan Event, 16)
	go func() {
		defer close(out)
		defer watcher.Close()

		var mu sync.Mutex
		done := false
		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if done {
				return
			}
			select {
			case out <- ev:
			default:
				// consumer is behind; the next burst carries the change
			}
		}
		throttle := newThrottle(WatchDelay, send)
		defer func() {
			throttle.stop()
			mu.Lock()
			done = true
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("preference watcher error", "path", s.base, "error", err)
				throttle.add("")
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(evt.Name)
				if validName(name) != nil {
					continue
				}
				throttle.add(name)
			}
		}
	}()
	return out, nil
}

// throttle collects names and flushes them once per delay window.
type throttle struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending map[string]struct{}
	send    func(Event)
}

func newThrottle(delay time.Duration, send func(Event)) *throttle {
	return &throttle{delay: delay, send: send, pending: map[string]struct{}{}}
}

func (t *throttle) add(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[name] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
}

func (t *throttle) flush() {
	t.mu.Lock()
	names := make([]string, 0, len(t.pending))
	for n := range t.pending {
		names = append(names, n)
	}
	t.pending = map[string]struct{}{}
	t.timer = nil
	t.mu.Unlock()

	sort.Strings(names)
	for _, n := range names {
		t.send(Event{Name: n})
	}
}

func (t *throttle) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
