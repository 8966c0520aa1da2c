package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestViewListsBindings(t *testing.T) {
	m := New(50, 20, DefaultGroups())
	view, cursor := m.View()
	if cursor != nil {
		t.Fatalf("help never shows a cursor")
	}
	plain := ansi.Strip(view)
	for _, want := range []string{"Menu", "Selector", "filter the current level", "toggle this help"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in help view:\n%s", want, plain)
		}
	}
}

func TestSetSizeMinimum(t *testing.T) {
	m := New(1, 1, nil)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
}
