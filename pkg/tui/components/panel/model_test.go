package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/menukit/pkg/tui/theme"
)

func TestSetAndView(t *testing.T) {
	p := New(theme.Default().Panel)
	p.SetContent("Status", []Field{{Label: "Font Size", Value: "14"}})
	p.Set("Last", "2 °C")
	p.Set("Font Size", "16")

	if got := len(p.Fields()); got != 2 {
		t.Fatalf("expected 2 fields, got %d", got)
	}
	view, height := p.View()
	plain := ansi.Strip(view)
	if !strings.Contains(plain, "Font Size  16") || !strings.Contains(plain, "Last       2 °C") {
		t.Fatalf("unexpected view:\n%s", plain)
	}
	// border, title and two fields
	if height != 5 {
		t.Fatalf("expected height 5, got %d", height)
	}
}
