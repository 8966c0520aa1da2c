// Package menu describes menubar content (items, sections, submenus and
// numeric openers) and the pure helpers that turn it into render rows.
package menu

import (
	"context"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// DefaultClipLength is the title length used when no limit is configured.
const DefaultClipLength = 100

// clipTail is appended to clipped titles.
const clipTail = " ..."

// Action runs when an item is activated.
type Action func(ctx context.Context) error

// Icon is a single glyph rendered ahead of a title.
type Icon string

// Stock icons.
const (
	IconNone      Icon = ""
	IconGear      Icon = "⚙"
	IconGlobe     Icon = "◎"
	IconTerminal  Icon = "❯"
	IconClipboard Icon = "⧉"
	IconPin       Icon = "⌖"
	IconHashtag   Icon = "#"
)

// Shortcut is a keyboard shortcut hint such as cmd+,.
type Shortcut struct {
	Modifiers []string
	Key       string
}

func (s Shortcut) String() string {
	if s.Key == "" {
		return ""
	}
	parts := append(append([]string(nil), s.Modifiers...), s.Key)
	return strings.Join(parts, "+")
}

// TextLimits clips long titles.
type TextLimits struct {
	MaxLength int
	// DisableAutoTooltip stops the full title from being offered as the
	// tooltip of a clipped item.
	DisableAutoTooltip bool
}

// Entry is anything that can be placed in a menu: *Item, *Section,
// *Submenu or *Numeric.
type Entry interface {
	entry()
}

// Item is a selectable menu row.
type Item struct {
	Title      string
	Subtitle   string
	Icon       Icon
	Shortcut   *Shortcut
	Tooltip    string
	TextLimits *TextLimits
	OnAction   Action
}

func (*Item) entry() {}

// ShouldClip reports whether text is longer than maxLength printable
// cells. maxLength <= 0 means DefaultClipLength.
func ShouldClip(text string, maxLength int) bool {
	return ansi.PrintableRuneWidth(text) > effectiveLength(maxLength)
}

// ClipText shortens text to maxLength printable cells followed by " ...".
// Text that fits is returned unchanged.
func ClipText(text string, maxLength int) string {
	ml := effectiveLength(maxLength)
	if !ShouldClip(text, ml) {
		return text
	}
	return truncate.String(text, uint(ml)) + clipTail
}

func effectiveLength(maxLength int) int {
	if maxLength <= 0 {
		return DefaultClipLength
	}
	return maxLength
}

func (i *Item) clipLength() int {
	if i.TextLimits == nil {
		return DefaultClipLength
	}
	return effectiveLength(i.TextLimits.MaxLength)
}

// DisplayTitle returns the clipped title, or "?" for an empty one.
func (i *Item) DisplayTitle() string {
	if i == nil || i.Title == "" {
		return "?"
	}
	return ClipText(i.Title, i.clipLength())
}

// EffectiveTooltip returns the explicit tooltip, or the full title when
// the title was clipped and TextLimits allows an automatic tooltip.
func (i *Item) EffectiveTooltip() string {
	if i == nil {
		return ""
	}
	if i.Tooltip != "" {
		return i.Tooltip
	}
	if i.TextLimits == nil || i.TextLimits.DisableAutoTooltip {
		return ""
	}
	if ShouldClip(i.Title, i.clipLength()) {
		return i.Title
	}
	return ""
}

// JoinNonEmpty joins the non-empty parts with separator and returns "" when
// nothing is left.
func JoinNonEmpty(parts []string, separator string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, separator)
}

// joinTitle joins title and subtitle around a trimmed separator.
func joinTitle(title, subtitle, separator string) string {
	sep := " "
	if s := strings.TrimSpace(separator); s != "" {
		sep = " " + s + " "
	}
	return JoinNonEmpty([]string{title, subtitle}, sep)
}
