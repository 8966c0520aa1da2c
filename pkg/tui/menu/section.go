package menu

import (
	"tableflip.dev/menukit/pkg/numeric"
)

// ChildrenLimit caps the number of children a section renders.
type ChildrenLimit struct {
	// Max children shown; zero or less shows all.
	Max int
	// More builds the row shown in place of the hidden children.
	More func(hidden int) *Item
}

// Section groups entries under an optional heading. A section without
// children is not rendered.
type Section struct {
	Title          string
	Subtitle       string
	TitleSeparator string
	Children       []Entry
	Limit          *ChildrenLimit
}

func (*Section) entry() {}

// FullTitle joins title and subtitle with the separator.
func (s *Section) FullTitle() string {
	if s == nil {
		return ""
	}
	return joinTitle(s.Title, s.Subtitle, s.TitleSeparator)
}

// Visible returns the children to render and the optional "more" row. ok
// is false when the section has no children.
func (s *Section) Visible() (shown []Entry, more *Item, ok bool) {
	if s == nil || len(s.Children) == 0 {
		return nil, nil, false
	}
	if s.Limit == nil || s.Limit.Max <= 0 || len(s.Children) <= s.Limit.Max {
		return s.Children, nil, true
	}
	shown = s.Children[:s.Limit.Max]
	hidden := len(s.Children) - len(shown)
	if s.Limit.More != nil {
		more = s.Limit.More(hidden)
	}
	return shown, more, true
}

// Submenu nests entries behind a single row.
type Submenu struct {
	Title          string
	Subtitle       string
	TitleSeparator string
	Icon           Icon
	Children       []Entry
}

func (*Submenu) entry() {}

// FullTitle joins title and subtitle with the separator.
func (s *Submenu) FullTitle() string {
	if s == nil {
		return ""
	}
	return joinTitle(s.Title, s.Subtitle, s.TitleSeparator)
}

// Numeric opens a numeric selector panel.
type Numeric struct {
	Title   string
	Icon    Icon
	Options numeric.Options
}

func (*Numeric) entry() {}

// DisplayIcon returns the icon, defaulting to IconHashtag.
func (n *Numeric) DisplayIcon() Icon {
	if n == nil || n.Icon == IconNone {
		return IconHashtag
	}
	return n.Icon
}

// Root is the top of a menu.
type Root struct {
	Title    string
	Icon     Icon
	Tooltip  string
	Loading  bool
	Children []Entry
	// OnAction runs when a root without children is activated.
	OnAction Action
}

// RootOnly reports whether the root has no children and only runs
// OnAction.
func (r *Root) RootOnly() bool {
	return r != nil && len(r.Children) == 0 && r.OnAction != nil
}
