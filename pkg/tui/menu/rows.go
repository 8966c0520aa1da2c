package menu

import (
	"github.com/sahilm/fuzzy"
)

// RowKind tells the renderer how to draw a row.
type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
	RowSubmenu
	RowNumeric
	RowMore
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowItem:
		return "item"
	case RowSubmenu:
		return "submenu"
	case RowNumeric:
		return "numeric"
	case RowMore:
		return "more"
	default:
		return "unknown"
	}
}

// Row is one flattened line of a menu level.
type Row struct {
	Kind     RowKind
	Label    string
	Subtitle string
	Icon     Icon
	Shortcut string
	Tooltip  string
	// Depth is the section nesting of the row.
	Depth   int
	Item    *Item
	Submenu *Submenu
	Numeric *Numeric
}

// Selectable reports whether the row can be highlighted.
func (r Row) Selectable() bool {
	return r.Kind != RowHeader
}

// FilterValue is the text fuzzy matching runs against.
func (r Row) FilterValue() string {
	if r.Subtitle == "" {
		return r.Label
	}
	return r.Label + " " + r.Subtitle
}

// Flatten turns entries into render rows. Sections become a header row
// followed by their visible children; empty sections are skipped.
func Flatten(entries []Entry) []Row {
	var rows []Row
	flatten(&rows, entries, 0)
	return rows
}

func flatten(rows *[]Row, entries []Entry, depth int) {
	for _, e := range entries {
		switch v := e.(type) {
		case *Item:
			if v == nil {
				continue
			}
			*rows = append(*rows, itemRow(v, RowItem, depth))
		case *Submenu:
			if v == nil {
				continue
			}
			*rows = append(*rows, Row{
				Kind:    RowSubmenu,
				Label:   v.FullTitle(),
				Icon:    v.Icon,
				Depth:   depth,
				Submenu: v,
			})
		case *Numeric:
			if v == nil {
				continue
			}
			*rows = append(*rows, Row{
				Kind:    RowNumeric,
				Label:   v.Title,
				Icon:    v.DisplayIcon(),
				Depth:   depth,
				Numeric: v,
			})
		case *Section:
			shown, more, ok := v.Visible()
			if !ok {
				continue
			}
			if title := v.FullTitle(); title != "" {
				*rows = append(*rows, Row{Kind: RowHeader, Label: title, Depth: depth})
			}
			flatten(rows, shown, depth+1)
			if more != nil {
				*rows = append(*rows, itemRow(more, RowMore, depth+1))
			}
		}
	}
}

func itemRow(i *Item, kind RowKind, depth int) Row {
	r := Row{
		Kind:     kind,
		Label:    i.DisplayTitle(),
		Subtitle: i.Subtitle,
		Icon:     i.Icon,
		Tooltip:  i.EffectiveTooltip(),
		Depth:    depth,
		Item:     i,
	}
	if i.Shortcut != nil {
		r.Shortcut = i.Shortcut.String()
	}
	return r
}

// Filter keeps the selectable rows that fuzzy-match query, best match
// first. Headers are dropped while a query is active.
func Filter(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	candidates := make([]Row, 0, len(rows))
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		if !r.Selectable() {
			continue
		}
		candidates = append(candidates, r)
		values = append(values, r.FilterValue())
	}
	matches := fuzzy.Find(query, values)
	out := make([]Row, 0, len(matches))
	for _, m := range matches {
		out = append(out, candidates[m.Index])
	}
	return out
}

// FirstSelectable returns the index of the first selectable row at or
// after from, or -1.
func FirstSelectable(rows []Row, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(rows); i++ {
		if rows[i].Selectable() {
			return i
		}
	}
	return -1
}

// NextSelectable moves from cur by delta (+1 or -1) skipping headers and
// stops at the ends.
func NextSelectable(rows []Row, cur, delta int) int {
	for i := cur + delta; i >= 0 && i < len(rows); i += delta {
		if rows[i].Selectable() {
			return i
		}
	}
	return cur
}
