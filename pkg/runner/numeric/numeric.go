// Package numeric runs the numeric value selector from the command line,
// either as an interactive picker or as a printed list of rows.
package numeric

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	core "tableflip.dev/menukit/pkg/numeric"
	"tableflip.dev/menukit/pkg/printers"
	"tableflip.dev/menukit/pkg/tui/components/numeric"
	"tableflip.dev/menukit/pkg/tui/events"
)

// Numeric picks or lists values.
type Numeric struct {
	Title   string
	Options core.Options
	Search  string
	List    bool
	Format  printers.Format

	// Out defaults to color.Output.
	Out io.Writer
}

// Result is the committed value of an interactive run.
type Result struct {
	Value     float64 `json:"value"`
	Label     string  `json:"label"`
	FreeEntry bool    `json:"freeEntry,omitempty"`
}

func (n *Numeric) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// Do lists the rows when List is set or stdout is not a terminal, and
// opens the picker otherwise.
func (n *Numeric) Do(ctx context.Context) error {
	if n.List || !isatty.IsTerminal(os.Stdout.Fd()) {
		return n.list()
	}
	res, err := n.pick(ctx)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	if n.Format == printers.Table || n.Format == "" {
		_, _ = fmt.Fprintln(n.out(), res.Label)
		return nil
	}
	return printers.Encode(n.out(), res, n.Format)
}

func (n *Numeric) list() error {
	sel, err := core.NewSelector(n.Options)
	if err != nil {
		return err
	}
	sel.SetSearchText(n.Search)
	f := n.Format
	if f == "" {
		f = printers.Table
	}
	return printers.NumericRows(n.out(), n.Title, sel.Rows(), f)
}

func (n *Numeric) pick(ctx context.Context) (*Result, error) {
	m, err := NewPicker(n.Title, n.Options)
	if err != nil {
		return nil, err
	}
	m.panel.SetSearchText(n.Search)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return m.Result(), nil
}

// Picker hosts the selector panel as a full program.
type Picker struct {
	panel  *numeric.Model
	focus  tea.Cmd
	result *Result
}

// NewPicker builds the program model.
func NewPicker(title string, opts core.Options) (*Picker, error) {
	panel, err := numeric.New(numeric.Options{
		ID:       events.ComponentID("picker"),
		Title:    title,
		Selector: opts,
	})
	if err != nil {
		return nil, err
	}
	return &Picker{panel: panel, focus: panel.Focus()}, nil
}

// Result is nil until a value was committed.
func (p *Picker) Result() *Result { return p.result }

// Init starts the prompt's focus commands.
func (p *Picker) Init() tea.Cmd { return p.focus }

// Update quits on commit, cancel or ctrl+c.
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		p.panel.SetSize(min(v.Width, 60), v.Height)
		return p, nil
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return p, tea.Quit
		}
	case events.ValueSelectMsg:
		p.result = &Result{Value: v.Value, Label: v.Label, FreeEntry: v.FreeEntry}
		return p, tea.Quit
	case events.ValueCancelMsg:
		return p, tea.Quit
	}
	_, cmd := p.panel.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p *Picker) View() (string, *tea.Cursor) {
	return p.panel.View()
}
