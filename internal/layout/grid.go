// Package layout arranges panels in a grid.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/render"
)

var (
	ErrUnknownMode = errors.New("layout: unknown mode")
	ErrInvalidGrid = errors.New("layout: grid needs at least one row and one column")
)

// Mode decides what fills the slots not taken by trajectory panels.
type Mode string

const (
	// ModeCounter puts the iteration counter panel in the last slot.
	ModeCounter Mode = "counter"
	// ModeHide leaves unused slots empty.
	ModeHide Mode = "hide"
)

// ParseMode accepts "counter" and "hide".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeCounter:
		return ModeCounter, nil
	case ModeHide:
		return ModeHide, nil
	}
	return "", errors.WithHintf(errors.Wrapf(ErrUnknownMode, "%q", s), "use %q or %q", ModeCounter, ModeHide)
}

type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotPanel
	SlotCounter
)

func (k SlotKind) String() string {
	switch k {
	case SlotPanel:
		return "panel"
	case SlotCounter:
		return "counter"
	default:
		return "empty"
	}
}

// Slot is one grid cell. Optimizer is set for SlotPanel only.
type Slot struct {
	Kind      SlotKind
	Optimizer string
}

// Grid is the configured panel grid.
type Grid struct {
	Rows int
	Cols int
	Mode Mode
}

func DefaultGrid() Grid {
	return Grid{Rows: 2, Cols: 2, Mode: ModeCounter}
}

func (g Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return errors.Wrapf(ErrInvalidGrid, "%dx%d", g.Rows, g.Cols)
	}
	if _, err := ParseMode(string(g.Mode)); err != nil {
		return err
	}
	return nil
}

// Arrange places one panel per name in row-major order. In counter mode the
// counter takes the last slot. Rows are added when the configured grid is
// too small.
func (g Grid) Arrange(names []string) [][]Slot {
	rows, cols := g.Rows, g.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	needed := len(names)
	if g.Mode == ModeCounter {
		needed++
	}
	if rows*cols < needed {
		rows = (needed + cols - 1) / cols
	}

	flat := make([]Slot, rows*cols)
	for i, n := range names {
		flat[i] = Slot{Kind: SlotPanel, Optimizer: n}
	}
	if g.Mode == ModeCounter {
		flat[len(flat)-1] = Slot{Kind: SlotCounter}
	}

	out := make([][]Slot, rows)
	for r := range out {
		out[r] = flat[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out
}

// Compose draws every slot for state and joins them under the figure title.
// A state without an update for a panel draws that panel idle.
func Compose(ctx *render.Context, slots [][]Slot, state anim.State) string {
	rows := make([]string, 0, len(slots)+1)
	rows = append(rows, ctx.Title())
	for _, row := range slots {
		cells := make([]string, len(row))
		for i, s := range row {
			switch s.Kind {
			case SlotPanel:
				u, ok := state.Update(s.Optimizer)
				cells[i] = ctx.Panel(s.Optimizer, u, ok)
			case SlotCounter:
				cells[i] = ctx.Counter(state)
			default:
				cells[i] = ctx.Blank()
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
