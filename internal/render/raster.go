package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one terminal character with its colors.
type Cell struct {
	Ch   rune
	FG   lipgloss.Color
	BG   lipgloss.Color
	Bold bool
}

// Raster is a fixed size grid of cells, row-major.
type Raster struct {
	Width, Height int
	cells         []Cell
}

func NewRaster(w, h int, fill Cell) *Raster {
	r := &Raster{Width: w, Height: h, cells: make([]Cell, w*h)}
	for i := range r.cells {
		r.cells[i] = fill
	}
	return r
}

func (r *Raster) At(col, row int) Cell {
	return r.cells[row*r.Width+col]
}

func (r *Raster) Set(col, row int, c Cell) {
	if col < 0 || row < 0 || col >= r.Width || row >= r.Height {
		return
	}
	r.cells[row*r.Width+col] = c
}

// Mark draws ch in fg over the existing cell background.
func (r *Raster) Mark(col, row int, ch rune, fg lipgloss.Color, bold bool) {
	if col < 0 || row < 0 || col >= r.Width || row >= r.Height {
		return
	}
	c := &r.cells[row*r.Width+col]
	c.Ch, c.FG, c.Bold = ch, fg, bold
}

func (r *Raster) Clone() *Raster {
	out := &Raster{Width: r.Width, Height: r.Height, cells: make([]Cell, len(r.cells))}
	copy(out.cells, r.cells)
	return out
}

// Text returns the characters only, one line per row.
func (r *Raster) Text() string {
	var b strings.Builder
	for row := 0; row < r.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < r.Width; col++ {
			b.WriteRune(r.At(col, row).Ch)
		}
	}
	return b.String()
}

// String renders the raster with one lipgloss style per run of equally
// styled cells.
func (r *Raster) String() string {
	var b strings.Builder
	var run strings.Builder
	for row := 0; row < r.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		start := r.At(0, row)
		run.Reset()
		for col := 0; col < r.Width; col++ {
			c := r.At(col, row)
			if !sameStyle(c, start) {
				b.WriteString(styleOf(start).Render(run.String()))
				run.Reset()
				start = c
			}
			run.WriteRune(c.Ch)
		}
		b.WriteString(styleOf(start).Render(run.String()))
	}
	return b.String()
}

func sameStyle(a, b Cell) bool {
	return a.FG == b.FG && a.BG == b.BG && a.Bold == b.Bold
}

func styleOf(c Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(c.Bold)
	if c.FG != "" {
		s = s.Foreground(c.FG)
	}
	if c.BG != "" {
		s = s.Background(c.BG)
	}
	return s
}
