package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajviz/internal/field"
	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/theme"
	"github.com/san-kum/trajviz/internal/trajectory"
)

// Panel geometry defaults.
const (
	DefaultWidth         = 36
	DefaultHeight        = 14
	DefaultFillLevels    = 40
	DefaultOutlineLevels = 20
)

// Geometry sizes the plot area of a panel in terminal cells.
type Geometry struct {
	Width         int
	Height        int
	FillLevels    int
	OutlineLevels int
	// ShowCounter adds an "iter: N" footer to every trajectory panel.
	ShowCounter bool
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FillLevels:    DefaultFillLevels,
		OutlineLevels: DefaultOutlineLevels,
	}
}

func (g Geometry) withDefaults() Geometry {
	d := DefaultGeometry()
	if g.Width < 4 {
		g.Width = d.Width
	}
	if g.Height < 2 {
		g.Height = d.Height
	}
	if g.FillLevels < 1 {
		g.FillLevels = d.FillLevels
	}
	if g.OutlineLevels < 1 {
		g.OutlineLevels = d.OutlineLevels
	}
	return g
}

// Context owns everything a session needs to draw panels: theme, color
// assignment, the shared field sample and the trajectories. It is read-only
// once built; switching themes means building a new Context.
type Context struct {
	Theme  theme.Theme
	Colors palette.Assignment
	Sample *field.Sample
	Store  *trajectory.Store
	Geo    Geometry

	base *Raster
}

// NewContext precomputes the field raster shared by every panel.
func NewContext(th theme.Theme, colors palette.Assignment, sample *field.Sample, store *trajectory.Store, geo Geometry) *Context {
	ctx := &Context{
		Theme:  th,
		Colors: colors,
		Sample: sample,
		Store:  store,
		Geo:    geo.withDefaults(),
	}
	ctx.base = ctx.fieldRaster()
	return ctx
}

// WithTheme rebuilds the context for another theme.
func (c *Context) WithTheme(th theme.Theme, colors palette.Assignment) *Context {
	return NewContext(th, colors, c.Sample, c.Store, c.Geo)
}

// Title is the figure heading.
func (c *Context) Title() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(c.Theme.Foreground).
		Render(fmt.Sprintf("Gradient Descent Trajectories - %s", c.Sample.Landscape))
}

// Project maps a world point to a sub-pixel of the Braille canvas.
func (c *Context) Project(p trajectory.Point) (int, int) {
	b := c.Sample.Bounds
	w, h := c.Geo.Width*2-1, c.Geo.Height*4-1
	px := round((p.X - b.XMin) / b.Width() * float64(w))
	py := round((b.YMax - p.Y) / b.Height() * float64(h))
	return clampInt(px, 0, w), clampInt(py, 0, h)
}

// CellOf maps a world point to the terminal cell that contains it.
func (c *Context) CellOf(p trajectory.Point) (int, int) {
	px, py := c.Project(p)
	return px / 2, py / 4
}

// cellCenter is the world coordinate under the middle of a cell.
func (c *Context) cellCenter(col, row int) (float64, float64) {
	b := c.Sample.Bounds
	x := b.XMin + (float64(col)+0.5)/float64(c.Geo.Width)*b.Width()
	y := b.YMax - (float64(row)+0.5)/float64(c.Geo.Height)*b.Height()
	return x, y
}

// fieldRaster draws the filled contour and its outline overlay.
func (c *Context) fieldRaster() *Raster {
	g := c.Geo
	th := c.Theme
	r := NewRaster(g.Width, g.Height, Cell{Ch: ' ', BG: th.Background})

	fill := make([]int, g.Width*g.Height)
	outline := make([]int, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			t := c.Sample.Normalized(c.cellCenter(col, row))
			fill[row*g.Width+col] = theme.Quantize(t, g.FillLevels)
			outline[row*g.Width+col] = theme.Quantize(t, g.OutlineLevels)
		}
	}

	shades := make([]lipgloss.Color, g.FillLevels)
	for l := range shades {
		shades[l] = theme.Over(th.Colormap.Level(l, g.FillLevels), th.Background, th.FillAlpha)
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			i := row*g.Width + col
			bg := shades[fill[i]]
			cell := Cell{Ch: ' ', BG: bg}
			edge := (col+1 < g.Width && outline[i+1] != outline[i]) ||
				(row+1 < g.Height && outline[i+g.Width] != outline[i])
			if edge {
				cell.Ch = '·'
				cell.FG = theme.Over(theme.Hex(th.Outline), bg, 0.6)
			}
			r.Set(col, row, cell)
		}
	}
	return r
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
