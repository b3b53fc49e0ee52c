package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajviz/internal/anim"
)

// Markers
const (
	CurrentMarker = '●'
	StartMarker   = '✕'
)

// CounterTitle heads the counter panel.
const CounterTitle = "iteration counter"

// PanelRaster draws the plot area for one optimizer: the field, the revealed
// path, the current point and the start marker, in that order. With ok false
// only the field and the start marker are drawn.
func (c *Context) PanelRaster(name string, u anim.Update, ok bool) *Raster {
	r := c.base.Clone()
	color := c.Colors.Color(name)

	if ok && len(u.Path) > 0 {
		canvas := NewCanvas(c.Geo.Width, c.Geo.Height)
		pts := make([][2]int, len(u.Path))
		for i, p := range u.Path {
			pts[i][0], pts[i][1] = c.Project(p)
		}
		canvas.Polyline(pts)
		for row := 0; row < r.Height; row++ {
			for col := 0; col < r.Width; col++ {
				if ch, lit := canvas.Cell(col, row); lit {
					r.Mark(col, row, ch, color, false)
				}
			}
		}

		col, row := c.CellOf(u.Current)
		r.Mark(col, row, CurrentMarker, color, true)
	}

	if t, found := c.Store.Get(name); found {
		col, row := c.CellOf(t.Start())
		r.Mark(col, row, StartMarker, c.Theme.Accent, true)
	}
	return r
}

// Panel renders a framed trajectory panel titled with the optimizer name.
func (c *Context) Panel(name string, u anim.Update, ok bool) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(c.Colors.Color(name)).
		Render(truncate(name, c.Geo.Width))

	footer := ""
	if c.Geo.ShowCounter && ok {
		text := u.Counter
		if text == "" {
			text = anim.CounterText(u.Reveal)
		}
		footer = lipgloss.NewStyle().Foreground(c.Theme.Muted).Render(text)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.PanelRaster(name, u, ok).String(),
		footer,
	)
	return c.frame(body)
}

// Counter renders the auxiliary panel listing every optimizer's iteration.
func (c *Context) Counter(state anim.State) string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(c.Theme.Foreground).Render(CounterTitle),
		"",
	}
	for _, name := range c.Store.Names() {
		color := c.Colors.Color(name)
		text := anim.CounterText(0)
		if u, ok := state.Update(name); ok {
			text = u.Counter
			if text == "" {
				text = anim.CounterText(u.Reveal)
			}
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(color).Render(truncate(name, c.Geo.Width)),
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(text),
			"",
		)
	}
	return c.frame(strings.Join(lines, "\n"))
}

// Blank is an empty frame the size of a panel.
func (c *Context) Blank() string {
	return lipgloss.NewStyle().
		Width(c.Geo.Width + 2).
		Height(c.Geo.Height + 4).
		Render("")
}

// frame pads body to the panel size and draws the border.
func (c *Context) frame(body string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Theme.Border).
		Width(c.Geo.Width).
		Height(c.Geo.Height + 2).
		Render(body)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

// StartCell reports where the start marker of name lands.
func (c *Context) StartCell(name string) (int, int, bool) {
	t, ok := c.Store.Get(name)
	if !ok {
		return 0, 0, false
	}
	col, row := c.CellOf(t.Start())
	return col, row, true
}
