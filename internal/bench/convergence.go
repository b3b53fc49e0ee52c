package bench

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/trajectory"
)

// ConvergenceOptions size the convergence plot.
type ConvergenceOptions struct {
	Height int
	Width  int
}

func DefaultConvergenceOptions() ConvergenceOptions {
	return ConvergenceOptions{Height: 12, Width: 72}
}

// Series returns ln(1 + f(p)) per iteration for every trajectory in store
// order. Shorter series hold their last value up to the longest one.
// Values that overflow are clamped to the largest finite value of the set.
func Series(store *trajectory.Store, kind landscape.Kind) [][]float64 {
	n := store.MaxLen()
	out := make([][]float64, 0, store.Len())
	ceiling := 0.0
	overflow := false
	store.Each(func(t trajectory.Trajectory) {
		s := make([]float64, n)
		for i := range s {
			p := t.Points[min(i, t.Len()-1)]
			s[i] = math.Log1p(kind.Eval(p.X, p.Y))
			if math.IsNaN(s[i]) || math.IsInf(s[i], 0) {
				overflow = true
			} else if s[i] > ceiling {
				ceiling = s[i]
			}
		}
		out = append(out, s)
	})
	if overflow {
		for _, s := range out {
			for i, v := range s {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					s[i] = ceiling
				}
			}
		}
	}
	return out
}

// Convergence plots Series with one colored line per optimizer and a legend.
func Convergence(store *trajectory.Store, kind landscape.Kind, colors palette.Assignment, opts ConvergenceOptions) string {
	if store == nil || store.Len() == 0 {
		return ""
	}
	d := DefaultConvergenceOptions()
	if opts.Height < 1 {
		opts.Height = d.Height
	}
	if opts.Width < 1 {
		opts.Width = d.Width
	}

	series := Series(store, kind)
	for i, s := range series {
		if len(s) == 1 {
			series[i] = []float64{s[0], s[0]}
		}
	}

	names := store.Names()
	ansi := make([]asciigraph.AnsiColor, len(names))
	legend := make([]string, len(names))
	for i, n := range names {
		c := colors.Color(n)
		ansi[i] = asciigraph.AnsiColor(ANSI256(c))
		legend[i] = lipgloss.NewStyle().Foreground(c).Render("■ " + n)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(ansi...),
		asciigraph.Caption(fmt.Sprintf("log(1 + f) per iteration - %s", kind)),
	)
	return graph + "\n\n" + strings.Join(legend, "   ")
}

// ANSI256 maps a hex color onto the 6x6x6 cube of the xterm palette.
func ANSI256(c lipgloss.Color) uint8 {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 7
	}
	col = col.Clamped()
	q := func(v float64) int { return int(math.Round(v * 5)) }
	return uint8(16 + 36*q(col.R) + 6*q(col.G) + q(col.B))
}
