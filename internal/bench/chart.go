package bench

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/theme"
)

// MissingLabel marks a bar whose record lacks the metric.
const MissingLabel = "-"

// Bar is one optimizer's column in a chart.
type Bar struct {
	Optimizer string
	Value     float64
	Present   bool
	Label     string
	Color     lipgloss.Color
}

// Chart is the drawing model of one metric across all records.
type Chart struct {
	Metric Metric
	Bars   []Bar
	Max    float64
}

// Build computes bars in record order. Unassigned optimizers get the
// fallback color.
func Build(records []Record, metric Metric, colors palette.Assignment) Chart {
	c := Chart{Metric: metric, Bars: make([]Bar, 0, len(records))}
	for _, r := range records {
		b := Bar{Optimizer: r.Optimizer, Label: MissingLabel, Color: colors.Color(r.Optimizer)}
		v, ok := r.Value(metric.Key)
		switch {
		case !ok || math.IsNaN(v):
		case math.IsInf(v, 0):
			// labelled but not drawn, and kept out of the scale
			b.Value, b.Label = v, FormatValue(v)
		default:
			b.Value, b.Present, b.Label = v, true, FormatValue(v)
			if v > c.Max {
				c.Max = v
			}
		}
		c.Bars = append(c.Bars, b)
	}
	return c
}

// Heights scales bars onto rows cells. Any positive value gets at least one.
func (c Chart) Heights(rows int) []int {
	out := make([]int, len(c.Bars))
	if c.Max <= 0 || math.IsInf(c.Max, 0) {
		return out
	}
	for i, b := range c.Bars {
		if !b.Present || b.Value <= 0 {
			continue
		}
		h := int(math.Round(b.Value / c.Max * float64(rows)))
		if h < 1 {
			h = 1
		}
		out[i] = h
	}
	return out
}

// Options size the bar charts.
type Options struct {
	// Height is the number of rows of the tallest bar.
	Height int
	// ColWidth is the width of one optimizer's column.
	ColWidth int
}

func DefaultOptions() Options {
	return Options{Height: 12, ColWidth: 12}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Height < 1 {
		o.Height = d.Height
	}
	if o.ColWidth < 3 {
		o.ColWidth = d.ColWidth
	}
	return o
}

// Render draws one bar chart per metric side by side under a heading.
func Render(records []Record, metrics []Metric, colors palette.Assignment, th theme.Theme, opts Options) string {
	opts = opts.withDefaults()
	charts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		charts = append(charts, drawChart(Build(records, m, colors), th, opts))
	}

	function := ""
	if len(records) > 0 {
		function = records[0].Function
	}
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(th.Foreground).
		Render(fmt.Sprintf("Benchmark Comparison - %s", function))

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		lipgloss.JoinHorizontal(lipgloss.Top, charts...),
	)
}

func drawChart(c Chart, th theme.Theme, opts Options) string {
	w := opts.ColWidth
	heights := c.Heights(opts.Height)
	text := lipgloss.NewStyle().Foreground(th.Foreground)
	barWidth := w / 2

	var lines []string
	for level := opts.Height + 1; level >= 1; level-- {
		var row strings.Builder
		for i, b := range c.Bars {
			cell := ""
			switch {
			case heights[i] >= level:
				cell = lipgloss.NewStyle().Foreground(b.Color).Render(strings.Repeat("█", barWidth))
			case heights[i]+1 == level:
				cell = text.Render(abbreviate(b.Label, w))
			}
			row.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, cell))
		}
		lines = append(lines, row.String())
	}

	axis := lipgloss.NewStyle().Foreground(th.Border).Render(strings.Repeat("─", w*len(c.Bars)))
	lines = append(lines, axis)

	labels := make([][]string, len(c.Bars))
	depth := 0
	for i, b := range c.Bars {
		labels[i] = WrapName(b.Optimizer, w)
		if len(labels[i]) > depth {
			depth = len(labels[i])
		}
	}
	for d := 0; d < depth; d++ {
		var row strings.Builder
		for i := range c.Bars {
			cell := ""
			if d < len(labels[i]) {
				cell = labels[i][d]
			}
			row.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, text.Render(cell)))
		}
		lines = append(lines, row.String())
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(th.Foreground).Render(c.Metric.Label)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, strings.Join(lines, "\n")))
}

// WrapName splits an optimizer name on spaces, one word per line, each
// abbreviated to width.
func WrapName(name string, width int) []string {
	words := strings.Fields(name)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = abbreviate(w, width)
	}
	return out
}

func abbreviate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "."
}
