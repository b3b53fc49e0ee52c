package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the styling configuration for panels and charts. Switching
// themes never changes what is drawn, only its colors.
type Theme struct {
	Name       string
	Background lipgloss.Color // panel face
	Foreground lipgloss.Color // titles and labels
	Muted      lipgloss.Color // ticks and secondary text
	Border     lipgloss.Color // panel frames
	Accent     lipgloss.Color // start marker
	Outline    lipgloss.Color // contour outline overlay

	// Colormap runs from low to high field values.
	Colormap Colormap
	// FillAlpha blends the colormap over Background.
	FillAlpha float64

	// Palette is the default optimizer color assignment.
	Palette  map[string]lipgloss.Color
	Fallback lipgloss.Color
}

// Available themes
var (
	Light = Theme{
		Name:       "light",
		Background: lipgloss.Color("#f7f7f7"),
		Foreground: lipgloss.Color("#1a1a1a"),
		Muted:      lipgloss.Color("#555555"),
		Border:     lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#333333"),
		Outline:    lipgloss.Color("#ffffff"),
		Colormap: Colormap{ // Blues
			"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
			"#4292c6", "#2171b5", "#08519c", "#08306b",
		},
		FillAlpha: 0.75,
		Palette: map[string]lipgloss.Color{
			"vanilla gradient descent":    lipgloss.Color("#e6550d"),
			"gradient descent + momentum": lipgloss.Color("#756bb1"),
			"nesterov momentum":           lipgloss.Color("#31a354"),
		},
		Fallback: lipgloss.Color("#888888"),
	}

	Dark = Theme{
		Name:       "dark",
		Background: lipgloss.Color("#0d1117"),
		Foreground: lipgloss.Color("#e6edf3"),
		Muted:      lipgloss.Color("#8b949e"),
		Border:     lipgloss.Color("#30363d"),
		Accent:     lipgloss.Color("#f0f6fc"),
		Outline:    lipgloss.Color("#0d1117"),
		Colormap: Colormap{ // magma
			"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
			"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf",
		},
		FillAlpha: 0.75,
		Palette: map[string]lipgloss.Color{
			"vanilla gradient descent":    lipgloss.Color("#fd8d3c"),
			"gradient descent + momentum": lipgloss.Color("#9e9ac8"),
			"nesterov momentum":           lipgloss.Color("#74c476"),
		},
		Fallback: lipgloss.Color("#aaaaaa"),
	}

	Default = Light

	// All available themes
	Themes = []Theme{
		Light,
		Dark,
	}
)

// Get returns a theme by name.
func Get(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Default, false
}

// Next returns the theme after name, wrapping around.
func Next(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Default
}

// Names returns list of available theme names
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
