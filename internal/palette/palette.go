// Package palette maps optimizer names to display colors. The same
// assignment colors the animation panels and the benchmark bars.
package palette

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/trajviz/internal/logging"
	"github.com/san-kum/trajviz/internal/theme"
)

// Assignment is an immutable name -> color table with a fallback for
// names it does not know.
type Assignment struct {
	colors   map[string]lipgloss.Color
	fallback lipgloss.Color
}

// New copies colors into a fresh Assignment.
func New(colors map[string]lipgloss.Color, fallback lipgloss.Color) Assignment {
	m := make(map[string]lipgloss.Color, len(colors))
	for k, v := range colors {
		m[k] = v
	}
	return Assignment{colors: m, fallback: fallback}
}

// FromTheme starts from the theme palette and applies overrides on top.
// Override keys are matched case-insensitively against the palette since
// config loaders lowercase map keys.
func FromTheme(t theme.Theme, overrides map[string]string) Assignment {
	a := New(t.Palette, t.Fallback)
	for name, hex := range overrides {
		if hex == "" {
			continue
		}
		key := name
		for known := range a.colors {
			if strings.EqualFold(known, name) {
				key = known
				break
			}
		}
		a.colors[key] = lipgloss.Color(hex)
	}
	return a
}

// Color returns the assigned color, or the fallback.
func (a Assignment) Color(name string) lipgloss.Color {
	if c, ok := a.colors[name]; ok {
		return c
	}
	return a.fallback
}

// Lookup reports whether name has an explicit assignment.
func (a Assignment) Lookup(name string) (lipgloss.Color, bool) {
	c, ok := a.colors[name]
	return c, ok
}

// Fallback is the color used for unassigned names.
func (a Assignment) Fallback() lipgloss.Color { return a.fallback }

// Names returns the assigned names, sorted.
func (a Assignment) Names() []string {
	names := make([]string, 0, len(a.colors))
	for k := range a.colors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Audit logs one warning per name without an assignment and returns them
// in input order, without duplicates.
func (a Assignment) Audit(log logging.Logger, names ...string) []string {
	var missing []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		if _, ok := a.colors[n]; ok {
			continue
		}
		missing = append(missing, n)
		log.Warn("missing color assignment",
			logging.String("optimizer", n),
			logging.String("fallback", string(a.fallback)))
	}
	return missing
}
