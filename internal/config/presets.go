package config

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Presets are named starting points for the look of a session.
var Presets = map[string]func(*Config){
	"compact": func(c *Config) {
		c.Resolution = 150
		c.Panel.Width, c.Panel.Height = 28, 10
		c.Panel.FillLevels, c.Panel.OutlineLevels = 20, 10
	},
	"presentation": func(c *Config) {
		c.Theme = "dark"
		c.Panel.Width, c.Panel.Height = 48, 18
		c.TickInterval *= 2
	},
	"minimal": func(c *Config) {
		c.Layout.Mode = "hide"
		c.Layout.Rows, c.Layout.Cols = 1, 3
		c.Panel.ShowCounter = true
		c.Panel.FillLevels, c.Panel.OutlineLevels = 12, 6
	},
}

// GetPreset returns a default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overlays the named preset onto c.
func (c *Config) ApplyPreset(name string) error {
	apply, ok := Presets[name]
	if !ok {
		return errors.WithHintf(invalid("unknown preset %q", name),
			"available presets: %s", strings.Join(ListPresets(), ", "))
	}
	apply(c)
	return nil
}
