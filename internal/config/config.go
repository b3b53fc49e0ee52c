// Package config loads, validates and writes trajviz settings.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/bench"
	"github.com/san-kum/trajviz/internal/field"
	"github.com/san-kum/trajviz/internal/layout"
	"github.com/san-kum/trajviz/internal/logging"
	"github.com/san-kum/trajviz/internal/render"
	"github.com/san-kum/trajviz/internal/theme"
)

// envPrefix maps nested keys like panel.width to TRAJVIZ_PANEL_WIDTH.
const envPrefix = "TRAJVIZ"

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Resolution   int               `mapstructure:"resolution" yaml:"resolution"`
	Pad          float64           `mapstructure:"pad" yaml:"pad"`
	TickInterval time.Duration     `mapstructure:"tick_interval" yaml:"tick_interval"`
	Theme        string            `mapstructure:"theme" yaml:"theme"`
	Layout       LayoutConfig      `mapstructure:"layout" yaml:"layout"`
	Panel        PanelConfig       `mapstructure:"panel" yaml:"panel"`
	Bench        BenchConfig       `mapstructure:"bench" yaml:"bench"`
	Colors       map[string]string `mapstructure:"colors" yaml:"colors,omitempty"`
	Log          logging.LogConfig `mapstructure:"log" yaml:"log"`
}

type LayoutConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"`
	Rows int    `mapstructure:"rows" yaml:"rows"`
	Cols int    `mapstructure:"cols" yaml:"cols"`
}

type PanelConfig struct {
	Width         int  `mapstructure:"width" yaml:"width"`
	Height        int  `mapstructure:"height" yaml:"height"`
	FillLevels    int  `mapstructure:"fill_levels" yaml:"fill_levels"`
	OutlineLevels int  `mapstructure:"outline_levels" yaml:"outline_levels"`
	ShowCounter   bool `mapstructure:"show_counter" yaml:"show_counter"`
}

type BenchConfig struct {
	Metrics  []string `mapstructure:"metrics" yaml:"metrics"`
	Height   int      `mapstructure:"height" yaml:"height"`
	ColWidth int      `mapstructure:"col_width" yaml:"col_width"`
}

func DefaultConfig() *Config {
	geo := render.DefaultGeometry()
	grid := layout.DefaultGrid()
	opts := bench.DefaultOptions()
	metrics := make([]string, len(bench.DefaultMetrics))
	for i, m := range bench.DefaultMetrics {
		metrics[i] = m.Key
	}
	return &Config{
		Resolution:   field.DefaultResolution,
		Pad:          field.DefaultPad,
		TickInterval: anim.DefaultInterval,
		Theme:        theme.Default.Name,
		Layout: LayoutConfig{
			Mode: string(grid.Mode),
			Rows: grid.Rows,
			Cols: grid.Cols,
		},
		Panel: PanelConfig{
			Width:         geo.Width,
			Height:        geo.Height,
			FillLevels:    geo.FillLevels,
			OutlineLevels: geo.OutlineLevels,
		},
		Bench: BenchConfig{
			Metrics:  metrics,
			Height:   opts.Height,
			ColWidth: opts.ColWidth,
		},
		Log: logging.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func newViper(d *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Env lookups only resolve keys viper already knows.
	v.SetDefault("resolution", d.Resolution)
	v.SetDefault("pad", d.Pad)
	v.SetDefault("tick_interval", d.TickInterval)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("layout.mode", d.Layout.Mode)
	v.SetDefault("layout.rows", d.Layout.Rows)
	v.SetDefault("layout.cols", d.Layout.Cols)
	v.SetDefault("panel.width", d.Panel.Width)
	v.SetDefault("panel.height", d.Panel.Height)
	v.SetDefault("panel.fill_levels", d.Panel.FillLevels)
	v.SetDefault("panel.outline_levels", d.Panel.OutlineLevels)
	v.SetDefault("panel.show_counter", d.Panel.ShowCounter)
	v.SetDefault("bench.metrics", d.Bench.Metrics)
	v.SetDefault("bench.height", d.Bench.Height)
	v.SetDefault("bench.col_width", d.Bench.ColWidth)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", []string{})
	return v
}

// Load reads the YAML file at path, applies TRAJVIZ_* environment overrides
// and defaults, and validates the result. An empty path skips the file.
// Color keys come back lowercased.
func Load(path string) (*Config, error) {
	return LoadPreset(path, "")
}

// LoadPreset is Load with the named preset applied to the defaults, so the
// file and the environment still override it. An empty name is no preset.
func LoadPreset(path, preset string) (*Config, error) {
	base := DefaultConfig()
	if preset != "" {
		if err := base.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	v := newViper(base)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %q", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "config: marshal")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "config: create %q", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "config: write %q", path)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalid, format, args...)
}

func (c *Config) Validate() error {
	if c.Resolution < 2 {
		return invalid("resolution %d, need at least 2", c.Resolution)
	}
	if c.Pad < 0 || math.IsNaN(c.Pad) || math.IsInf(c.Pad, 0) {
		return invalid("pad %v, need a finite value >= 0", c.Pad)
	}
	if c.TickInterval <= 0 {
		return invalid("tick_interval %s, need > 0", c.TickInterval)
	}
	if _, ok := theme.Get(c.Theme); !ok {
		return errors.WithHintf(invalid("theme %q", c.Theme),
			"available themes: %s", strings.Join(theme.Names(), ", "))
	}
	if err := c.Grid().Validate(); err != nil {
		return errors.Mark(err, ErrInvalid)
	}
	if c.Panel.Width < 4 || c.Panel.Height < 2 {
		return invalid("panel %dx%d, need at least 4x2", c.Panel.Width, c.Panel.Height)
	}
	if c.Panel.FillLevels < 1 || c.Panel.OutlineLevels < 1 {
		return invalid("fill_levels %d, outline_levels %d, need >= 1", c.Panel.FillLevels, c.Panel.OutlineLevels)
	}
	if len(c.Bench.Metrics) == 0 {
		return invalid("bench.metrics is empty")
	}
	return nil
}

// ThemeValue resolves the configured theme.
func (c *Config) ThemeValue() theme.Theme {
	t, _ := theme.Get(c.Theme)
	return t
}

func (c *Config) Grid() layout.Grid {
	return layout.Grid{
		Rows: c.Layout.Rows,
		Cols: c.Layout.Cols,
		Mode: layout.Mode(strings.ToLower(c.Layout.Mode)),
	}
}

func (c *Config) Geometry() render.Geometry {
	return render.Geometry{
		Width:         c.Panel.Width,
		Height:        c.Panel.Height,
		FillLevels:    c.Panel.FillLevels,
		OutlineLevels: c.Panel.OutlineLevels,
		ShowCounter:   c.Panel.ShowCounter,
	}
}

func (c *Config) Metrics() []bench.Metric {
	return bench.MetricsFor(c.Bench.Metrics)
}

func (c *Config) BenchOptions() bench.Options {
	return bench.Options{Height: c.Bench.Height, ColWidth: c.Bench.ColWidth}
}
