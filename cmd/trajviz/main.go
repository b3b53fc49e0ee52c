package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajviz/internal/anim"
	"github.com/san-kum/trajviz/internal/bench"
	"github.com/san-kum/trajviz/internal/config"
	"github.com/san-kum/trajviz/internal/dataset"
	"github.com/san-kum/trajviz/internal/field"
	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/logging"
	"github.com/san-kum/trajviz/internal/palette"
	"github.com/san-kum/trajviz/internal/theme"
	"github.com/san-kum/trajviz/internal/tui"
)

var (
	trajectoryPath string
	resultsPath    string
	configFile     string
	logLevel       string
	preset         string
	// Look overrides
	themeName  string
	layoutMode string
	interval   time.Duration
	resolution int
	counter    bool
	// Command specific
	plain     bool
	frameNum  int
	metrics   []string
	overwrite bool
)

var (
	settings *config.Config
	log      logging.Logger = logging.NewNop()
)

// main runs the animation when no subcommand is given. Errors are printed
// with their hints and exit with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "trajviz",
		Short:             "animate optimizer trajectories over a 2d landscape",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runAnimate,
	}

	rootCmd.PersistentFlags().StringVar(&trajectoryPath, "trajectory", "trajectory.csv", "trajectory table (function,optimizer,x,y)")
	rootCmd.PersistentFlags().StringVar(&resultsPath, "results", "results.csv", "benchmark results table")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", theme.Default.Name, "color theme")
	lookFlags(rootCmd)
	rootCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI playback instead of the interactive view")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "animate the trajectories",
		RunE:  runAnimate,
	}
	lookFlags(animateCmd)
	animateCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI playback instead of the interactive view")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "print a single frame and exit",
		RunE:  runFrame,
	}
	lookFlags(frameCmd)
	frameCmd.Flags().IntVar(&frameNum, "frame", -1, "frame to print (-1 for the last)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark bar charts and convergence plot",
		RunE:  runBench,
	}
	benchCmd.Flags().StringSliceVar(&metrics, "metrics", nil, "results columns to chart")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "tabular results summary",
		RunE:  runSummary,
	}

	landscapesCmd := &cobra.Command{
		Use:   "landscapes",
		Short: "list supported landscapes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range landscape.Names() {
				fmt.Println(n)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range theme.Names() {
				fmt.Println(n)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the current configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configInitCmd.Flags().BoolVar(&overwrite, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(animateCmd, frameCmd, benchCmd, summaryCmd, landscapesCmd, themesCmd, presetsCmd, configCmd)
	return rootCmd
}

func lookFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&layoutMode, "mode", "counter", "spare slots: counter or hide")
	cmd.Flags().DurationVar(&interval, "interval", anim.DefaultInterval, "tick interval")
	cmd.Flags().IntVar(&resolution, "resolution", field.DefaultResolution, "field samples per axis")
	cmd.Flags().BoolVar(&counter, "counter", false, "show the iteration counter in every panel")
}

// setup loads the configuration, applies changed flags on top and builds
// the logger.
func setup(cmd *cobra.Command, args []string) error {
	// Load config file if specified (overrides preset)
	cfg, err := config.LoadPreset(configFile, preset)
	if err != nil {
		return err
	}

	// CLI flags override config
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		cfg.Layout.Mode = layoutMode
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		cfg.TickInterval = interval
	}
	if flags.Lookup("resolution") != nil && flags.Changed("resolution") {
		cfg.Resolution = resolution
	}
	if flags.Lookup("counter") != nil && flags.Changed("counter") {
		cfg.Panel.ShowCounter = counter
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Lookup("metrics") != nil && flags.Changed("metrics") {
		cfg.Bench.Metrics = metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	settings, log = cfg, l.Named("trajviz")
	log.Debug("configuration loaded",
		logging.String("config", configFile),
		logging.String("theme", cfg.Theme),
		logging.Int("resolution", cfg.Resolution),
		logging.Duration("interval", cfg.TickInterval))
	return nil
}

func newSession() (*tui.Session, error) {
	store, err := dataset.LoadTrajectories(trajectoryPath)
	if err != nil {
		return nil, err
	}
	kind, err := landscape.Resolve(store.Landscape())
	if err != nil {
		return nil, err
	}
	return tui.NewSession(store, kind, tui.Options{
		Theme:      settings.ThemeValue(),
		Colors:     settings.Colors,
		Resolution: settings.Resolution,
		Pad:        settings.Pad,
		Geometry:   settings.Geometry(),
		Grid:       settings.Grid(),
		Interval:   settings.TickInterval,
		Cache:      field.NewCache(),
		Log:        log,
	})
}

func runAnimate(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	if plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		r := tui.NewPlainRenderer(os.Stdout, s)
		err := r.Play(ctx, settings.TickInterval)
		log.Info("playback done", logging.Int("frames", r.Frames()))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "interactive session")
	}
	return nil
}

func runFrame(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	n := frameNum
	if n < 0 {
		n = s.Store.MaxLen() - 1
	}
	fmt.Println(s.Snapshot(n))
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	records, err := dataset.LoadResults(resultsPath)
	if err != nil {
		return err
	}
	th := settings.ThemeValue()
	colors := palette.FromTheme(th, settings.Colors)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Optimizer
	}
	colors.Audit(log, names...)

	fmt.Println(bench.Render(records, settings.Metrics(), colors, th, settings.BenchOptions()))

	store, err := dataset.LoadTrajectories(trajectoryPath)
	if err != nil {
		log.Warn("convergence chart skipped", logging.Err(err))
		return nil
	}
	kind, err := landscape.Resolve(store.Landscape())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(bench.Convergence(store, kind, colors, bench.DefaultConvergenceOptions()))
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	records, err := dataset.LoadResults(resultsPath)
	if err != nil {
		return err
	}
	if err := bench.Summary(os.Stdout, records); err != nil {
		return err
	}

	store, err := dataset.LoadTrajectories(trajectoryPath)
	if err != nil {
		log.Debug("trajectory diagnostics skipped", logging.Err(err))
		return nil
	}
	kind, err := landscape.Resolve(store.Landscape())
	if err != nil {
		return err
	}
	fmt.Printf("\ntrajectory diagnostics (%s)\n", kind)
	return bench.Summary(os.Stdout, bench.FromStore(store, kind))
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "trajviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}
	if err := config.Save(path, settings); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
