package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/opcalc/internal/calculator"
	"github.com/san-kum/opcalc/internal/config"
	"github.com/san-kum/opcalc/internal/sweep"
	"github.com/san-kum/opcalc/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	theme      string
	verbose    bool
	preset     string
	variant    string
	width      int
	height     int
	csvOut     string
)

// main registers the opcalc commands and runs the demo when no subcommand is
// given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "opcalc",
		Short:        "named-operation calculator lab",
		SilenceUsage: true,
		RunE:         runDemo,
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario set")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the configured scenarios",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVar(&preset, "preset", "", "use a built-in scenario set")

	opsCmd := &cobra.Command{
		Use:       "ops [variant]",
		Short:     "list operations per calculator variant",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: calculator.Variants(),
		RunE:      listOperations,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "sweep an operation and plot it",
		Args:  cobra.NoArgs,
		RunE:  plotSweep,
	}
	plotCmd.Flags().IntVar(&width, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&height, "height", 15, "plot height")
	plotCmd.Flags().StringVar(&csvOut, "csv", "", "also write the sweep to a csv file")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE:  runREPL,
	}
	replCmd.Flags().StringVar(&variant, "variant", "", "calculator variant (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenario sets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s (%d scenarios)\n", p, len(config.Presets[p]))
			}
		},
	}

	rootCmd.AddCommand(demoCmd, opsCmd, plotCmd, replCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when set and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, viz.Styles, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, viz.Styles{}, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("config loaded", "path", configFile, "scenarios", len(cfg.Scenarios))
	}

	if cmd.Flags().Changed("theme") || configFile == "" {
		cfg.Theme = theme
	}
	t, err := viz.GetTheme(cfg.Theme)
	if err != nil {
		return nil, viz.Styles{}, err
	}

	return cfg, viz.NewStyles(t), nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, styles, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if preset != "" {
		scenarios := config.GetPreset(preset)
		if scenarios == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Scenarios = scenarios
	}

	failures, err := runScenarios(os.Stdout, cfg, styles)
	if err != nil {
		return err
	}

	slog.Debug("demo finished", "scenarios", len(cfg.Scenarios), "failures", failures)
	return nil
}

func listOperations(cmd *cobra.Command, args []string) error {
	_, styles, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names := calculator.Variants()
	if len(args) == 1 {
		names = args
	}

	return writeOperations(os.Stdout, names, styles)
}

func plotSweep(cmd *cobra.Command, args []string) error {
	cfg, styles, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	calc, err := calculator.Variant(cfg.SweepVariant())
	if err != nil {
		return err
	}

	s := sweep.Sweep{
		Operation: cfg.Sweep.Operation,
		From:      cfg.Sweep.From,
		To:        cfg.Sweep.To,
		Steps:     cfg.Sweep.Steps,
		Value2:    cfg.Sweep.Value2,
	}
	slog.Debug("running sweep", "operation", s.Operation, "from", s.From, "to", s.To, "steps", s.Steps)

	res, err := s.Run(calc)
	if err != nil {
		return err
	}

	fmt.Println(styles.Plot(res, width, height))
	fmt.Println(styles.Sparkline(res.Ys(), width))

	if csvOut != "" {
		if err := res.ExportCSV(csvOut); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
		slog.Info("sweep exported", "path", csvOut, "points", len(res.Points))
	}
	return nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, styles, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := cfg.Variant
	if variant != "" {
		name = variant
	}
	calc, err := calculator.Variant(name)
	if err != nil {
		return err
	}

	return viz.RunREPL(calc, name, styles)
}
