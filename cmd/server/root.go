package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gapminder/internal/config"
	"gapminder/internal/dataset"
	"gapminder/internal/engine"
	dashlog "gapminder/internal/log"
)

// Global flag values.
var (
	configPath  string
	datasetPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the Gapminder analytics dashboard",
	Long: `server loads the Gapminder dataset once, then serves a dashboard with
a dataset table, ranked population / GDP / life expectancy bar charts and a
choropleth map, filterable by continent and year.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.FileName, "config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset CSV (default: bundled sample)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	addServeFlags(rootCmd.Flags())
	addServeFlags(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if datasetPath != "" {
		cfg.Dataset = datasetPath
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dashlog.Setup(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

// loadDashboard loads and indexes the configured dataset.
func loadDashboard(cfg *config.Config) (*engine.Dashboard, error) {
	var (
		store *engine.ColumnStore
		err   error
	)
	if cfg.Dataset == "" {
		slog.Debug("using bundled dataset", "source", dataset.Name)
		store, err = engine.LoadReader(dataset.Open())
	} else {
		store, err = engine.LoadColumnar(cfg.Dataset)
	}
	if err != nil {
		return nil, err
	}
	dash, err := engine.NewDashboard(store)
	if err != nil {
		return nil, err
	}
	if err := dash.ValidateDefaults(cfg.Defaults); err != nil {
		return nil, fmt.Errorf("defaults do not match dataset: %w", err)
	}
	return dash, nil
}
