package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gapminder/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server (default command)",
	RunE:  runServe,
}

func addServeFlags(fs *pflag.FlagSet) {
	fs.String("addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	// Fail fast: no server is built until the dataset is loaded and indexed.
	t0 := time.Now()
	dash, err := loadDashboard(cfg)
	if err != nil {
		return err
	}
	slog.Info("dashboard ready",
		"rows", dash.Store().Len(),
		"continents", len(dash.Index().Continents),
		"years", len(dash.Index().Years),
		"elapsed", time.Since(t0))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := api.NewServer(cfg, dash)
	return api.Serve(ctx, e, cfg)
}
