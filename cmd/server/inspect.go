package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gapminder/internal/engine"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the dataset and print its derived index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		dash, err := loadDashboard(cfg)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), dash)
		return nil
	},
}

func printSummary(w io.Writer, dash *engine.Dashboard) {
	heading := color.New(color.FgCyan, color.Bold)
	ix := dash.Index()

	heading.Fprintln(w, "Dataset")
	fmt.Fprintf(w, "  %s\n", dash.Store())

	heading.Fprintln(w, "Continents")
	fmt.Fprintf(w, "  %s\n", strings.Join(ix.Continents, ", "))

	heading.Fprintln(w, "Years")
	years := make([]string, len(ix.Years))
	for i, y := range ix.Years {
		years[i] = strconv.Itoa(y)
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(years, ", "))

	heading.Fprintln(w, "Variables")
	for _, m := range engine.Variables {
		fmt.Fprintf(w, "  %-16s %s\n", m.Label(), m.Column())
	}
}
