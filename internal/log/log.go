// Package log configures structured logging for the dashboard using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ParseLevel maps a config level name to a slog level; unknown names are INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger.
//
//   - format "text": slog.TextHandler
//   - format "json": slog.JSONHandler
//   - format "auto": text when stderr is a terminal, JSON otherwise
//
// Output is written to stderr.
func Setup(level, format string) {
	slog.SetDefault(slog.New(NewHandler(stderr(), level, format, isTerminal())))
}

// NewHandler builds the handler Setup would install for w.
func NewHandler(w io.Writer, level, format string, tty bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if format == "json" || (format != "text" && !tty) {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func isTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stderr() io.Writer {
	return colorable.NewColorableStderr()
}
