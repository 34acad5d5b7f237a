// Package logger provides structured logging for the linsolve CLI.
//
// The solver packages never log; only the command layer does, through the
// *slog.Logger built here.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/linsolve/internal/config"
)

// New builds a slog logger writing to w with the configured level and
// handler format ("text" or "json").
//
// An unknown level is reported as an error rather than silently defaulted;
// config validation normally rejects it earlier.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logger: invalid format %q", cfg.Format)
	}

	return slog.New(handler), nil
}
