package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/minivan/config"
)

// newLogger writes to stderr so bundles on stdout stay clean.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if strings.EqualFold(cfg.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
