// Package logging sets up the process-wide slog logger for the CLI
// (§7's "the core stays silent, the driver logs"). It is grounded on
// platform-engineering-labs-formae's internal/logging: a tint console
// handler for interactive runs, and an optional MultiLevelHandler that
// also fans out to a rotated log file via lumberjack when --log-file is
// given. Core packages (internal/format, internal/beautify,
// internal/enhance) never import this package or slog directly — they
// report through a diagnostics.Bag instead, so formatting a buffer in a
// library context never touches global logging state.
package logging

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the default slog logger for a CLI invocation. When
// logFile is empty, only the colorized console handler is installed;
// otherwise a MultiLevelHandler fans every record out to both the
// console and a rotated file.
func Setup(verbose bool, logFile string) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	console := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	if logFile == "" {
		slog.SetDefault(slog.New(console))
		return
	}

	lumber := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}
	file := tint.NewHandler(lumber, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	})

	slog.SetDefault(slog.New(&MultiLevelHandler{console: console, file: file}))
}

// MultiLevelHandler fans a slog.Record out to a console handler and a
// file handler, each with its own level.
type MultiLevelHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (h *MultiLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *MultiLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.console.Enabled(ctx, r.Level) {
		if err := h.console.Handle(ctx, r); err != nil {
			return err
		}
	}
	if h.file.Enabled(ctx, r.Level) {
		if err := h.file.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *MultiLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MultiLevelHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *MultiLevelHandler) WithGroup(name string) slog.Handler {
	return &MultiLevelHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}
