// Package output handles everything gitwire writes: the JSON envelopes for
// machine callers, colorized text for humans, and the rotating debug log.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler writes bare messages to stderr, without timestamps or level
// prefixes. Debug records are dropped unless debug mode is on.
type consoleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *consoleHandler) WithGroup(_ string) slog.Handler      { return h }

// newLumberjackLogger builds the rotating file writer, with GITWIRE_LOG_*
// environment overrides.
func newLumberjackLogger(logFilePath string) *lumberjack.Logger {
	lj := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	if v := os.Getenv("GITWIRE_LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lj.MaxSize = n
		}
	}
	if v := os.Getenv("GITWIRE_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lj.MaxBackups = n
		}
	}
	if v := os.Getenv("GITWIRE_LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lj.MaxAge = n
		}
	}
	return lj
}

// NewLogger builds the process logger: plain messages on stderr plus, when
// logFile is set, structured debug records in a rotating file.
func NewLogger(logFile string, debug bool) *slog.Logger {
	console := &consoleHandler{writer: os.Stderr, debugMode: debug}
	if logFile == "" {
		return slog.New(console)
	}
	file := slog.NewTextHandler(newLumberjackLogger(logFile), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(&teeHandler{handlers: []slog.Handler{console, file}})
}

// teeHandler fans records out to multiple handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: hs}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: hs}
}
