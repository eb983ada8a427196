package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// CLIHandler is a slog.Handler writing one plain line per record, meant for
// the standard error of a CLI.
type CLIHandler struct {
	writer  io.Writer
	level   slog.Level
	prefix  string
	noColor bool
}

func NewCLIHandler(w io.Writer, level slog.Level) *CLIHandler {
	return &CLIHandler{
		writer: w,
		level:  level,
	}
}

// WithoutColor returns a copy of the handler that does not emit ANSI codes.
func (h *CLIHandler) WithoutColor() *CLIHandler {
	c := *h
	c.noColor = true
	return &c
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	if r.Level >= slog.LevelWarn {
		msg = r.Level.String() + ": " + msg
	}

	if r.NumAttrs() > 0 {
		var attrs []string
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		if len(attrs) > 0 {
			msg = msg + ": " + strings.Join(attrs, " ")
		}
	}

	if !h.noColor {
		switch {
		case r.Level >= slog.LevelError:
			msg = colorRed + msg + colorReset
		case r.Level >= slog.LevelWarn:
			msg = colorYellow + msg + colorReset
		default:
			msg = colorGreen + msg + colorReset
		}
	}

	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	return &CLIHandler{
		writer:  h.writer,
		level:   h.level,
		prefix:  name,
		noColor: h.noColor,
	}
}

// NewCLILogger creates a logger writing to w at the given level.
func NewCLILogger(w io.Writer, level string, color bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	h := NewCLIHandler(w, ParseLogLevel(level))
	if !color {
		h = h.WithoutColor()
	}
	return slog.New(h)
}

func SetDefaultCLILogger(w io.Writer, level string, color bool) {
	slog.SetDefault(NewCLILogger(w, level, color))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
