// Package log builds the configured slog.Logger for the daemon.
//
// Without a log file, non-error records go to stdout and errors to stderr,
// so redirections can split normal output from failures. With a log file,
// console output moves to stderr and the file receives everything.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LevelTrace is a custom level below Debug for very verbose output, such as
// per-report decoding notes and raw traffic dumps.
const LevelTrace slog.Level = -8

// ParseLevel maps the CLI level spelling to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to multiple handlers.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

// levelRange passes only records within [min, max] to the wrapped handler.
type levelRange struct {
	min, max slog.Level
	h        slog.Handler
}

func (f levelRange) Enabled(ctx context.Context, level slog.Level) bool {
	if level < f.min || level > f.max {
		return false
	}
	return f.h.Enabled(ctx, level)
}

func (f levelRange) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < f.min || r.Level > f.max {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelRange) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelRange{min: f.min, max: f.max, h: f.h.WithAttrs(attrs)}
}

func (f levelRange) WithGroup(name string) slog.Handler {
	return levelRange{min: f.min, max: f.max, h: f.h.WithGroup(name)}
}

const maxLevel = slog.Level(1 << 15)

// Setup builds the logger from the CLI log settings. The returned closers
// must be closed on shutdown when a log file is in use.
func Setup(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers []slog.Handler
	var closers []io.Closer

	if logFile == "" {
		handlers = append(handlers,
			levelRange{min: level, max: slog.LevelError - 1,
				h: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})},
			levelRange{min: slog.LevelError, max: maxLevel,
				h: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})},
		)
	} else {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, f)
		handlers = append(handlers,
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		)
	}

	return slog.New(multiHandler{hs: handlers}), closers, nil
}
