// Package logger configures the process-wide slog logger used by the
// command line and the web server.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config selects level, format and destination.
type Config struct {
	Level  string    // debug, info, warn, error
	JSON   bool      // JSON lines instead of key=value text
	Writer io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// Setup builds a logger from cfg, installs it as the package and slog
// default, and returns it.
func Setup(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}

			return a
		},
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	return l, nil
}

// L returns the logger installed by the last Setup, or a discarding one.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
