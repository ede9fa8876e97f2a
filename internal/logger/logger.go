package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// New creates a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Shorten time format
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})

	return slog.New(handler)
}

// Init builds the process logger and installs it as the slog default.
// The shell owns stdout, so records only go to logFile; without one they are
// discarded. The returned closer releases the log file.
func Init(level string, logFile string) (*slog.Logger, io.Closer, error) {
	logLevel, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if logFile == "" {
		log := slog.New(slog.DiscardHandler)
		slog.SetDefault(log)
		return log, nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := New(f, logLevel)
	slog.SetDefault(log)

	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
