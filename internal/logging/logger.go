// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Logger provides structured logging capabilities.
type Logger struct {
	*slog.Logger
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
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

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return &Logger{Logger: slog.New(handler)}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))}
}

// WithCrawler returns a logger tagged with the crawler kind.
func (l *Logger) WithCrawler(kind string) *Logger {
	return &Logger{Logger: l.With(slog.String("crawler", kind))}
}

// WithRoot returns a logger tagged with the crawl root.
func (l *Logger) WithRoot(root string) *Logger {
	return &Logger{Logger: l.With(slog.String("root", root))}
}
