// Package logging installs the process-wide structured logger
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/focusflow/internal/config"
)

// Level maps a config log level to its slog counterpart. Unknown values
// fall back to info.
func Level(s string) slog.Level {
	switch strings.ToLower(s) {
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

// NewHandler returns a JSON handler writing to w at the configured level.
func NewHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(cfg.Level),
	})
}

// Setup makes a JSON logger writing to a rotated file at path the default
// logger. The returned closer releases the file.
func Setup(path string, cfg config.LogConfig) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	slog.SetDefault(slog.New(NewHandler(w, cfg)))

	return w
}
