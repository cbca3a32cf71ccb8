// Package logger configures the process-wide slog logger: a console handler
// and an optional rotating log file.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lmaotrigine/diceroll/internal/errors"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level" env:"LEVEL"`
	Format         string `yaml:"format" env:"FORMAT"`
	FileEnabled    bool   `yaml:"file_enabled" env:"FILE_ENABLED"`
	FilePath       string `yaml:"file_path" env:"FILE_PATH"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb" env:"FILE_MAX_SIZE_MB"`
	FileMaxBackups int    `yaml:"file_max_backups" env:"FILE_MAX_BACKUPS"`
	FileMaxAgeDays int    `yaml:"file_max_age_days" env:"FILE_MAX_AGE_DAYS"`
}

// DefaultConfig returns warn-level text logging with no file output
func DefaultConfig() Config {
	return Config{
		Level:          "WARN",
		Format:         "text",
		FilePath:       "logs/diceroll.log",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// Validate checks the level and format names and the rotation limits
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Level", strings.ToUpper(c.Level), []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"}, vb)
	errors.ValidateEnum("Format", c.Format, []string{"text", "json"}, vb)
	if c.FileEnabled {
		if c.FilePath == "" {
			vb.RequiredField("FilePath")
		}
		errors.ValidateMin("FileMaxSizeMB", c.FileMaxSizeMB, 1, vb)
		errors.ValidateMin("FileMaxBackups", c.FileMaxBackups, 0, vb)
		errors.ValidateMin("FileMaxAgeDays", c.FileMaxAgeDays, 0, vb)
	}

	return vb.Build()
}

// New builds a logger writing to console and, when enabled, to a rotating
// file. The returned closer releases the file and is never nil.
func New(cfg Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid logging config")
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	handlers := []slog.Handler{newHandler(cfg.Format, console, opts)}

	var closer io.Closer = nopCloser{}
	if cfg.FileEnabled {
		logFile := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, newHandler(cfg.Format, logFile, opts))
		closer = logFile
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(newMultiHandler(handlers...)), closer, nil
}

// Initialize builds a logger with New and installs it as the slog default
func Initialize(cfg Config, console io.Writer) (io.Closer, error) {
	l, closer, err := New(cfg, console)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)
	return closer, nil
}

func newHandler(format string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// parseLogLevel converts a level name to slog.Level, defaulting to INFO
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler fans each record out to every handler enabled for its level
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return newMultiHandler(handlers...)
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return newMultiHandler(handlers...)
}
