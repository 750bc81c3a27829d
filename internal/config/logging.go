package config

import (
	"fmt"
	"io"
	"log/slog"
)

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	// Level: debug, info, warn, error.
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Format: json or text.
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg LoggingConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, cfg.Format)
	}
}
