package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/menengai/edge/pkg/environment"
)

type Config struct {
	Service string `env:"LOG_SERVICE" envDefault:"edge-gateway"` // Service is attached to every record.
	Level   string `env:"LOG_LEVEL" envDefault:""`               // Level overrides the mode default (debug, info, warn, error).
	Format  string `env:"LOG_FORMAT" envDefault:""`              // Format overrides the mode default (json, text).
}

// NewFromConfig creates a logger with mode defaults overridden by non-empty config values.
func NewFromConfig(cfg Config, mode environment.Mode, opts ...Option) (*slog.Logger, error) {
	configOpts := []Option{WithMode(mode, cfg.Service)}

	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		configOpts = append(configOpts, WithLevel(level))
	}
	switch Format(strings.ToLower(cfg.Format)) {
	case "":
	case FormatJSON:
		configOpts = append(configOpts, WithJSONFormatter())
	case FormatText:
		configOpts = append(configOpts, WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...), nil
}
