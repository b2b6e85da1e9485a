// Package logging builds the zap logger used across memok. Output goes to
// stderr by default so it never mixes with command output.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Supported formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Defaults used when the config leaves a field empty.
const (
	DefaultLevel  = "warn"
	DefaultFormat = FormatConsole
)

// ErrInvalidConfig is returned for an unknown level or format.
var ErrInvalidConfig = errors.New("invalid logging config")

// Config selects the minimum level and the encoder.
type Config struct {
	Level  string `mapstructure:"log_level" yaml:"log_level"`
	Format string `mapstructure:"log_format" yaml:"log_format"`
}

// Validate checks the level and format, treating empty values as defaults.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.format() {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
}

func (c Config) level() (zapcore.Level, error) {
	raw := c.Level
	if raw == "" {
		raw = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: level %q", ErrInvalidConfig, c.Level)
	}
	return lvl, nil
}

func (c Config) format() string {
	if c.Format == "" {
		return DefaultFormat
	}
	return strings.ToLower(c.Format)
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := cfg.level()
	core := zapcore.NewCore(newEncoder(cfg.format()), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("memok"), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// NewTestLogger returns a logger that records every entry at debug level
// and above, and the recorded entries.
func NewTestLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}
