package ggui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggui/buffer"
	"github.com/gogpu/ggui/paint"
)

// ErrInvalidConfig is returned for configurations that fail validation.
var ErrInvalidConfig = errors.New("ggui: invalid config")

// Duration is a time.Duration written as a Go duration string ("50ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the tunables of a window. It is usually read from a TOML
// file:
//
//	title = "demo"
//	frame_cap = "50ms"
//	frame_interval = "16ms"
//	pool_size = 4194304
//	max_pool_size = 268435456
//	background = "#202020"
//	log_level = "debug"
type Config struct {
	Title         string   `toml:"title"`
	FrameCap      Duration `toml:"frame_cap"`
	FrameInterval Duration `toml:"frame_interval"`
	PoolSize      int      `toml:"pool_size"`
	MaxPoolSize   int      `toml:"max_pool_size"`
	Background    string   `toml:"background"`
	LogLevel      string   `toml:"log_level"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Title:         "ggui",
		FrameCap:      Duration{DefaultFrameCap},
		FrameInterval: Duration{DefaultFrameInterval},
		PoolSize:      buffer.DefaultSize,
		MaxPoolSize:   buffer.DefaultMaxSize,
		Background:    "#ffffff",
		LogLevel:      "warn",
	}
}

// ParseConfig decodes TOML over the defaults and validates the result.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ggui: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks field ranges.
func (c Config) Validate() error {
	var errs []error
	if c.FrameCap.Duration <= 0 {
		errs = append(errs, fmt.Errorf("frame_cap must be positive, got %v", c.FrameCap))
	}
	if c.FrameInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("frame_interval must be positive, got %v", c.FrameInterval))
	}
	if c.PoolSize <= 0 {
		errs = append(errs, fmt.Errorf("pool_size must be positive, got %d", c.PoolSize))
	}
	if c.MaxPoolSize < c.PoolSize {
		errs = append(errs, fmt.Errorf("max_pool_size %d is below pool_size %d", c.MaxPoolSize, c.PoolSize))
	}
	if _, err := paint.ParseHex(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// BackgroundColor returns the parsed background, white when unparsable.
func (c Config) BackgroundColor() paint.RGBA {
	col, err := paint.ParseHex(c.Background)
	if err != nil {
		return paint.White
	}
	return col
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
