// Package config loads engine settings: built-in defaults, then an optional
// TOML or YAML file, then STRATA_* environment variables (a .env file in
// the working directory is read first if present).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/strata/engine/colors"
	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/logging"
)

// EnvPrefix prefixes every environment variable, e.g. STRATA_WINDOW_WIDTH.
const EnvPrefix = "STRATA"

// Config holds all engine configuration.
type Config struct {
	Window     WindowConfig   `toml:"window" yaml:"window"`
	Log        LogConfig      `toml:"log" yaml:"log"`
	Headless   HeadlessConfig `toml:"headless" yaml:"headless"`
	Metrics    MetricsConfig  `toml:"metrics" yaml:"metrics"`
	ClearColor colors.Color   `toml:"clear_color" yaml:"clear_color" envconfig:"CLEAR_COLOR"`
}

// WindowConfig holds window creation parameters.
type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  uint32 `toml:"width" yaml:"width"`
	Height uint32 `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

// HeadlessConfig runs the engine without a native window.
type HeadlessConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	// Frames before the headless window closes itself; 0 runs until closed.
	Frames int `toml:"frames" yaml:"frames"`
}

// MetricsConfig exposes profiler metrics over HTTP when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Default returns default configuration.
func Default() *Config {
	props := core.DefaultWindowProps()
	return &Config{
		Window: WindowConfig{
			Title:  props.Title,
			Width:  props.Width,
			Height: props.Height,
			VSync:  props.VSync,
		},
		Log: LogConfig{
			Level:       "debug",
			Development: true,
		},
		ClearColor: colors.DarkGray,
	}
}

// Load builds the configuration. path may be empty, in which case
// STRATA_CONFIG names the file, if set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("config %q: unsupported format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("decode config %q: %w", path, err)
	}
	return nil
}

// WindowProps converts the window section for core.New.
func (c *Config) WindowProps() core.WindowProps {
	return core.WindowProps{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		VSync:  c.Window.VSync,
	}
}

// Logging converts the log section for logging.Init.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
		OutputPaths: []string{"stdout"},
	}
}
