package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pulseboard/internal/palette"
	"github.com/five82/pulseboard/internal/paths"
)

// Config captures the tunable parts of the dashboard.
type Config struct {
	ClockInterval    time.Duration
	ProgressInterval time.Duration
	LogFile          string
	Debug            bool
	Swatches         []palette.Swatch
}

const (
	defaultConfigPath       = "~/.config/pulseboard/config.toml"
	defaultLogFile          = "~/.local/state/pulseboard/pulseboard.log"
	defaultClockInterval    = time.Second
	defaultProgressInterval = 200 * time.Millisecond

	debugEnv = "PULSEBOARD_DEBUG"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ClockInterval:    defaultClockInterval,
		ProgressInterval: defaultProgressInterval,
		Swatches:         palette.Defaults(),
		Debug:            debugFromEnv(),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := paths.Resolve(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.finish(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ClockInterval    string           `toml:"clock_interval"`
		ProgressInterval string           `toml:"progress_interval"`
		LogFile          string           `toml:"log_file"`
		Debug            bool             `toml:"debug"`
		Swatches         []palette.Swatch `toml:"swatch"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ClockInterval, err = parseInterval("clock_interval", raw.ClockInterval, defaultClockInterval); err != nil {
		return Config{}, err
	}
	if cfg.ProgressInterval, err = parseInterval("progress_interval", raw.ProgressInterval, defaultProgressInterval); err != nil {
		return Config{}, err
	}

	if len(raw.Swatches) > 0 {
		if err := palette.Validate(raw.Swatches); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.Swatches = raw.Swatches
	}

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	cfg.Debug = cfg.Debug || raw.Debug

	return cfg.finish(), nil
}

// finish expands paths and enables the default log file in debug mode.
func (c Config) finish() Config {
	if c.LogFile == "" && c.Debug {
		c.LogFile = defaultLogFile
	}
	if c.LogFile != "" {
		c.LogFile = paths.MustExpand(c.LogFile)
	}
	return c
}

func parseInterval(field, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse config: %s must be positive, got %s", field, value)
	}
	return d, nil
}

func debugFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(debugEnv))) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
