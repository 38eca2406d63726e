package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// DefaultConfigFile is the embedded defaults path.
const DefaultConfigFile = "assets/countdown_config.json"

// UI constants
const (
	FontSizeTime   float32 = 48.0
	FontSizeStatus float32 = 14.0

	WidgetWidth  = 220
	WidgetHeight = 90
	CornerRadius = 10.0
	WindowWidth  = 260
	WindowHeight = 220
)

var (
	BackgroundColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ForegroundColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ExpiredColor    = color.NRGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// Config holds the settings the countdown is built from. Field names are
// shared by the embedded JSON defaults and the YAML user file.
type Config struct {
	Duration       string  `json:"duration" yaml:"duration"`
	StartRunning   bool    `json:"start_running" yaml:"start_running"`
	TickIntervalMs int     `json:"tick_interval_ms" yaml:"tick_interval_ms"`
	Sound          bool    `json:"sound" yaml:"sound"`
	SoundFile      string  `json:"sound_file" yaml:"sound_file"`
	Volume         float64 `json:"volume" yaml:"volume"`
	Language       string  `json:"language" yaml:"language"`
}

// LoadConfig reads the embedded defaults.
func LoadConfig(reader AppContentReader) (*Config, error) {
	data, err := reader.ReadFile(DefaultConfigFile)
	if err != nil {
		return nil, fmt.Errorf("read default config: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal default config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	return cfg, nil
}

// UserConfigPath returns the location of the optional YAML override.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "countdown", "config.yaml"), nil
}

// ApplyFile overlays the YAML file at path onto c. A missing file is not an
// error; keys absent from the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	next := *c
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	*c = next
	return nil
}

// Validate checks that the configured values can build a countdown.
func (c *Config) Validate() error {
	if _, err := ParseDuration(c.Duration); err != nil {
		return err
	}
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	}
	return nil
}

// CountdownDuration returns the parsed duration. Call Validate first.
func (c *Config) CountdownDuration() time.Duration {
	d, _ := ParseDuration(c.Duration)
	return d
}

// TickInterval returns the tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// InitialStatus returns the status a fresh countdown starts in.
func (c *Config) InitialStatus() Status {
	if c.StartRunning {
		return StatusRunning
	}
	return StatusPaused
}
