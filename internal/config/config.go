package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the optional preroll configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Timings  TimingsConfig  `toml:"timings"`
	Theme    ThemeConfig    `toml:"theme"`
}

// DefaultsConfig holds persistent flag defaults.
type DefaultsConfig struct {
	TUI        *bool   `toml:"tui"`
	MediaURL   *string `toml:"media_url"`
	CellWidth  *int    `toml:"cell_width"`
	Bitrate    *string `toml:"bitrate"`
	ReadyBytes *string `toml:"ready_bytes"`
}

// TimingsConfig overrides sequence durations, in milliseconds.
type TimingsConfig struct {
	Compact         *int `toml:"compact_ms"`
	Medium          *int `toml:"medium_ms"`
	MediaCap        *int `toml:"media_cap_ms"`
	CompactProgress *int `toml:"compact_progress_ms"`
	MediumProgress  *int `toml:"medium_progress_ms"`
	Frame           *int `toml:"frame_ms"`
}

// ThemeConfig holds optional color overrides.
type ThemeConfig struct {
	Green  *string `toml:"green"`
	Blue   *string `toml:"blue"`
	Yellow *string `toml:"yellow"`
	Red    *string `toml:"red"`
	Teal   *string `toml:"teal"`
	Mauve  *string `toml:"mauve"`
	Muted  *string `toml:"muted"`
	Dim    *string `toml:"dim"`
	Bright *string `toml:"bright"`
}

// Millis converts an optional millisecond value to a Duration; unset is 0.
func Millis(ms *int) time.Duration {
	if ms == nil || *ms <= 0 {
		return 0
	}
	return time.Duration(*ms) * time.Millisecond
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "preroll", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path. A missing file yields a zero Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return cfg, nil
}
