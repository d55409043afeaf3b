// Package config loads user preferences from ~/.kakurc.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kaku/internal/canvas"
	"kaku/internal/history"
)

const (
	DefaultWidth        = canvas.MaxSize
	DefaultHeight       = canvas.MaxSize
	DefaultMessageTicks = 40
	FileName            = ".kakurc.yaml"
)

type Config struct {
	SaveDirectory string `yaml:"save_directory"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	HistoryDepth  int    `yaml:"history_depth"`
	Author        string `yaml:"author,omitempty"`
	TrimExport    bool   `yaml:"trim_export"`
	MessageTicks  int    `yaml:"message_ticks"`
	LogFile       string `yaml:"log_file,omitempty"`
}

func Default() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		HistoryDepth: history.DefaultDepth,
		TrimExport:   true,
		MessageTicks: DefaultMessageTicks,
	}
}

// DefaultPath returns ~/.kakurc.yaml, or "" when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadDefault reads ~/.kakurc.yaml. A missing file yields the defaults.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) normalize() {
	c.SaveDirectory = expandPath(c.SaveDirectory)
	c.LogFile = expandPath(c.LogFile)
	if c.Width <= 0 || c.Width > canvas.MaxSize {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 || c.Height > canvas.MaxSize {
		c.Height = DefaultHeight
	}
	if c.HistoryDepth < 1 {
		c.HistoryDepth = history.DefaultDepth
	}
	if c.MessageTicks < 1 {
		c.MessageTicks = DefaultMessageTicks
	}
}

func expandPath(value string) string {
	if value == "" {
		return ""
	}
	if value == "~" || strings.HasPrefix(value, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(home, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if abs, err := filepath.Abs(value); err == nil {
			value = abs
		}
	}
	return value
}

// SavePath places a bare file name in the save directory, creating it.
// Names that already carry a directory are returned unchanged.
func (c *Config) SavePath(name string) string {
	if c.SaveDirectory == "" || filepath.Base(name) != name {
		return name
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, name)
}
