// Package config provides YAML-based configuration loading for the
// vgacons toolkit.
package config

import (
	"fmt"

	"github.com/pkoval/vgacons/internal/vga"
)

// Config contains all configuration for the toolkit.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig controls the terminal viewer.
type DisplayConfig struct {
	RefreshRate int    `yaml:"refresh_rate"` // Viewer frames per second
	Theme       string `yaml:"theme"`        // Palette theme name
	Foreground  string `yaml:"foreground"`   // Initial pen, palette color name
	Background  string `yaml:"background"`
	ShowCursor  bool   `yaml:"show_cursor"`
}

// ServerConfig controls the SSH monitor server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key"`     // Auto-generated under ~/.vgacons if empty
	IdleTimeout int    `yaml:"idle_timeout"` // Minutes before idle sessions are dropped
}

// StorageConfig controls snapshot persistence.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Validate checks ranges and color names.
func (c *Config) Validate() error {
	if c.Display.RefreshRate < 1 || c.Display.RefreshRate > 120 {
		return fmt.Errorf("config: refresh_rate %d out of range 1-120", c.Display.RefreshRate)
	}
	if _, err := vga.ParseColor(c.Display.Foreground); err != nil {
		return fmt.Errorf("config: foreground: %w", err)
	}
	if _, err := vga.ParseColor(c.Display.Background); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: idle_timeout %d must not be negative", c.Server.IdleTimeout)
	}
	return nil
}

// Pen returns the configured initial pen colors.
func (c *Config) Pen() (fg, bg vga.Color, err error) {
	fg, err = vga.ParseColor(c.Display.Foreground)
	if err != nil {
		return 0, 0, fmt.Errorf("config: foreground: %w", err)
	}
	bg, err = vga.ParseColor(c.Display.Background)
	if err != nil {
		return 0, 0, fmt.Errorf("config: background: %w", err)
	}
	return fg, bg, nil
}
