package config

import (
	_ "embed"
)

//go:embed defaults/vgacons.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			RefreshRate: 30,
			Theme:       "classic",
			Foreground:  "yellow",
			Background:  "black",
			ShowCursor:  true,
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKeyPath: "",
			IdleTimeout: 30,
		},
		Storage: StorageConfig{
			Path: "~/.vgacons/snapshots.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, for
// writing out a starter config.
func DefaultYAML() []byte {
	return defaultYAML
}
