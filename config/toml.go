package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const tomlConfigFileName = "config.toml"

// TOMLConfig holds the fields the optional config.toml may override.
type TOMLConfig struct {
	ManifestPath     string `toml:"manifest_path"`
	TelemetryEnabled *bool  `toml:"telemetry_enabled"`
}

// LoadTOMLConfig reads <configdir>/config.toml. A missing file is not an
// error; (nil, nil) is returned so callers can skip the overlay.
func LoadTOMLConfig() (*TOMLConfig, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(configDir, tomlConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg TOMLConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
