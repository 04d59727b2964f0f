package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sablehq/deckhand/log"
)

const (
	ConfigFileName = "config.json"
	// NavStateDBName is the sqlite database holding persisted navigation
	// state (per-category collapse flags).
	NavStateDBName = "navstate.db"
	// ManifestFileName is the default app manifest consulted when the
	// config does not point elsewhere.
	ManifestFileName = "apps.toml"
)

// GetConfigDir returns the path to the application's configuration
// directory, XDG-compliant ~/.config/deckhand/.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "deckhand"), nil
}

// Config represents the application configuration
type Config struct {
	// PanelLocked pins the navigation panel open. Owned by the shell;
	// toggled by the dock/undock control and persisted across sessions.
	PanelLocked bool `json:"panel_locked"`
	// ManifestPath overrides the default app manifest location.
	ManifestPath string `json:"manifest_path,omitempty"`
	// ManifestPollInterval is the interval (ms) at which the registry
	// re-reads the manifest for link/group changes.
	ManifestPollInterval int `json:"manifest_poll_interval"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set.
	TelemetryEnabled *bool `json:"telemetry_enabled,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PanelLocked:          true,
		ManifestPollInterval: 2000,
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// Manifest returns the app manifest path, falling back to
// <configdir>/apps.toml when not overridden.
func (c *Config) Manifest() string {
	if c.ManifestPath != "" {
		return c.ManifestPath
	}
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return ManifestFileName
	}
	return filepath.Join(configDir, ManifestFileName)
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if config.ManifestPollInterval <= 0 {
		config.ManifestPollInterval = DefaultConfig().ManifestPollInterval
	}

	// Overlay TOML config if it exists (TOML is authority for its fields)
	tomlResult, tomlErr := LoadTOMLConfig()
	if tomlErr != nil {
		log.WarningLog.Printf("failed to load TOML config: %v", tomlErr)
	} else if tomlResult != nil {
		if tomlResult.ManifestPath != "" {
			config.ManifestPath = tomlResult.ManifestPath
		}
		if tomlResult.TelemetryEnabled != nil {
			config.TelemetryEnabled = tomlResult.TelemetryEnabled
		}
	}

	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
