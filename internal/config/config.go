package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/DipperMason/desk-calculator/internal/calculator"
)

const appName = "desk-calculator"

// Environment variables overriding the config file.
const (
	EnvLogLevel     = "CALCULATOR_LOG_LEVEL"
	EnvLogPath      = "CALCULATOR_LOG_PATH"
	EnvSettingsPath = "CALCULATOR_SETTINGS_PATH"
)

// Config represents application configuration
type Config struct {
	AngleUnit    string `json:"angle_unit"`    // degrees or radians, used when no preference is stored
	SettingsPath string `json:"settings_path"` // sqlite preference store, "" disables it
	LogLevel     string `json:"log_level"`     // debug, info, warn, error, none
	LogPath      string `json:"log_path"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, appName)
		}
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, appName)
		}
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appName)
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, appName)
		}
	default:
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, appName)
		}
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", appName)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	stateDir := defaultStateDir()
	return &Config{
		AngleUnit:    calculator.Degrees.String(),
		SettingsPath: filepath.Join(stateDir, "preferences.db"),
		LogLevel:     "info",
		LogPath:      filepath.Join(stateDir, appName+".log"),
	}
}

// GetConfigPath returns the default location of config.json.
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok {
		c.LogPath = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvSettingsPath); ok {
		c.SettingsPath = strings.TrimSpace(v)
	}
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if _, err := c.Unit(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Unit returns the configured default angle unit.
func (c *Config) Unit() (calculator.AngleUnit, error) {
	if c.AngleUnit == "" {
		return calculator.Degrees, nil
	}
	return calculator.ParseAngleUnit(c.AngleUnit)
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
