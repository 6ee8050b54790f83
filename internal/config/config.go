package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/cofre/internal/database"
	"github.com/thenoetrevino/cofre/internal/secretstore"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string        `yaml:"database_path"`
	Secrets      SecretsConfig `yaml:"secrets"`
	LogLevel     string        `yaml:"log_level"`
	ColorScheme  ColorScheme   `yaml:"theme"`
}

// SecretsConfig selects the secret store medium
type SecretsConfig struct {
	Backend string `yaml:"backend"` // keyring or memory
	Service string `yaml:"service"` // keyring service name
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from COFRE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("COFRE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file.
// COFRE_CONFIG wins, then XDG_CONFIG_HOME, then ~/.config.
func Path() (string, error) {
	if explicit := os.Getenv("COFRE_CONFIG"); explicit != "" {
		return explicit, nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cofre", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "cofre", "config.yaml"), nil
}

// Validate rejects values no component can act on
func (c *Config) Validate() error {
	switch c.Secrets.Backend {
	case secretstore.KindKeyring, secretstore.KindMemory:
	default:
		return fmt.Errorf("unknown secrets.backend %q", c.Secrets.Backend)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a config level name to its slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q (must be: debug, info, warn, error)", level)
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		if path, err := database.DefaultPath(); err == nil {
			c.DatabasePath = path
		}
	}
	if c.Secrets.Backend == "" {
		c.Secrets.Backend = secretstore.KindKeyring
	}
	if c.Secrets.Service == "" {
		c.Secrets.Service = secretstore.DefaultService
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.ColorScheme.ApplyDefaults()
}
