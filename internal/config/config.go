package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvConfigPath = "TASKLANE_CONFIG"
	EnvDataDir    = "TASKLANE_DATA_DIR"
)

// Defaults for settings missing from the config file
const (
	DefaultLogLevel           = "info"
	DefaultTheme              = "light"
	DefaultCelebrationTimeout = 5 * time.Second
	DefaultServerAddr         = "127.0.0.1:7070"
	DefaultDatabaseFile       = "tasks.db"
	PreferencesFile           = "preferences.yaml"
)

// Config represents the application configuration
type Config struct {
	DataDir            string        `yaml:"data_dir"`
	Database           string        `yaml:"database"`
	LogLevel           string        `yaml:"log_level"`
	DefaultTheme       string        `yaml:"default_theme"`
	CelebrationTimeout time.Duration `yaml:"celebration_timeout"`
	Server             ServerConfig  `yaml:"server"`
	Colors             Colors        `yaml:"colors"`
	KeyMappings        KeyMappings   `yaml:"key_mappings"`

	path string
}

// ServerConfig configures `tasklane serve`
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a config with every default applied
func Default() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file at path. An empty path resolves to
// $TASKLANE_CONFIG, then the user's config directory.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		resolved, err := getConfigPath()
		if err != nil {
			// No home directory: run on defaults
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
		path = resolved
	}

	cfg := newConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path returns the file the config was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		path, err := getConfigPath()
		if err != nil {
			return err
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0o644)
}

// DatabasePath returns the SQLite database location
func (c *Config) DatabasePath() string {
	if c.Database == ":memory:" || filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(c.DataDir, c.Database)
}

// PreferencesPath returns the location of the preferences file
func (c *Config) PreferencesPath() string {
	return filepath.Join(c.DataDir, PreferencesFile)
}

// LogPath returns the location of the log file
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "tasklane.log")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasklane", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasklane", "config.yaml"), nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
}

// newConfig presets settings whose zero value is meaningful, so they only
// take the default when the file leaves them out
func newConfig() *Config {
	return &Config{CelebrationTimeout: DefaultCelebrationTimeout}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.DataDir = filepath.Join(home, ".tasklane")
		} else {
			c.DataDir = ".tasklane"
		}
	}
	if c.Database == "" {
		c.Database = DefaultDatabaseFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = DefaultTheme
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	c.Colors.applyDefaults()
	c.KeyMappings.applyDefaults()
}

func (c *Config) validate() error {
	switch c.DefaultTheme {
	case "light", "dark":
	default:
		return fmt.Errorf("invalid default_theme %q (must be: light, dark)", c.DefaultTheme)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (must be: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}
