package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DBPathEnv overrides the configured database path when set.
const DBPathEnv = "REPLAY_COMPANION_DB_PATH"

// Config represents the application configuration.
type Config struct {
	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// Asset configuration
	Assets AssetsConfig `toml:"assets"`

	// Display configuration
	Display DisplayConfig `toml:"display"`

	// API server configuration
	API APIConfig `toml:"api"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// StorageConfig contains database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"` // Path to the SQLite database
}

// AssetsConfig contains local image settings.
type AssetsConfig struct {
	Dir string `toml:"dir"` // Directory holding stock icons
}

// DisplayConfig controls how game details are rendered.
type DisplayConfig struct {
	TimestampLayout string `toml:"timestamp_layout"` // Go time layout for the "Time" detail
	Timezone        string `toml:"timezone"`         // IANA zone name, "Local" for system time
	ChartTheme      string `toml:"chart_theme"`      // go-echarts theme for exports
}

// APIConfig contains REST server settings.
type APIConfig struct {
	Port           int     `toml:"port"`             // Listen port
	RateLimit      float64 `toml:"rate_limit"`       // Requests per second (0 = unlimited)
	RateLimitBurst int     `toml:"rate_limit_burst"` // Token bucket burst
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: "",
		},
		Assets: AssetsConfig{
			Dir: "",
		},
		Display: DisplayConfig{
			TimestampLayout: "Jan 2, 2006 3:04 PM",
			Timezone:        "Local",
			ChartTheme:      "dark",
		},
		API: APIConfig{
			Port:           8080,
			RateLimit:      20,
			RateLimitBurst: 40,
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// Dir returns the application data directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".replay-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return configDir, nil
}

// Path returns the path to the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration at path. Returns default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config.applyEnv()
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Parse TOML over the defaults so omitted keys keep their default values
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	config.applyEnv()
	return config, nil
}

// Save saves the configuration to the default location.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Display.Timezone, err)
	}

	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api port out of range: %d", c.API.Port)
	}

	if c.API.RateLimit < 0 {
		return fmt.Errorf("rate limit cannot be negative: %v", c.API.RateLimit)
	}

	if c.API.RateLimit > 0 && c.API.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1: %d", c.API.RateLimitBurst)
	}

	return nil
}

// Location returns the configured display timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" || c.Display.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

// DatabasePath returns the configured database path, defaulting to the data directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "games.db"), nil
}

// AssetsDir returns the configured asset directory, defaulting to the data directory.
func (c *Config) AssetsDir() (string, error) {
	if c.Assets.Dir != "" {
		return c.Assets.Dir, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "images"), nil
}

func (c *Config) applyEnv() {
	if path := os.Getenv(DBPathEnv); path != "" {
		c.Storage.DBPath = path
	}
}
