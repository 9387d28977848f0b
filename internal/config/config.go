package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the persistent application configuration
type Config struct {
	// Catalog data locations
	Catalog CatalogConfig `json:"catalog"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// CatalogConfig holds catalog data locations
type CatalogConfig struct {
	// Dir is the directory containing the four catalog CSV files
	// (music_catalog.csv, meditation_catalog.csv, podcast_catalog.csv,
	// reading_catalog.csv)
	Dir string `json:"dir"`

	// DBPath is the sqlite snapshot written by `upliftctl import`.
	// Empty means the default under the data directory.
	DBPath string `json:"db_path,omitempty"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme string `json:"theme"`

	// TopN is how many recommendations to show per query
	TopN int `json:"top_n"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Dir: DataDir(),
		},
		UI: UIConfig{
			Theme: "dark",
			TopN:  3,
		},
	}
}

// DataDir returns the application data directory (~/.uplift)
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".uplift")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.AutoPopulateFromEnv()
	if cfg.UI.TopN <= 0 {
		cfg.UI.TopN = 3
	}
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AutoPopulateFromEnv applies environment variable overrides
func (c *Config) AutoPopulateFromEnv() {
	if dir := os.Getenv("UPLIFT_CATALOG_DIR"); dir != "" {
		c.Catalog.Dir = dir
	}
	if db := os.Getenv("UPLIFT_DB"); db != "" {
		c.Catalog.DBPath = db
	}
	if n := os.Getenv("UPLIFT_TOP_N"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			c.UI.TopN = v
		}
	}
}

// DBPath returns the configured sqlite snapshot path, or the default.
func (c *Config) DBPath() string {
	if c.Catalog.DBPath != "" {
		return c.Catalog.DBPath
	}
	return filepath.Join(DataDir(), "uplift.db")
}
