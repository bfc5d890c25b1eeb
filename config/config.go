// Package config holds console preferences: the remote API location
// and a handful of rendering knobs. Values come from the YAML file in
// the state directory; environment variables override the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds operator preferences.
type Config struct {
	APIBaseURL     string `yaml:"api_base_url"`
	StorageBaseURL string `yaml:"storage_base_url"`
	PageSize       int    `yaml:"page_size"`
	PDFRowsPerPage int    `yaml:"pdf_rows_per_page"`
	PhotoMaxDim    int    `yaml:"photo_max_dimension"`
	PhotoQuality   int    `yaml:"photo_jpeg_quality"`
	ChromePath     string `yaml:"chrome_path"`
	HTTPTimeoutSec int    `yaml:"http_timeout_seconds"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		APIBaseURL:     "http://localhost:8000/api",
		StorageBaseURL: "http://localhost:8000/storage",
		PageSize:       10,
		PDFRowsPerPage: 22,
		PhotoMaxDim:    1920,
		PhotoQuality:   75,
		HTTPTimeoutSec: 30,
	}
}

// Dir returns the state directory (~/.salespulse, overridable with
// SALES_PULSE_HOME).
func Dir() (string, error) {
	if dir := os.Getenv("SALES_PULSE_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".salespulse"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk, falling back to defaults for
// a missing file, then applies environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path, err := File()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.PDFRowsPerPage <= 0 {
		cfg.PDFRowsPerPage = 22
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SALES_PULSE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SALES_PULSE_STORAGE_URL"); v != "" {
		cfg.StorageBaseURL = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv("SALES_PULSE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
