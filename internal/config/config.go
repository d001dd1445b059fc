// Package config loads tool configuration: the persisted settings file under
// the OS user config directory plus environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"invoicemaker/internal/logger"
)

// ErrNotConfigured is returned when no data root is configured yet; the
// config command sets one up.
var ErrNotConfigured = errors.New("data root not configured (run 'invoicemaker config')")

// Settings is the persisted configuration, stored as settings.yaml under the
// user config directory.
type Settings struct {
	// DataRoot is the business data directory holding data/clients,
	// templates, sender.yaml and the output tree. "~" expands to the
	// operator's home directory.
	DataRoot string `yaml:"data_root"`

	// VoidPaid admits already-paid invoices as void candidates. Off by
	// default: the historical policy only voids unpaid invoices.
	VoidPaid bool `yaml:"void_paid"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DataRoot string // expanded data root
	VoidPaid bool

	// Logging configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load resolves configuration from the settings file and environment.
// INVOICE_DATA_ROOT overrides the persisted data root; INVOICE_VOID_PAID
// ("true"/"1") overrides the void policy.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "warn"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	settings, err := LoadSettings()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if settings != nil {
		cfg.DataRoot = settings.DataRoot
		cfg.VoidPaid = settings.VoidPaid
	}

	if root := os.Getenv("INVOICE_DATA_ROOT"); root != "" {
		cfg.DataRoot = root
	}
	if v := os.Getenv("INVOICE_VOID_PAID"); v != "" {
		cfg.VoidPaid = v == "true" || v == "1"
	}

	if cfg.DataRoot == "" {
		return nil, ErrNotConfigured
	}
	cfg.DataRoot = ExpandHome(cfg.DataRoot)

	return cfg, nil
}

// OutputRoot is the directory holding the <year>/<client-id> invoice tree.
func (c *Config) OutputRoot() string {
	return filepath.Join(c.DataRoot, "output")
}

// ClientsDir is the directory holding per-client record folders.
func (c *Config) ClientsDir() string {
	return filepath.Join(c.DataRoot, "data", "clients")
}

// SenderPath is the sender profile file.
func (c *Config) SenderPath() string {
	return filepath.Join(c.DataRoot, "sender.yaml")
}

// GetLoggerConfig returns a logger configuration from the main config.
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// SettingsPath returns the settings file location under the OS user config
// directory, creating the directory if needed.
func SettingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	dir := filepath.Join(base, "invoicemaker")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// LoadSettings reads the persisted settings. A missing file yields
// os.ErrNotExist.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var settings Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &settings, nil
}

// SaveSettings persists the settings file.
func SaveSettings(settings *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the operator's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
