// Package config loads the back-office profile: API endpoint,
// credentials, locale precedence and dashboard preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds one back-office profile.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Locale  LocaleConfig  `yaml:"locale"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`

	// Views are saved filter snapshots, name to encoded query string.
	// Restoring a view reproduces the same filtered listing.
	Views map[string]string `yaml:"views,omitempty"`
}

// APIConfig points the client at the server.
type APIConfig struct {
	Root    string        `yaml:"root"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// LocaleConfig lists the request-language sources in precedence order:
// content-translation override first, then the interface language, then
// the default. rest.ResolveLocale consumes them.
type LocaleConfig struct {
	TranslateContent string `yaml:"translate_content"`
	Interface        string `yaml:"interface"`
	Default          string `yaml:"default"`
}

// UIConfig tunes the dashboard.
type UIConfig struct {
	Theme      string `yaml:"theme"`       // "light" or "dark"
	DebounceMs int    `yaml:"debounce_ms"` // filter debounce window
	PageSize   int    `yaml:"page_size"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the defaults a missing file falls back to.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Locale: LocaleConfig{
			Default: "en-us",
		},
		UI: UIConfig{
			Theme:      "dark",
			DebounceMs: 300,
			PageSize:   20,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "backoffice.log",
		},
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".backoffice", "config.yaml")
}

// Load reads a profile from a YAML file. A missing file yields the
// defaults; environment variables override either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the profile back, creating the directory as needed.
// Used by `backoffice config init` and when saving filter views.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets CI and one-off shells point the client
// elsewhere without touching the profile file.
func (c *Config) applyEnvOverrides() {
	if root := os.Getenv("BACKOFFICE_API_ROOT"); root != "" {
		c.API.Root = root
	}
	if token := os.Getenv("BACKOFFICE_API_TOKEN"); token != "" {
		c.API.Token = token
	}
	if lang := os.Getenv("BACKOFFICE_LANGUAGE"); lang != "" {
		c.Locale.Interface = lang
	}
}

// SaveView records a filter snapshot under name.
func (c *Config) SaveView(name, query string) {
	if c.Views == nil {
		c.Views = make(map[string]string)
	}
	c.Views[name] = query
}
