package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"multiselect/internal/domain"
)

// EnvPrefix is the prefix of environment overrides, e.g. MULTISELECT_TITLE
const EnvPrefix = "MULTISELECT"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = EnvPrefix + "_CONFIG"

// MinWidth is the narrowest widget width accepted from config
const MinWidth = 16

// Config represents the demo configuration
type Config struct {
	Title       string            `mapstructure:"title" toml:"title"`
	Label       string            `mapstructure:"label" toml:"label"`
	Placeholder string            `mapstructure:"placeholder" toml:"placeholder"`
	Width       int               `mapstructure:"width" toml:"width"`
	MaxVisible  int               `mapstructure:"max_visible" toml:"max_visible"`
	Options     domain.OptionList `mapstructure:"options" toml:"options"`
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	return &Config{
		Title:       "Custom MultiSelect Example",
		Label:       "Choose Options",
		Placeholder: "Select...",
		Width:       40,
		MaxVisible:  5,
		Options: domain.OptionList{
			{Value: "option1", Label: "Option 1"},
			{Value: "option2", Label: "Option 2"},
			{Value: "option3", Label: "Option 3"},
			{Value: "option4", Label: "Option 4"},
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multiselect", "config.toml")
}

// ResolvePath picks the config file: explicit path, then $MULTISELECT_CONFIG,
// then DefaultPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config at path, layered over defaults and under env
// overrides. A missing file yields the defaults; the returned path is empty
// in that case.
func Load(path string) (*Config, string, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("title", def.Title)
	v.SetDefault("label", def.Label)
	v.SetDefault("placeholder", def.Placeholder)
	v.SetDefault("width", def.Width)
	v.SetDefault("max_visible", def.MaxVisible)
	v.SetDefault("options", def.Options)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	loadedFrom := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		loadedFrom = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, loadedFrom, nil
}

// Validate checks the option list and sizes
func (c *Config) Validate() error {
	if c.Width < MinWidth {
		return fmt.Errorf("width %d is below the minimum of %d", c.Width, MinWidth)
	}
	if c.MaxVisible < 1 {
		return fmt.Errorf("max_visible must be at least 1, got %d", c.MaxVisible)
	}
	if err := c.Options.Validate(); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	return nil
}

// Save writes cfg as TOML to path, creating parent directories
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
