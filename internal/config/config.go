package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI     AIConfig    `yaml:"ai" validate:"required"`
	Limits Limits      `yaml:"limits" validate:"required"`
	Chart  ChartConfig `yaml:"chart" validate:"required"`
}

type AIConfig struct {
	// APIKey may be left empty, in which case the CLI falls back to
	// the offline mock client.
	APIKey  string `yaml:"api_key" validate:"omitempty,min=20"`
	Model   string `yaml:"model" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Timeout int    `yaml:"timeout" validate:"required,min=10,max=3600"`
}

// ChartConfig is the fixed viewport every chart-style report maps into.
type ChartConfig struct {
	Width            float64 `yaml:"width" validate:"required,min=100,max=4000"`
	Height           float64 `yaml:"height" validate:"required,min=100,max=4000"`
	Padding          float64 `yaml:"padding" validate:"min=0,max=200"`
	ReadabilityTicks int     `yaml:"readability_ticks" validate:"required,min=2,max=20"`
}

func DefaultChart() ChartConfig {
	return ChartConfig{
		Width:            600,
		Height:           300,
		Padding:          50,
		ReadabilityTicks: 5,
	}
}

// Load reads the config file, fills defaults, resolves the API key
// from the environment, and validates the result. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configPath := getConfigPath()

	cfg := Default()
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if cfg.AI.APIKey == "" || cfg.AI.APIKey == "${TEXTPRISM_API_KEY}" {
		if apiKey := os.Getenv("TEXTPRISM_API_KEY"); apiKey != "" {
			cfg.AI.APIKey = apiKey
		} else if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
			cfg.AI.APIKey = apiKey
		} else if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
			cfg.AI.APIKey = apiKey
		} else {
			cfg.AI.APIKey = ""
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the full default configuration.
func Default() *Config {
	return &Config{
		AI: AIConfig{
			Model:   "claude-3-5-sonnet-20241022",
			BaseURL: "https://api.anthropic.com/v1",
			Timeout: 120,
		},
		Limits: DefaultLimits(),
		Chart:  DefaultChart(),
	}
}

func getConfigPath() string {
	// 1. Explicit config path via environment variable
	if path := os.Getenv("TEXTPRISM_CONFIG"); path != "" {
		return path
	}

	// 2. XDG_CONFIG_HOME (XDG Base Directory Specification)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "textprism", "config.yaml")
	}

	// 3. Default to ~/.config/textprism/config.yaml (XDG fallback)
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "textprism", "config.yaml")
}

// Validate fills zero-valued sections with defaults and then runs
// structured validation.
func (c *Config) Validate() error {
	if c.Limits.MaxConcurrentProviders == 0 {
		c.Limits = DefaultLimits()
	}
	if c.Chart.Width == 0 {
		c.Chart = DefaultChart()
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}
