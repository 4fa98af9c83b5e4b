// Package config handles configuration loading and management for Strata.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/strataai/strata/pkg/models"
)

// Config holds all configuration for Strata.
type Config struct {
	Models    ModelsConfig    `mapstructure:"models"`
	Defaults  DefaultsConfig  `mapstructure:"defaults"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Policy    PolicyConfig    `mapstructure:"policy"`
	History   HistoryConfig   `mapstructure:"history"`
}

// ModelsConfig maps each inference tier to a model identifier.
type ModelsConfig struct {
	TierA string `mapstructure:"tier_a"`
	TierB string `mapstructure:"tier_b"`
	TierC string `mapstructure:"tier_c"`
}

// TierModels returns the tier-to-model mapping used by the escalation
// controller and the invoker adapters.
func (m ModelsConfig) TierModels() map[models.Tier]string {
	return map[models.Tier]string{
		models.TierA: m.TierA,
		models.TierB: m.TierB,
		models.TierC: m.TierC,
	}
}

// DefaultsConfig holds per-request defaults applied when the submission
// surface leaves a field blank.
type DefaultsConfig struct {
	BudgetGuard string `mapstructure:"budget_guard"`
	Tone        string `mapstructure:"tone"`
	Target      string `mapstructure:"target"`
	Provider    string `mapstructure:"provider"`
}

// OpenAIConfig holds settings for the OpenAI-compatible invoker.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Project string `mapstructure:"project"`
}

// AnthropicConfig holds settings for the Anthropic invoker.
type AnthropicConfig struct {
	APIKey     string `mapstructure:"api_key"`
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// PolicyConfig points at the optional policy YAML file with keyword and
// marker list overrides.
type PolicyConfig struct {
	Path string `mapstructure:"path"`
}

// HistoryConfig holds run-history storage settings.
type HistoryConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENAI_BASE_URL, OPENAI_PROJECT)
// 2. Project config (.strata.yaml in current directory or parent)
// 3. User config (~/.config/strata/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Load user config from XDG path
	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Load project config if present
	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	// Environment variable overrides
	v.AutomaticEnv()
	v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("openai.project", "OPENAI_PROJECT")
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references in secrets
	cfg.OpenAI.APIKey = os.ExpandEnv(cfg.OpenAI.APIKey)
	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.OpenAI.APIKey = os.ExpandEnv(cfg.OpenAI.APIKey)
	cfg.Anthropic.APIKey = os.ExpandEnv(cfg.Anthropic.APIKey)

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// DefaultHistoryPath returns the XDG data path for the run-history database.
func DefaultHistoryPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "strata", "history.db")
}

// setDefaults configures default values. The tier model identifiers match
// the original marketplace deployment: tier A carries bulk traffic, tier B
// handles nuanced work, tier C stays rare and optional.
func setDefaults(v *viper.Viper) {
	v.SetDefault("models.tier_a", "gpt-4o-mini")
	v.SetDefault("models.tier_b", "gpt-4o")
	v.SetDefault("models.tier_c", "gpt-5")

	v.SetDefault("defaults.budget_guard", "balanced")
	v.SetDefault("defaults.tone", "professional")
	v.SetDefault("defaults.target", "web")
	v.SetDefault("defaults.provider", "openai")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.project", "")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.use_bedrock", false)

	v.SetDefault("policy.path", "")
	v.SetDefault("history.path", "")
}

// getUserConfigDir returns the XDG config directory for Strata.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "strata")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "strata")
	}
	return filepath.Join(home, ".config", "strata")
}

// findProjectConfig searches for .strata.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".strata.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
