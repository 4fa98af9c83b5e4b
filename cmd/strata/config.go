package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strataai/strata/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show configuration",
	Long: `Display the current configuration, or the value for a single key.

Configuration is stored at ~/.config/strata/config.yaml
Project-specific overrides can be placed in .strata.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			displayAllConfig(cfg)
			return
		}
		displayConfigKey(cfg, args[0])
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Println("Configuration:")
	fmt.Printf("  models.tier_a:         %s\n", cfg.Models.TierA)
	fmt.Printf("  models.tier_b:         %s\n", cfg.Models.TierB)
	fmt.Printf("  models.tier_c:         %s\n", cfg.Models.TierC)
	fmt.Printf("  defaults.budget_guard: %s\n", cfg.Defaults.BudgetGuard)
	fmt.Printf("  defaults.tone:         %s\n", cfg.Defaults.Tone)
	fmt.Printf("  defaults.target:       %s\n", cfg.Defaults.Target)
	fmt.Printf("  defaults.provider:     %s\n", cfg.Defaults.Provider)
	fmt.Printf("  openai.api_key:        %s\n", maskKey(cfg.OpenAI.APIKey))
	fmt.Printf("  openai.base_url:       %s\n", cfg.OpenAI.BaseURL)
	fmt.Printf("  anthropic.api_key:     %s\n", maskKey(cfg.Anthropic.APIKey))
	fmt.Printf("  policy.path:           %s\n", orUnset(cfg.Policy.Path))
	fmt.Printf("  history.path:          %s\n", orUnset(cfg.History.Path))

	fmt.Printf("\nUser config:    %s\n", config.GetUserConfigPath())
	if project := config.GetProjectConfigPath(); project != "" {
		fmt.Printf("Project config: %s\n", project)
	}
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	switch key {
	case "models.tier_a":
		fmt.Println(cfg.Models.TierA)
	case "models.tier_b":
		fmt.Println(cfg.Models.TierB)
	case "models.tier_c":
		fmt.Println(cfg.Models.TierC)
	case "defaults.budget_guard":
		fmt.Println(cfg.Defaults.BudgetGuard)
	case "defaults.tone":
		fmt.Println(cfg.Defaults.Tone)
	case "defaults.target":
		fmt.Println(cfg.Defaults.Target)
	case "defaults.provider":
		fmt.Println(cfg.Defaults.Provider)
	case "openai.base_url":
		fmt.Println(cfg.OpenAI.BaseURL)
	case "policy.path":
		fmt.Println(cfg.Policy.Path)
	case "history.path":
		fmt.Println(cfg.History.Path)
	default:
		fmt.Fprintf(os.Stderr, "Unknown configuration key: %s\n", key)
		os.Exit(1)
	}
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	return "****"
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
