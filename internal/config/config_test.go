package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strataai/strata/pkg/models"
)

func TestLoadFromPathDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Models.TierA != "gpt-4o-mini" {
		t.Errorf("Models.TierA = %q, want gpt-4o-mini", cfg.Models.TierA)
	}
	if cfg.Models.TierB != "gpt-4o" {
		t.Errorf("Models.TierB = %q, want gpt-4o", cfg.Models.TierB)
	}
	if cfg.Models.TierC != "gpt-5" {
		t.Errorf("Models.TierC = %q, want gpt-5", cfg.Models.TierC)
	}
	if cfg.Defaults.BudgetGuard != "balanced" {
		t.Errorf("Defaults.BudgetGuard = %q, want balanced", cfg.Defaults.BudgetGuard)
	}
	if cfg.Defaults.Tone != "professional" {
		t.Errorf("Defaults.Tone = %q, want professional", cfg.Defaults.Tone)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("OpenAI.BaseURL = %q, want api.openai.com", cfg.OpenAI.BaseURL)
	}
}

func TestLoadFromPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
models:
  tier_a: llama-3.1-70b
  tier_c: claude-opus
defaults:
  budget_guard: economy
policy:
  path: /etc/strata/policy.yaml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Models.TierA != "llama-3.1-70b" {
		t.Errorf("Models.TierA = %q, want llama-3.1-70b", cfg.Models.TierA)
	}
	// Unset keys keep their defaults.
	if cfg.Models.TierB != "gpt-4o" {
		t.Errorf("Models.TierB = %q, want default gpt-4o", cfg.Models.TierB)
	}
	if cfg.Models.TierC != "claude-opus" {
		t.Errorf("Models.TierC = %q, want claude-opus", cfg.Models.TierC)
	}
	if cfg.Defaults.BudgetGuard != "economy" {
		t.Errorf("Defaults.BudgetGuard = %q, want economy", cfg.Defaults.BudgetGuard)
	}
	if cfg.Policy.Path != "/etc/strata/policy.yaml" {
		t.Errorf("Policy.Path = %q, want /etc/strata/policy.yaml", cfg.Policy.Path)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFromPath() on missing file returned nil error")
	}
}

func TestTierModels(t *testing.T) {
	m := ModelsConfig{TierA: "a-model", TierB: "b-model", TierC: "c-model"}
	tm := m.TierModels()

	if tm[models.TierA] != "a-model" || tm[models.TierB] != "b-model" || tm[models.TierC] != "c-model" {
		t.Errorf("TierModels() = %v", tm)
	}
	if len(tm) != 3 {
		t.Errorf("TierModels() has %d entries, want 3", len(tm))
	}
}

func TestExpandEnvInAPIKey(t *testing.T) {
	t.Setenv("STRATA_TEST_KEY", "sk-test-123")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "openai:\n  api_key: ${STRATA_TEST_KEY}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-test-123" {
		t.Errorf("OpenAI.APIKey = %q, want expanded env value", cfg.OpenAI.APIKey)
	}
}
