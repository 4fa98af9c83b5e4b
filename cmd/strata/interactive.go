package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/internal/plan"
	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/internal/tui"
)

// runInteractive launches the routing console. When a policy file is
// configured it is watched for edits, so keyword changes show up live.
func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pol, err := policy.Load(cfg.Policy.Path)
	if err != nil {
		return fmt.Errorf("loading policy: %w", err)
	}

	classifier := classify.New(pol.HardKeywords)
	app := tui.NewApp(classifier, plan.NewBuilder(classifier))

	if cfg.Policy.Path != "" {
		watcher, err := policy.NewWatcher(cfg.Policy.Path)
		if err != nil {
			return fmt.Errorf("watching policy: %w", err)
		}
		defer watcher.Close()
		app.WithPolicySource(watcher.Current)
	}

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
