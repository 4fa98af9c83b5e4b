package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/internal/plan"
	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/pkg/models"
)

var (
	planName     string
	planCategory string
	planTone     string
	planTarget   string
	planBudget   string
	planNeeds    []string
	planFile     string
	planJSON     bool
)

var planCmd = &cobra.Command{
	Use:   "plan [task description]",
	Short: "Build the execution spec for a task without running it",
	Long: `Build the full execution spec for a task: difficulty classification,
tier routing under the budget guard, tool needs, limits, and guardrails.

The task description comes from the arguments, or from a JSON request
file via --file. Output is YAML by default; use --json for JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRequest(args)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyRequestDefaults(&req, cfg)

		pol, err := policy.Load(cfg.Policy.Path)
		if err != nil {
			return fmt.Errorf("loading policy: %w", err)
		}

		builder := plan.NewBuilder(classify.New(pol.HardKeywords))
		spec := builder.BuildAgentSpec(req)

		return printSpec(spec, planJSON)
	},
}

func init() {
	planCmd.Flags().StringVar(&planName, "name", "", "Task name")
	planCmd.Flags().StringVar(&planCategory, "category", "", "Task category")
	planCmd.Flags().StringVar(&planTone, "tone", "", "Desired output tone")
	planCmd.Flags().StringVar(&planTarget, "target", "", "Output surface: web, blog, code, analysis, longform")
	planCmd.Flags().StringVar(&planBudget, "budget", "", "Budget guard: economy, balanced, or premium")
	planCmd.Flags().StringSliceVar(&planNeeds, "needs", nil, "Capability needs: web_search, rag, code_tools")
	planCmd.Flags().StringVar(&planFile, "file", "", "Read the task request from a JSON file")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output JSON instead of YAML")
}

// buildRequest assembles the task request from --file or from flags and args.
// Flags override fields loaded from the file.
func buildRequest(args []string) (models.TaskRequest, error) {
	var req models.TaskRequest

	if planFile != "" {
		data, err := os.ReadFile(planFile)
		if err != nil {
			return req, fmt.Errorf("reading request file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("parsing request file: %w", err)
		}
	}

	if len(args) > 0 {
		req.Description = strings.Join(args, " ")
	}
	if planName != "" {
		req.Name = planName
	}
	if planCategory != "" {
		req.Category = planCategory
	}
	if planTone != "" {
		req.Tone = planTone
	}
	if planTarget != "" {
		req.Target = planTarget
	}
	if planBudget != "" {
		req.BudgetGuard = planBudget
	}
	if len(planNeeds) > 0 {
		req.Needs = planNeeds
	}

	if req.TaskText() == "" {
		return req, fmt.Errorf("no task given: pass a description or --file")
	}
	return req, nil
}

// applyRequestDefaults fills blank request fields from the configured defaults.
func applyRequestDefaults(req *models.TaskRequest, cfg *config.Config) {
	if req.BudgetGuard == "" {
		req.BudgetGuard = cfg.Defaults.BudgetGuard
	}
	if req.Tone == "" {
		req.Tone = cfg.Defaults.Tone
	}
	if req.Target == "" {
		req.Target = cfg.Defaults.Target
	}
}

// printSpec writes the spec to stdout as YAML or JSON.
func printSpec(spec models.AgentSpec, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
