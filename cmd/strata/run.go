package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strataai/strata/internal/checker"
	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/internal/escalate"
	"github.com/strataai/strata/internal/llm"
	"github.com/strataai/strata/internal/plan"
	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/internal/state"
	"github.com/strataai/strata/pkg/models"
)

var (
	runTone         string
	runTarget       string
	runBudget       string
	runProvider     string
	runJSON         bool
	runNoHistory    bool
	runShowAttempts bool
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Run a task through the full routing and escalation pipeline",
	Long: `Run a task end to end: classify its difficulty, route it to a model
tier under the budget guard, invoke the model, score the output, and
escalate up the tier ladder if the output does not hold up.

The walk is bounded: at most one escalation per task, and only along
the escalation order the router produced. A premium hard task routes
straight to the top tier and has nowhere left to go.

Completed runs are recorded in the history database unless
--no-history is set. Use 'strata history' to inspect them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTask,
}

func init() {
	runCmd.Flags().StringVar(&runTone, "tone", "", "Desired output tone")
	runCmd.Flags().StringVar(&runTarget, "target", "", "Output surface: web, blog, code, analysis, longform")
	runCmd.Flags().StringVar(&runBudget, "budget", "", "Budget guard: economy, balanced, or premium")
	runCmd.Flags().StringVar(&runProvider, "provider", "", "Inference provider: openai or anthropic")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output the full result as JSON")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Skip recording the run")
	runCmd.Flags().BoolVar(&runShowAttempts, "show-attempts", false, "Print every attempted tier, not just the final output")
}

func runTask(cmd *cobra.Command, args []string) error {
	task := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	pol, err := policy.Load(cfg.Policy.Path)
	if err != nil {
		return fmt.Errorf("loading policy: %w", err)
	}

	classifier := classify.New(pol.HardKeywords)
	req := models.TaskRequest{
		Description: task,
		Tone:        runTone,
		Target:      runTarget,
		BudgetGuard: runBudget,
	}
	applyRequestDefaults(&req, cfg)
	spec := plan.NewBuilder(classifier).BuildAgentSpec(req)

	invoker, err := newInvoker(cfg)
	if err != nil {
		return err
	}

	controller := escalate.NewController(classifier, checker.New(pol), cfg.Models.TierModels())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prompt := llm.BuildPrompt(task, spec)
	result, err := controller.Run(ctx, spec, task,
		func(ctx context.Context, modelID, _ string, maxOutputTokens int) (string, error) {
			if !runJSON {
				fmt.Printf("%s invoking %s...\n", color.CyanString("→"), modelID)
			}
			return invoker.Invoke(ctx, modelID, prompt, maxOutputTokens)
		})
	if err != nil {
		return err
	}

	if !runNoHistory {
		if err := recordRun(cfg, task, spec, result); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: run not recorded: %v\n", err)
		}
	}

	return printRunResult(result)
}

// newInvoker selects the inference provider from the flag or config.
func newInvoker(cfg *config.Config) (llm.Invoker, error) {
	provider := runProvider
	if provider == "" {
		provider = cfg.Defaults.Provider
	}

	switch provider {
	case "openai":
		client, err := llm.NewOpenAIClient(cfg.OpenAI)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "anthropic":
		client, err := llm.NewAnthropicClient(cfg.Anthropic)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q: use openai or anthropic", provider)
	}
}

func recordRun(cfg *config.Config, task string, spec models.AgentSpec, result *escalate.Result) error {
	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	db, err := state.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.RecordRun(state.NewRunRecord(task, spec, result))
}

func printRunResult(result *escalate.Result) error {
	if runJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if runShowAttempts {
		for i, attempt := range result.History {
			fmt.Printf("\n--- attempt %d (%s, confidence %.2f) ---\n%s\n",
				i+1, attempt.Tier, attempt.Evaluation.Confidence, attempt.Text)
		}
	}

	fmt.Println()
	fmt.Println(result.FinalText)
	fmt.Println()

	verdict := color.GreenString("✓ accepted")
	if !result.Accepted {
		verdict = color.RedString("✗ exhausted")
	}
	fmt.Printf("%s  tier %s, %d attempt(s), confidence %.2f\n",
		verdict, result.TierUsed, result.Attempts, result.Evaluation.Confidence)
	if result.Evaluation.Danger {
		fmt.Printf("%s output contains danger markers\n", color.RedString("!"))
	}
	return nil
}
