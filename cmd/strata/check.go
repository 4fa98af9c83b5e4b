package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strataai/strata/internal/checker"
	"github.com/strataai/strata/internal/classify"
	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/internal/policy"
	"github.com/strataai/strata/pkg/models"
)

var (
	checkTask  string
	checkFile  string
	checkBatch string
	checkJSON  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [output text]",
	Short: "Evaluate a model output",
	Long: `Score a model output: confidence, danger markers, refusal markers,
vagueness, and whether it would trigger an escalation.

The output text comes from the arguments, --file, or stdin. Pass the
original task with --task so hard tasks get the stricter confidence
floor. Use --batch with a JSON file of {"id": "output", ...} to score
a whole batch and get the aggregate trust score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		pol, err := policy.Load(cfg.Policy.Path)
		if err != nil {
			return fmt.Errorf("loading policy: %w", err)
		}
		chk := checker.New(pol)

		if checkBatch != "" {
			return checkBatchFile(chk, checkBatch)
		}

		text, err := readCheckText(args)
		if err != nil {
			return err
		}

		isHard := classify.New(pol.HardKeywords).IsHard(checkTask)
		result := chk.EvaluateSingle(text, isHard)
		return printEvaluation(result, isHard)
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkTask, "task", "", "Original task text, used for the difficulty-aware confidence floor")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Read the output text from a file")
	checkCmd.Flags().StringVar(&checkBatch, "batch", "", "Score a JSON file mapping output IDs to output texts")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output JSON")
}

// readCheckText pulls the output text from args, --file, or stdin.
func readCheckText(args []string) (string, error) {
	if checkFile != "" {
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("reading output file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no output text given: pass text, --file, or pipe stdin")
	}
	return string(data), nil
}

func printEvaluation(result models.EvaluationResult, isHard bool) error {
	if checkJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("confidence: %.2f\n", result.Confidence)
	fmt.Printf("danger:     %s\n", flagString(result.Danger, color.FgRed))
	fmt.Printf("refusal:    %s\n", flagString(result.Refusal, color.FgYellow))
	if isHard {
		fmt.Println("difficulty: hard")
	}

	if result.NeedsEscalation {
		fmt.Printf("\n%s this output would escalate\n", color.RedString("✗"))
	} else {
		fmt.Printf("\n%s this output would be accepted\n", color.GreenString("✓"))
	}
	return nil
}

func checkBatchFile(chk *checker.Checker, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading batch file: %w", err)
	}

	outputs := map[string]string{}
	if err := json.Unmarshal(data, &outputs); err != nil {
		return fmt.Errorf("parsing batch file: %w", err)
	}

	result := chk.EvaluateBatch(outputs)
	if checkJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("trust score: %.2f\n", result.TrustScore)
	for id, score := range result.ToneScores {
		fmt.Printf("  %-20s tone %.2f\n", id, score)
	}
	if result.Passed {
		fmt.Printf("\n%s batch passed\n", color.GreenString("✓"))
	} else {
		fmt.Printf("\n%s batch failed\n", color.RedString("✗"))
	}
	return nil
}

// flagString renders a boolean marker, colored when set.
func flagString(set bool, c color.Attribute) string {
	if set {
		return color.New(c).Sprint("yes")
	}
	return "no"
}
