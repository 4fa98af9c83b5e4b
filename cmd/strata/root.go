package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Task difficulty routing & escalation engine",
	Long: `Strata classifies task difficulty, routes each task to a model tier
under a budget guard, evaluates the output, and escalates up the tier
ladder when the output does not hold up.

With no arguments, launches the interactive routing console where you
can type tasks and watch the routing decision update live.

Core capabilities:
- Classifies tasks as standard or hard via keyword containment
- Routes to a primary tier with a bounded escalation order
- Scores outputs for danger markers, vagueness, and confidence
- Walks the escalation ladder at most once per task
- Records completed runs for later inspection`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
