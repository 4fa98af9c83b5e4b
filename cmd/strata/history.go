package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/strataai/strata/internal/config"
	"github.com/strataai/strata/internal/state"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long:  `List recently recorded runs, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		path := cfg.History.Path
		if path == "" {
			path = config.DefaultHistoryPath()
		}
		db, err := state.Open(path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer db.Close()

		runs, err := db.ListRuns(historyLimit)
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}

		if historyJSON {
			data, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		for _, r := range runs {
			marker := color.GreenString("✓")
			if !r.Accepted {
				marker = color.RedString("✗")
			}
			task := r.Task
			if len(task) > 60 {
				task = task[:57] + "..."
			}
			fmt.Printf("%s %s  %s  %s→%s  %d attempt(s)  conf %.2f  %s\n",
				marker, r.CreatedAt.Local().Format("2006-01-02 15:04"),
				r.BudgetGuard, r.PrimaryTier, r.TierUsed, r.Attempts, r.Confidence, task)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output JSON")
}
