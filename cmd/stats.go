package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/procureiq/procureiq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		totals, err := repo.Totals(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		runs, err := repo.RecentRuns(ctx, limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if totals.Total == 0 && len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		accuracy := 0.0
		if totals.Total > 0 {
			accuracy = float64(totals.Correct) / float64(totals.Total) * 100
		}
		fmt.Printf("Answers: %d total, %d correct (%.0f%%)\n\n", totals.Total, totals.Correct, accuracy)

		if len(runs) == 0 {
			return nil
		}

		fmt.Println("Recent Runs")
		fmt.Println(strings.Repeat("─", 76))
		fmt.Printf("%-19s  %-24s  %9s  %8s\n", "Finished", "Quiz", "Score", "Duration")
		fmt.Println(strings.Repeat("─", 76))
		for _, r := range runs {
			score := fmt.Sprintf("%d/%d", r.CorrectAnswers, r.QuestionsDelivered)
			duration := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)
			fmt.Printf("%-19s  %-24s  %9s  %8s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(r.QuizSlug, 24),
				score,
				duration,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent runs to show")
}
