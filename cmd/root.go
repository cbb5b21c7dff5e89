package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/procureiq/procureiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "procureiq",
	Short: "Procurement case-study training in the terminal",
	Long:  "ProcureIQ — interactive procurement case-study quizzes with competency scoring and AI coaching.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Provider API keys may live in a local .env file.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PROCUREIQ_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to quiz content directory (overrides PROCUREIQ_CONTENT env var)")

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PROCUREIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns the quiz content directory: --content flag,
// then PROCUREIQ_CONTENT, then ./content.
func resolveContentDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	if p := os.Getenv("PROCUREIQ_CONTENT"); p != "" {
		return p
	}
	return "content"
}
