package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/procureiq/procureiq/internal/app"
	"github.com/procureiq/procureiq/internal/assistant"
	"github.com/procureiq/procureiq/internal/content"
	"github.com/procureiq/procureiq/internal/llm"
	"github.com/procureiq/procureiq/internal/store"
)

// runApp opens the store, loads quizzes, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	contentDir := resolveContentDir(cmd)
	quizzes, problems, err := content.Available(contentDir)
	if err != nil {
		return fmt.Errorf("load quizzes: %w", err)
	}
	for path, perr := range problems {
		fmt.Fprintf(os.Stderr, "skipping invalid quiz %s: %v\n", path, perr)
	}
	if len(quizzes) == 0 {
		return fmt.Errorf("no valid quizzes in %s", contentDir)
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		Quizzes: quizzes,
		Repo:    eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI help and improvement suggestions will fall back to the rubric.")
	} else {
		opts.Assistant = assistant.New(provider, assistant.DefaultConfig())
	}

	return app.Run(opts)
}
