package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/procureiq/procureiq/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and validate quiz content",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveContentDir(cmd)
		quizzes, problems, err := content.Available(dir)
		if err != nil {
			return err
		}

		for _, q := range quizzes {
			fmt.Printf("%-24s  %-36s  %2d questions  %d competencies\n",
				q.Slug, q.Title, len(q.Questions), len(q.SkillsCatalog))
		}
		for path, perr := range problems {
			color.Red("invalid: %s: %v", path, perr)
		}
		return nil
	},
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate quiz files",
	Long: `Validate a single quiz.json, or every quiz in the content directory
when no path is given. Checks the JSON shape, answer index ranges,
select counts and skill catalog references.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed).SprintFunc()

		if len(args) == 1 {
			quiz, err := content.LoadFile(args[0])
			if err != nil {
				fmt.Printf("%s %s\n%v\n", bad("✗"), args[0], err)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("%s %s (%s, %d questions)\n", ok("✓"), args[0], quiz.Slug, len(quiz.Questions))
			return nil
		}

		dir := resolveContentDir(cmd)
		quizzes, problems, err := content.LoadDir(dir)
		if err != nil {
			return err
		}

		for _, q := range quizzes {
			fmt.Printf("%s %s (%d questions)\n", ok("✓"), q.Slug, len(q.Questions))
		}
		for path, perr := range problems {
			fmt.Printf("%s %s\n%v\n", bad("✗"), path, perr)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d invalid quiz file(s)", len(problems))
		}
		fmt.Printf("%d quiz(es) valid\n", len(quizzes))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentValidateCmd)
}
