package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voxprep/voxnotes-cli/internal/adapters/driving/tui"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

var (
	importSlides []int
	importYes    bool
	importReview bool
)

var importCmd = &cobra.Command{
	Use:   "import [deck] [edited-file]",
	Short: "Apply edited notes back to the deck",
	Long: `Parses an edited notes file, diffs it against the deck, and writes the
changed slides back. The deck is saved once after all changes are
applied.

Only slides that actually changed are touched. Use --slides to restrict
the import to specific slide numbers, or --review to pick changes
interactively.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().IntSliceVar(&importSlides, "slides", nil, "only apply these slide numbers")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "apply without confirmation")
	importCmd.Flags().BoolVar(&importReview, "review", false, "review changes interactively before applying")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	deckPath, editedPath := args[0], args[1]

	changes, err := notesService.Preview(cmd.Context(), deckPath, editedPath)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if len(changes) == 0 {
		cmd.Println("No changes to apply.")
		return nil
	}

	allowed := importSlides
	if importReview {
		selected, ok, err := tui.Review(changes)
		if err != nil {
			return fmt.Errorf("review failed: %w", err)
		}
		if !ok || len(selected) == 0 {
			cmd.Println("Import cancelled.")
			return nil
		}
		allowed = selected
	} else {
		printChanges(cmd, changes)
		if !importYes {
			ok, err := confirm(cmd, fmt.Sprintf("Apply %d change(s) to %s?", len(changes), deckPath))
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("Import cancelled.")
				return nil
			}
		}
	}

	outcome, err := notesService.Import(cmd.Context(), deckPath, editedPath, allowed)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printOutcome(cmd, outcome)
	return nil
}

// printOutcome summarises the per-slide results of an import.
func printOutcome(cmd *cobra.Command, outcome domain.ApplyOutcome) {
	cmd.Printf("Applied %d change(s).\n", len(outcome.Applied))
	if len(outcome.Skipped) > 0 {
		cmd.Printf("Skipped slide(s) not present in the deck: %s\n", joinInts(outcome.Skipped))
	}
	for _, applyErr := range outcome.Errors {
		cmd.Printf("Slide %d failed: %s\n", applyErr.SlideNumber, applyErr.Message)
	}
}

// confirm prompts for a yes/no answer on the terminal. Non-interactive
// runs must pass --yes instead.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("standard input is not a terminal, pass --yes to apply")
	}

	cmd.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
