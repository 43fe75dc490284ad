package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past imports",
	Long:  `Lists recorded import runs, most recent first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("import history is not enabled")
	}

	runs, err := historyStore.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No imports recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s <- %s (%s)\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.DeckPath, run.EditedPath, run.Format)
		line := fmt.Sprintf("  applied %d", run.Applied)
		if run.Skipped > 0 {
			line += fmt.Sprintf(", skipped %d", run.Skipped)
		}
		if run.Failed > 0 {
			line += fmt.Sprintf(", failed %d", run.Failed)
		}
		cmd.Println(line)
	}
	return nil
}
