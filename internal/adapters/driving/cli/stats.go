package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [deck]",
	Short: "Summarise notes coverage across a deck",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	stats, err := notesService.Stats(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Slides:            %d\n", stats.TotalSlides)
	cmd.Printf("With notes:        %d\n", stats.SlidesWithNotes)
	cmd.Printf("Without notes:     %d\n", stats.SlidesWithout)
	cmd.Printf("Total words:       %d\n", stats.TotalWords)
	cmd.Printf("Total characters:  %d\n", stats.TotalCharacters)
	cmd.Printf("Avg words/slide:   %d\n", stats.AvgWordsPerSlide)
	return nil
}
