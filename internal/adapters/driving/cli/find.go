package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

var (
	findCaseSensitive bool
	findRegex         bool
	findSlides        []int
	findJSON          bool
)

var findCmd = &cobra.Command{
	Use:   "find [deck] [term]",
	Short: "Search speaker notes across a deck",
	Long: `Searches every slide's speaker notes for a term and lists the matches
with surrounding context. Matching is case-insensitive unless
--case-sensitive is set; --regex treats the term as a regular
expression.`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVarP(&findCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	findCmd.Flags().BoolVarP(&findRegex, "regex", "r", false, "treat the term as a regular expression")
	findCmd.Flags().IntSliceVar(&findSlides, "slides", nil, "only search these slide numbers")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if replaceService == nil {
		return errors.New("replace service not configured")
	}

	opts := domain.SearchOptions{
		CaseSensitive: findCaseSensitive,
		Regex:         findRegex,
		Slides:        findSlides,
	}

	matches, err := replaceService.Find(cmd.Context(), args[0], args[1], opts)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	if findJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	total := 0
	for _, match := range matches {
		total += len(match.Matches)
	}
	cmd.Printf("%d match(es) on %d slide(s):\n\n", total, len(matches))

	for _, match := range matches {
		label := fmt.Sprintf("Slide %d", match.SlideNumber)
		if match.SlideTitle != "" {
			label += ": " + match.SlideTitle
		}
		cmd.Println(changeHeaderStyle.Render(label))
		for _, detail := range match.Matches {
			cmd.Printf("  %s\n", detail.Context)
		}
		cmd.Println()
	}
	return nil
}
