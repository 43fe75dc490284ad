package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

var (
	replaceCaseSensitive bool
	replaceRegex         bool
	replaceSlides        []int
	replaceDryRun        bool
	replaceYes           bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace [deck] [term] [replacement]",
	Short: "Find and replace text in speaker notes",
	Long: `Replaces every occurrence of a term across the deck's speaker notes
and saves the deck. Matching is case-insensitive unless
--case-sensitive is set; --regex enables regular expressions, with
$1-style group references in the replacement.

Use --dry-run to see the before/after text without writing.`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().BoolVarP(&replaceCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	replaceCmd.Flags().BoolVarP(&replaceRegex, "regex", "r", false, "treat the term as a regular expression")
	replaceCmd.Flags().IntSliceVar(&replaceSlides, "slides", nil, "only replace on these slide numbers")
	replaceCmd.Flags().BoolVarP(&replaceDryRun, "dry-run", "n", false, "show changes without writing")
	replaceCmd.Flags().BoolVarP(&replaceYes, "yes", "y", false, "replace without confirmation")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	if replaceService == nil {
		return errors.New("replace service not configured")
	}

	deckPath, term, replacement := args[0], args[1], args[2]
	opts := domain.SearchOptions{
		CaseSensitive: replaceCaseSensitive,
		Regex:         replaceRegex,
		Slides:        replaceSlides,
	}

	previews, err := replaceService.PreviewReplace(cmd.Context(), deckPath, term, replacement, opts)
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}
	if len(previews) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	printReplacePreviews(cmd, previews)
	if replaceDryRun {
		return nil
	}

	if !replaceYes {
		total := 0
		for _, preview := range previews {
			total += preview.MatchCount
		}
		ok, err := confirm(cmd, fmt.Sprintf("Replace %d occurrence(s) on %d slide(s)?", total, len(previews)))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Replace cancelled.")
			return nil
		}
	}

	result, err := replaceService.Replace(cmd.Context(), deckPath, term, replacement, opts)
	if err != nil {
		return fmt.Errorf("replace failed: %w", err)
	}

	cmd.Printf("Replaced %d occurrence(s) on %d slide(s).\n",
		result.TotalReplacements, len(result.SlidesModified))
	for _, applyErr := range result.Errors {
		cmd.Printf("Slide %d failed: %s\n", applyErr.SlideNumber, applyErr.Message)
	}
	return nil
}

func printReplacePreviews(cmd *cobra.Command, previews []domain.ReplacePreview) {
	for _, preview := range previews {
		label := fmt.Sprintf("Slide %d", preview.SlideNumber)
		if preview.SlideTitle != "" {
			label += ": " + preview.SlideTitle
		}
		cmd.Printf("%s (%d match(es))\n", changeHeaderStyle.Render(label), preview.MatchCount)
		printIndented(cmd, removedStyle, "- ", preview.Original)
		printIndented(cmd, addedStyle, "+ ", preview.Replaced)
		cmd.Println()
	}
}
