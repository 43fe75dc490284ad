package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

var previewCmd = &cobra.Command{
	Use:   "preview [deck] [edited-file]",
	Short: "Show what an import would change",
	Long: `Parses an edited notes file and shows the per-slide changes it would
make against the deck's current notes, without writing anything.

Slides absent from the edited file are left untouched. To clear a
slide's notes, keep its heading and replace the body with the
[No notes] placeholder.`,
	Args: cobra.ExactArgs(2),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

var (
	changeHeaderStyle = lipgloss.NewStyle().Bold(true)
	addedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	removedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	modifiedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func runPreview(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	changes, err := notesService.Preview(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	printChanges(cmd, changes)
	return nil
}

// printChanges renders a classified change list.
func printChanges(cmd *cobra.Command, changes []domain.ChangeRecord) {
	if len(changes) == 0 {
		cmd.Println("No changes.")
		return
	}

	cmd.Printf("%d change(s):\n\n", len(changes))
	for _, change := range changes {
		cmd.Println(changeHeading(change))
		switch change.Type {
		case domain.ChangeAdded:
			printIndented(cmd, addedStyle, "+ ", change.EditedNotes)
		case domain.ChangeRemoved:
			printIndented(cmd, removedStyle, "- ", change.OriginalNotes)
		case domain.ChangeModified:
			printIndented(cmd, removedStyle, "- ", change.OriginalNotes)
			printIndented(cmd, addedStyle, "+ ", change.EditedNotes)
		}
		cmd.Println()
	}
}

// changeHeading renders the one-line slide header for a change.
func changeHeading(change domain.ChangeRecord) string {
	label := "Slide " + fmt.Sprint(change.SlideNumber)
	if change.SlideTitle != "" {
		label += ": " + change.SlideTitle
	}

	var tag string
	switch change.Type {
	case domain.ChangeAdded:
		tag = addedStyle.Render("[added]")
	case domain.ChangeRemoved:
		tag = removedStyle.Render("[removed]")
	case domain.ChangeModified:
		tag = modifiedStyle.Render("[modified]")
	}
	return changeHeaderStyle.Render(label) + " " + tag
}

// printIndented writes each line of text prefixed and styled.
func printIndented(cmd *cobra.Command, style lipgloss.Style, prefix, text string) {
	if text == "" {
		cmd.Println("  " + mutedStyle.Render(prefix+"(no notes)"))
		return
	}
	for _, line := range strings.Split(text, "\n") {
		cmd.Println("  " + style.Render(prefix+line))
	}
}
