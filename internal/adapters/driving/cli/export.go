package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/voxprep/voxnotes-cli/internal/adapters/driven/config/file"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [deck] [output]",
	Short: "Export speaker notes to an editable file",
	Long: `Extracts every slide's speaker notes and writes them to an editable
file. The output format is chosen by the file extension: .txt, .md, or
.docx. Slides without notes are written with a [No notes] placeholder
so the file always lists every slide.

When output is omitted it defaults to the deck name with the
configured default format (text unless set).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	deckPath := args[0]
	outPath := ""
	if len(args) > 1 {
		outPath = args[1]
	} else {
		outPath = defaultOutputPath(deckPath)
	}

	count, err := notesService.Export(cmd.Context(), deckPath, outPath)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported notes for %d slide(s) to %s\n", count, outPath)
	return nil
}

// defaultOutputPath derives an output file next to the deck, using the
// configured default format.
func defaultOutputPath(deckPath string) string {
	format := domain.FormatText
	if configStore != nil {
		if configured := domain.Format(configStore.GetString(configfile.KeyDefaultFormat)); configured.Valid() {
			format = configured
		}
	}
	base := strings.TrimSuffix(deckPath, filepath.Ext(deckPath))
	return base + "-notes" + format.Extension()
}
