// Package cli provides the voxnotes command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/voxprep/voxnotes-cli/internal/adapters/driven/config/file"
	"github.com/voxprep/voxnotes-cli/internal/adapters/driven/deck/pptx"
	historysqlite "github.com/voxprep/voxnotes-cli/internal/adapters/driven/history/sqlite"
	"github.com/voxprep/voxnotes-cli/internal/codecs/docx"
	"github.com/voxprep/voxnotes-cli/internal/codecs/markdown"
	"github.com/voxprep/voxnotes-cli/internal/codecs/text"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driving"
	"github.com/voxprep/voxnotes-cli/internal/core/services"
	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev"

// Services injected into commands. Wired by Execute, replaced by mocks
// in tests.
var (
	notesService   driving.NotesService
	replaceService driving.ReplaceService
	historyStore   driven.HistoryStore
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "voxnotes",
	Short: "Round-trip speaker notes between decks and editable files",
	Long: `voxnotes extracts speaker notes from PowerPoint decks into editable
text, Markdown, or Word files, diffs your edits against the deck, and
writes approved changes back.

Typical workflow:
  voxnotes export talk.pptx notes.md
  # edit notes.md in your editor of choice
  voxnotes preview talk.pptx notes.md
  voxnotes import talk.pptx notes.md`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute wires the default adapters and runs the root command.
func Execute() error {
	if notesService == nil {
		if err := wireServices(); err != nil {
			return err
		}
	}
	defer func() {
		if historyStore != nil {
			historyStore.Close()
		}
	}()
	return rootCmd.Execute()
}

// wireServices builds the production adapter graph.
func wireServices() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	if !cfg.GetBool(configfile.KeyHistoryOff) {
		store, err := historysqlite.NewStore(cfg.GetString(configfile.KeyHistoryDir))
		if err != nil {
			// History is best effort, the import itself must not depend
			// on it.
			logger.Warn("import history unavailable: %v", err)
		} else {
			historyStore = store
		}
	}

	opener := pptx.NewOpener(cfg.RetryPolicy())
	codecs := []driven.Codec{text.New(), markdown.New(), docx.New()}

	notesService = services.NewNotesService(opener, codecs, historyStore)
	replaceService = services.NewReplaceService(opener)
	return nil
}
