package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// watchDebounce coalesces the write bursts editors produce on save.
const watchDebounce = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [deck] [edited-file]",
	Short: "Re-preview changes whenever the edited file is saved",
	Long: `Watches an edited notes file and re-runs the change preview every time
it is saved, so you can see the pending diff while editing. Stop with
Ctrl-C. Nothing is written to the deck.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if notesService == nil {
		return errors.New("notes service not configured")
	}

	deckPath, editedPath := args[0], args[1]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, editors typically replace the file on save
	// and a watch on the file itself would be lost.
	if err := watcher.Add(filepath.Dir(editedPath)); err != nil {
		return fmt.Errorf("watching %s: %w", editedPath, err)
	}

	showPreview(cmd, deckPath, editedPath)
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", editedPath)

	var timer *time.Timer
	refresh := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(editedPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case refresh <- struct{}{}:
				default:
				}
			})
		case <-refresh:
			showPreview(cmd, deckPath, editedPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// showPreview prints the current diff, reporting parse failures without
// stopping the watch.
func showPreview(cmd *cobra.Command, deckPath, editedPath string) {
	changes, err := notesService.Preview(cmd.Context(), deckPath, editedPath)
	if err != nil {
		cmd.Printf("Preview failed: %v\n", err)
		return
	}
	cmd.Printf("--- %s ---\n", time.Now().Format("15:04:05"))
	printChanges(cmd, changes)
}
