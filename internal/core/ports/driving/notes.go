package driving

import (
	"context"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// NotesService is the round-trip surface for speaker notes: extract a
// deck's notes to an editable file, diff a hand-edited copy against the
// deck, and write approved changes back.
type NotesService interface {
	// Extract reads the current notes snapshot from a deck.
	Extract(ctx context.Context, deckPath string) ([]domain.NotesRecord, error)

	// Export writes the deck's notes snapshot to outPath, encoded per
	// the output file's extension. Returns the number of slides written.
	Export(ctx context.Context, deckPath, outPath string) (int, error)

	// Preview parses an edited file and returns the classified changes
	// against the deck's current notes, ascending by slide number.
	Preview(ctx context.Context, deckPath, editedPath string) ([]domain.ChangeRecord, error)

	// Import applies the changes from an edited file back to the deck.
	// If allowed is non-empty, only those slide numbers are written.
	Import(ctx context.Context, deckPath, editedPath string, allowed []int) (domain.ApplyOutcome, error)

	// Stats summarises notes coverage across the deck.
	Stats(ctx context.Context, deckPath string) (domain.NotesStats, error)
}

// ReplaceService performs bulk find/replace across a deck's notes.
type ReplaceService interface {
	// Find returns all matches of term across the deck's notes.
	Find(ctx context.Context, deckPath, term string, opts domain.SearchOptions) ([]domain.NoteMatch, error)

	// PreviewReplace shows per-slide before/after text without writing.
	PreviewReplace(ctx context.Context, deckPath, term, replacement string, opts domain.SearchOptions) ([]domain.ReplacePreview, error)

	// Replace applies the substitution and persists the deck.
	Replace(ctx context.Context, deckPath, term, replacement string, opts domain.SearchOptions) (domain.ReplaceResult, error)
}
