package driven

import (
	"context"
	"time"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// ImportRun records one completed import against a deck.
type ImportRun struct {
	// ID is the unique run identifier.
	ID string

	// DeckPath is the deck the import was applied to.
	DeckPath string

	// EditedPath is the edited notes file that was imported.
	EditedPath string

	// Format is the edited file's encoding.
	Format domain.Format

	// Applied, Skipped, and Failed count the per-slide outcomes.
	Applied int
	Skipped int
	Failed  int

	// StartedAt is when the import began.
	StartedAt time.Time
}

// HistoryStore persists the import log.
type HistoryStore interface {
	// Record stores a completed import run.
	Record(ctx context.Context, run ImportRun) error

	// List returns runs most recent first, at most limit entries
	// (limit <= 0 means no cap).
	List(ctx context.Context, limit int) ([]ImportRun, error)

	// Close releases the store.
	Close() error
}
