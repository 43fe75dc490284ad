package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driving"
	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// Ensure NotesService implements the interface.
var _ driving.NotesService = (*NotesService)(nil)

// NotesService runs the speaker-notes round trip: extract a deck's
// notes into an editable file, diff a hand-edited copy, and apply the
// approved changes back to the deck.
type NotesService struct {
	opener  driven.DeckOpener
	codecs  []driven.Codec
	history driven.HistoryStore
}

// NewNotesService creates a new notes service. The history store is
// optional; when nil, import runs are not recorded.
func NewNotesService(opener driven.DeckOpener, codecs []driven.Codec, history driven.HistoryStore) *NotesService {
	return &NotesService{
		opener:  opener,
		codecs:  codecs,
		history: history,
	}
}

// Extract reads the current notes snapshot from a deck, one record per
// slide, in slide order.
func (s *NotesService) Extract(ctx context.Context, deckPath string) ([]domain.NotesRecord, error) {
	deck, err := s.opener.Open(ctx, deckPath, true)
	if err != nil {
		return nil, fmt.Errorf("opening deck: %w", err)
	}
	defer deck.Close()

	return extractSnapshot(deck)
}

// Export writes the deck's notes to outPath in the format matching the
// output extension. Returns the number of slides written.
func (s *NotesService) Export(ctx context.Context, deckPath, outPath string) (int, error) {
	codec, err := s.codecFor(outPath)
	if err != nil {
		return 0, err
	}

	records, err := s.Extract(ctx, deckPath)
	if err != nil {
		return 0, err
	}

	data, err := codec.Encode(records)
	if err != nil {
		return 0, fmt.Errorf("encoding %s: %w", codec.Format(), err)
	}

	if err := os.WriteFile(outPath, data, 0600); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Info("exported %d slide(s) to %s", len(records), outPath)
	return len(records), nil
}

// Preview parses an edited file and diffs it against the deck's current
// notes without writing anything.
func (s *NotesService) Preview(ctx context.Context, deckPath, editedPath string) ([]domain.ChangeRecord, error) {
	edited, err := s.parseEdited(editedPath)
	if err != nil {
		return nil, err
	}

	original, err := s.Extract(ctx, deckPath)
	if err != nil {
		return nil, err
	}

	changes := Compare(original, edited)
	logger.Info("%d change(s) detected across %d edited slide(s)", len(changes), len(edited))
	return changes, nil
}

// Import applies the changes from an edited file back to the deck. If
// allowed is non-empty, only those slide numbers are written. Per-slide
// failures are reported in the outcome; a failed deck save is fatal.
func (s *NotesService) Import(ctx context.Context, deckPath, editedPath string, allowed []int) (domain.ApplyOutcome, error) {
	started := time.Now()

	edited, err := s.parseEdited(editedPath)
	if err != nil {
		return domain.ApplyOutcome{}, err
	}

	deck, err := s.opener.Open(ctx, deckPath, false)
	if err != nil {
		return domain.ApplyOutcome{}, fmt.Errorf("opening deck: %w", err)
	}
	defer deck.Close()

	original, err := extractSnapshot(deck)
	if err != nil {
		return domain.ApplyOutcome{}, err
	}

	changes := Compare(original, edited)
	outcome, err := Apply(deck, changes, allowed)
	if err != nil {
		return outcome, err
	}

	s.recordImport(ctx, deckPath, editedPath, outcome, started)
	return outcome, nil
}

// Stats summarises notes coverage across the deck.
func (s *NotesService) Stats(ctx context.Context, deckPath string) (domain.NotesStats, error) {
	records, err := s.Extract(ctx, deckPath)
	if err != nil {
		return domain.NotesStats{}, err
	}

	stats := domain.NotesStats{TotalSlides: len(records)}
	for _, rec := range records {
		notes := strings.TrimSpace(rec.Notes)
		if notes == "" {
			stats.SlidesWithout++
			continue
		}
		stats.SlidesWithNotes++
		stats.TotalCharacters += len(notes)
		stats.TotalWords += len(strings.Fields(notes))
	}
	if stats.SlidesWithNotes > 0 {
		stats.AvgWordsPerSlide = (stats.TotalWords + stats.SlidesWithNotes/2) / stats.SlidesWithNotes
	}

	return stats, nil
}

// codecFor resolves the codec for a file path by extension.
func (s *NotesService) codecFor(path string) (driven.Codec, error) {
	format, err := domain.FormatForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	for _, codec := range s.codecs {
		if codec.Format() == format {
			return codec, nil
		}
	}
	return nil, fmt.Errorf("%w: no codec for %s", domain.ErrUnsupportedFormat, format)
}

// parseEdited loads and decodes a hand-edited notes file.
func (s *NotesService) parseEdited(editedPath string) ([]domain.NotesRecord, error) {
	codec, err := s.codecFor(editedPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(editedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, editedPath)
		}
		return nil, fmt.Errorf("reading %s: %w", editedPath, err)
	}

	records, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", editedPath, err)
	}

	logger.Debug("parsed %d slide(s) from %s", len(records), editedPath)
	return records, nil
}

// recordImport stores the run in the history log, best effort.
func (s *NotesService) recordImport(ctx context.Context, deckPath, editedPath string, outcome domain.ApplyOutcome, started time.Time) {
	if s.history == nil {
		return
	}

	format, err := domain.FormatForPath(editedPath)
	if err != nil {
		format = ""
	}

	run := driven.ImportRun{
		ID:         uuid.New().String(),
		DeckPath:   deckPath,
		EditedPath: editedPath,
		Format:     format,
		Applied:    len(outcome.Applied),
		Skipped:    len(outcome.Skipped),
		Failed:     len(outcome.Errors),
		StartedAt:  started,
	}
	if err := s.history.Record(ctx, run); err != nil {
		logger.Warn("recording import history: %v", err)
	}
}

// extractSnapshot reads every slide's title and notes from an open deck.
func extractSnapshot(deck driven.Deck) ([]domain.NotesRecord, error) {
	count, err := deck.SlideCount()
	if err != nil {
		return nil, fmt.Errorf("reading slide count: %w", err)
	}

	records := make([]domain.NotesRecord, 0, count)
	for i := 1; i <= count; i++ {
		notes, err := deck.Notes(i)
		if err != nil {
			return nil, fmt.Errorf("reading notes for slide %d: %w", i, err)
		}
		title, err := deck.Title(i)
		if err != nil {
			return nil, fmt.Errorf("reading title for slide %d: %w", i, err)
		}
		records = append(records, domain.NotesRecord{
			SlideNumber: i,
			SlideTitle:  strings.TrimSpace(domain.Sanitize(title)),
			Notes:       domain.Sanitize(notes),
		})
	}

	logger.Debug("extracted %d slide(s)", len(records))
	return records, nil
}
