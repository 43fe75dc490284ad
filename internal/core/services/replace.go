package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driving"
	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// Ensure ReplaceService implements the interface.
var _ driving.ReplaceService = (*ReplaceService)(nil)

// contextRadius is how many bytes of surrounding text a match snippet
// carries on each side.
const contextRadius = 50

// previewLimit caps the notes preview attached to each match.
const previewLimit = 200

// ReplaceService performs bulk find/replace across a deck's speaker
// notes.
type ReplaceService struct {
	opener driven.DeckOpener
}

// NewReplaceService creates a new replace service.
func NewReplaceService(opener driven.DeckOpener) *ReplaceService {
	return &ReplaceService{opener: opener}
}

// Find returns all occurrences of term across the deck's notes.
func (s *ReplaceService) Find(ctx context.Context, deckPath, term string, opts domain.SearchOptions) ([]domain.NoteMatch, error) {
	pattern, err := compilePattern(term, opts)
	if err != nil {
		return nil, err
	}

	deck, err := s.opener.Open(ctx, deckPath, true)
	if err != nil {
		return nil, fmt.Errorf("opening deck: %w", err)
	}
	defer deck.Close()

	records, err := extractSnapshot(deck)
	if err != nil {
		return nil, err
	}

	slideSet := slideFilter(opts.Slides)
	var results []domain.NoteMatch
	for _, rec := range records {
		if slideSet != nil && !slideSet[rec.SlideNumber] {
			continue
		}
		notes := rec.Notes
		if notes == "" {
			continue
		}

		locs := pattern.FindAllStringIndex(notes, -1)
		if len(locs) == 0 {
			continue
		}

		match := domain.NoteMatch{
			SlideNumber: rec.SlideNumber,
			SlideTitle:  rec.SlideTitle,
			Preview:     truncate(notes, previewLimit),
		}
		for _, loc := range locs {
			match.Matches = append(match.Matches, domain.MatchDetail{
				Start:   loc[0],
				End:     loc[1],
				Matched: notes[loc[0]:loc[1]],
				Context: snippet(notes, loc[0], loc[1]),
			})
		}
		results = append(results, match)
		logger.Debug("slide %d: %d match(es)", rec.SlideNumber, len(locs))
	}

	return results, nil
}

// PreviewReplace shows per-slide before/after text without writing.
func (s *ReplaceService) PreviewReplace(ctx context.Context, deckPath, term, replacement string, opts domain.SearchOptions) ([]domain.ReplacePreview, error) {
	pattern, err := compilePattern(term, opts)
	if err != nil {
		return nil, err
	}

	deck, err := s.opener.Open(ctx, deckPath, true)
	if err != nil {
		return nil, fmt.Errorf("opening deck: %w", err)
	}
	defer deck.Close()

	records, err := extractSnapshot(deck)
	if err != nil {
		return nil, err
	}

	slideSet := slideFilter(opts.Slides)
	var previews []domain.ReplacePreview
	for _, rec := range records {
		if slideSet != nil && !slideSet[rec.SlideNumber] {
			continue
		}
		if rec.Notes == "" {
			continue
		}

		count := len(pattern.FindAllStringIndex(rec.Notes, -1))
		if count == 0 {
			continue
		}

		previews = append(previews, domain.ReplacePreview{
			SlideNumber: rec.SlideNumber,
			SlideTitle:  rec.SlideTitle,
			MatchCount:  count,
			Original:    rec.Notes,
			Replaced:    pattern.ReplaceAllString(rec.Notes, replacement),
		})
	}

	return previews, nil
}

// Replace applies the substitution across the deck and persists it.
// Per-slide write failures are collected; a failed save is fatal.
func (s *ReplaceService) Replace(ctx context.Context, deckPath, term, replacement string, opts domain.SearchOptions) (domain.ReplaceResult, error) {
	var result domain.ReplaceResult

	pattern, err := compilePattern(term, opts)
	if err != nil {
		return result, err
	}

	deck, err := s.opener.Open(ctx, deckPath, false)
	if err != nil {
		return result, fmt.Errorf("opening deck: %w", err)
	}
	defer deck.Close()

	records, err := extractSnapshot(deck)
	if err != nil {
		return result, err
	}

	slideSet := slideFilter(opts.Slides)
	for _, rec := range records {
		if slideSet != nil && !slideSet[rec.SlideNumber] {
			continue
		}
		if rec.Notes == "" {
			continue
		}

		count := len(pattern.FindAllStringIndex(rec.Notes, -1))
		if count == 0 {
			continue
		}

		if err := deck.SetNotes(rec.SlideNumber, pattern.ReplaceAllString(rec.Notes, replacement)); err != nil {
			logger.Warn("slide %d: write failed: %v", rec.SlideNumber, err)
			result.Errors = append(result.Errors, domain.ApplyError{
				SlideNumber: rec.SlideNumber,
				Message:     err.Error(),
			})
			continue
		}
		result.SlidesModified = append(result.SlidesModified, rec.SlideNumber)
		result.TotalReplacements += count
		logger.Debug("slide %d: %d replacement(s)", rec.SlideNumber, count)
	}

	if err := deck.Persist(); err != nil {
		return result, fmt.Errorf("persisting deck: %w", err)
	}

	logger.Info("replaced %d occurrence(s) across %d slide(s)",
		result.TotalReplacements, len(result.SlidesModified))
	return result, nil
}

// compilePattern builds the search regexp per the options. Literal
// terms are quoted; case-insensitive is the default.
func compilePattern(term string, opts domain.SearchOptions) (*regexp.Regexp, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: empty search term", domain.ErrInvalidInput)
	}

	expr := term
	if !opts.Regex {
		expr = regexp.QuoteMeta(term)
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return pattern, nil
}

// slideFilter converts a slide list to a lookup set, nil when empty.
func slideFilter(slides []int) map[int]bool {
	if len(slides) == 0 {
		return nil
	}
	set := make(map[int]bool, len(slides))
	for _, n := range slides {
		set[n] = true
	}
	return set
}

// snippet builds a context excerpt around a match, clamped to rune
// boundaries, with ellipses when truncated.
func snippet(text string, start, end int) string {
	from := boundary(text, start-contextRadius)
	to := boundary(text, end+contextRadius)

	out := text[from:to]
	if from > 0 {
		out = "..." + out
	}
	if to < len(text) {
		out += "..."
	}
	return strings.ReplaceAll(out, "\n", " ")
}

// truncate shortens text to at most limit bytes on a rune boundary.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:boundary(text, limit)] + "..."
}

// boundary clamps pos into [0, len(text)] and backs up to the start of
// a rune.
func boundary(text string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(text) {
		return len(text)
	}
	for pos > 0 && !utf8.RuneStart(text[pos]) {
		pos--
	}
	return pos
}
