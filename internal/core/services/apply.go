package services

import (
	"fmt"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// Apply writes a change list back to an open deck. If allowed is
// non-empty, changes for other slides are filtered out first and do not
// appear in the outcome at all. Per-slide write failures are collected
// and the loop continues; a Persist failure is fatal and propagated.
func Apply(deck driven.Deck, changes []domain.ChangeRecord, allowed []int) (domain.ApplyOutcome, error) {
	var outcome domain.ApplyOutcome

	if len(allowed) > 0 {
		allowedSet := make(map[int]bool, len(allowed))
		for _, n := range allowed {
			allowedSet[n] = true
		}
		filtered := changes[:0:0]
		for _, ch := range changes {
			if allowedSet[ch.SlideNumber] {
				filtered = append(filtered, ch)
			}
		}
		changes = filtered
	}

	count, err := deck.SlideCount()
	if err != nil {
		return outcome, fmt.Errorf("reading slide count: %w", err)
	}

	for _, ch := range changes {
		if ch.SlideNumber < 1 || ch.SlideNumber > count {
			logger.Warn("slide %d not in deck (%d slides), skipping", ch.SlideNumber, count)
			outcome.Skipped = append(outcome.Skipped, ch.SlideNumber)
			continue
		}

		if err := deck.SetNotes(ch.SlideNumber, ch.EditedNotes); err != nil {
			logger.Warn("slide %d: write failed: %v", ch.SlideNumber, err)
			outcome.Errors = append(outcome.Errors, domain.ApplyError{
				SlideNumber: ch.SlideNumber,
				Message:     err.Error(),
			})
			continue
		}

		logger.Debug("slide %d: notes written", ch.SlideNumber)
		outcome.Applied = append(outcome.Applied, ch.SlideNumber)
	}

	// One batched save for the whole run.
	if err := deck.Persist(); err != nil {
		return outcome, fmt.Errorf("persisting deck: %w", err)
	}

	return outcome, nil
}
