package pptx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/logger"
)

// Ensure Opener implements the interface.
var _ driven.DeckOpener = (*Opener)(nil)

// Opener opens pptx files from disk. Transient failures, typically a
// presentation held open by another process, are retried per the
// policy.
type Opener struct {
	retry driven.RetryPolicy
}

// NewOpener creates an opener with the given retry policy.
func NewOpener(retry driven.RetryPolicy) *Opener {
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	return &Opener{retry: retry}
}

// Open reads and parses the deck at path. A missing file fails
// immediately; other failures are retried.
func (o *Opener) Open(ctx context.Context, path string, readOnly bool) (driven.Deck, error) {
	var lastErr error
	for attempt := 1; attempt <= o.retry.Attempts; attempt++ {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
			}
			lastErr = err
		} else {
			deck, err := newDeck(path, data, readOnly)
			if err == nil {
				return deck, nil
			}
			lastErr = err
		}

		if attempt < o.retry.Attempts {
			logger.Warn("open %s attempt %d/%d failed: %v", path, attempt, o.retry.Attempts, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(o.retry.Delay):
			}
		}
	}
	return nil, fmt.Errorf("opening %s after %d attempt(s): %w", path, o.retry.Attempts, lastErr)
}
