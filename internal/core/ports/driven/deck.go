package driven

import (
	"context"
	"time"
)

// Deck is the live interface to one open slide deck. It is the only
// boundary the notes core depends on for reading and writing slide-level
// text. The core neither opens nor closes the underlying session beyond
// the Deck handed to it; lifetime belongs to the caller.
//
// Slide numbers are 1-based throughout.
type Deck interface {
	// SlideCount returns the number of slides in the deck.
	SlideCount() (int, error)

	// Notes returns the speaker notes for a slide, empty if none.
	Notes(slide int) (string, error)

	// SetNotes replaces the speaker notes for a slide.
	SetNotes(slide int, text string) error

	// Title returns the slide title, empty if none.
	Title(slide int) (string, error)

	// Persist commits pending writes to the backing store. Writes are
	// batched: callers invoke Persist once after a run of SetNotes.
	Persist() error

	// Close releases the deck session. Close does not persist.
	Close() error
}

// DeckOpener opens deck sessions. Retry behaviour around flaky backends
// is the opener's internal concern, configured by RetryPolicy; the core
// calls Open once per logical operation.
type DeckOpener interface {
	// Open opens the deck at path. A read-only deck rejects SetNotes
	// and Persist.
	Open(ctx context.Context, path string, readOnly bool) (Deck, error)
}

// RetryPolicy controls how a DeckOpener retries a failed open.
type RetryPolicy struct {
	// Attempts is the maximum number of open attempts, minimum 1.
	Attempts int

	// Delay is the pause between attempts.
	Delay time.Duration
}

// DefaultRetryPolicy matches the backend's historical behaviour of three
// attempts spaced 1.5 seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Delay: 1500 * time.Millisecond}
}
