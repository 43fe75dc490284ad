// Package memory provides an in-memory deck backend for tests and dry
// runs. Persist snapshots the written state so tests can assert what a
// batched save would have committed.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

// Ensure interfaces are implemented.
var (
	_ driven.Deck       = (*Deck)(nil)
	_ driven.DeckOpener = (*Opener)(nil)
)

// Slide is one slide's state in a memory deck.
type Slide struct {
	Title string
	Notes string
}

// Deck is an in-memory implementation of driven.Deck.
type Deck struct {
	mu        sync.Mutex
	slides    []Slide
	persisted []Slide
	readOnly  bool
	closed    bool

	// Persists counts Persist calls.
	Persists int

	// FailSetNotes lists slide numbers whose writes should fail.
	FailSetNotes map[int]bool

	// FailPersist makes Persist return an error.
	FailPersist bool
}

// NewDeck creates a memory deck with the given slides.
func NewDeck(slides ...Slide) *Deck {
	return &Deck{slides: slides}
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return 0, domain.ErrDeckClosed
	}
	return len(d.slides), nil
}

// Notes returns the notes for a slide.
func (d *Deck) Notes(slide int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(slide); err != nil {
		return "", err
	}
	return d.slides[slide-1].Notes, nil
}

// SetNotes replaces the notes for a slide.
func (d *Deck) SetNotes(slide int, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(slide); err != nil {
		return err
	}
	if d.readOnly {
		return domain.ErrReadOnly
	}
	if d.FailSetNotes[slide] {
		return fmt.Errorf("%w: slide %d rejected write", domain.ErrDeckFailure, slide)
	}
	d.slides[slide-1].Notes = text
	return nil
}

// Title returns the title for a slide.
func (d *Deck) Title(slide int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(slide); err != nil {
		return "", err
	}
	return d.slides[slide-1].Title, nil
}

// Persist snapshots the current state as committed.
func (d *Deck) Persist() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return domain.ErrDeckClosed
	}
	if d.readOnly {
		return domain.ErrReadOnly
	}
	if d.FailPersist {
		return fmt.Errorf("%w: persist rejected", domain.ErrDeckFailure)
	}
	d.Persists++
	d.persisted = append([]Slide(nil), d.slides...)
	return nil
}

// Close marks the deck closed.
func (d *Deck) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Persisted returns the state committed by the last Persist.
func (d *Deck) Persisted() []Slide {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Slide(nil), d.persisted...)
}

// Slides returns the current (possibly unpersisted) state.
func (d *Deck) Slides() []Slide {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Slide(nil), d.slides...)
}

func (d *Deck) check(slide int) error {
	if d.closed {
		return domain.ErrDeckClosed
	}
	if slide < 1 || slide > len(d.slides) {
		return fmt.Errorf("%w: slide %d of %d", domain.ErrSlideNotFound, slide, len(d.slides))
	}
	return nil
}

// Opener is an in-memory implementation of driven.DeckOpener that
// serves registered decks by path.
type Opener struct {
	mu    sync.Mutex
	decks map[string]*Deck
}

// NewOpener creates an opener with no registered decks.
func NewOpener() *Opener {
	return &Opener{decks: make(map[string]*Deck)}
}

// Register associates a deck with a path.
func (o *Opener) Register(path string, deck *Deck) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.decks[path] = deck
}

// Open returns the deck registered at path.
func (o *Opener) Open(_ context.Context, path string, readOnly bool) (driven.Deck, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	deck, ok := o.decks[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	deck.mu.Lock()
	deck.closed = false
	deck.readOnly = readOnly
	deck.mu.Unlock()
	return deck, nil
}
