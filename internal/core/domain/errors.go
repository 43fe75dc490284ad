package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a source deck or edited file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates an unrecognised file extension.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMalformedInput indicates an edited file that could not be read
	// or decoded at all. A file that decodes but contains zero slide
	// headers is an empty snapshot, not this error.
	ErrMalformedInput = errors.New("malformed input")

	// ErrDeckFailure indicates the deck backend rejected a read, write,
	// or persist operation.
	ErrDeckFailure = errors.New("deck operation failed")

	// ErrSlideNotFound indicates a slide number outside the deck.
	ErrSlideNotFound = errors.New("slide not found")

	// ErrDeckClosed indicates the deck session has been closed.
	ErrDeckClosed = errors.New("deck closed")

	// ErrReadOnly indicates a write against a deck opened read-only.
	ErrReadOnly = errors.New("deck opened read-only")
)
