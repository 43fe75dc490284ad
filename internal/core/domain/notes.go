package domain

// NotesRecord holds the speaker notes for a single slide.
// A snapshot is an ordered sequence of NotesRecords with unique slide
// numbers; snapshots are produced whole by extraction or parsing and are
// never mutated in place.
type NotesRecord struct {
	// SlideNumber is the 1-based slide position within the deck.
	// Numbers are unique within a snapshot but not necessarily
	// contiguous after filtering.
	SlideNumber int

	// SlideTitle is the slide's title text, possibly empty.
	// It is advisory only (display headers), never a join key.
	SlideTitle string

	// Notes is the synchronised payload. Internal newlines are
	// paragraph breaks; leading and trailing whitespace is not
	// significant.
	Notes string
}

// ChangeType classifies a detected per-slide difference.
type ChangeType string

const (
	// ChangeAdded means the original notes were empty and the edited
	// notes are not.
	ChangeAdded ChangeType = "added"

	// ChangeRemoved means the original notes were non-empty and the
	// edited notes are empty.
	ChangeRemoved ChangeType = "removed"

	// ChangeModified means both sides are non-empty and differ.
	ChangeModified ChangeType = "modified"
)

// ChangeRecord describes one slide whose notes differ between an original
// snapshot and a re-parsed edited snapshot. Both notes fields are trimmed.
type ChangeRecord struct {
	SlideNumber int
	SlideTitle  string

	OriginalNotes string
	EditedNotes   string

	Type ChangeType
}

// ApplyError records a per-slide write failure during apply.
type ApplyError struct {
	SlideNumber int
	Message     string
}

// ApplyOutcome reports the result of applying a change list to a deck.
// It is produced fresh by every apply call.
type ApplyOutcome struct {
	// Applied lists slide numbers whose notes were written.
	Applied []int

	// Skipped lists slide numbers that were present in the change list
	// but not attempted (for example, not found in the deck).
	Skipped []int

	// Errors lists per-slide write failures. A populated Errors list is
	// a partial failure, not a fatal one.
	Errors []ApplyError
}

// NotesStats summarises speaker-notes coverage across a deck.
type NotesStats struct {
	TotalSlides      int
	SlidesWithNotes  int
	SlidesWithout    int
	TotalCharacters  int
	TotalWords       int
	AvgWordsPerSlide int
}
