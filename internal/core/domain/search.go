package domain

// SearchOptions controls matching for find and replace over notes.
type SearchOptions struct {
	// CaseSensitive matches case exactly when true.
	CaseSensitive bool

	// Regex treats the search term as a regular expression.
	Regex bool

	// Slides restricts the operation to these slide numbers.
	// Empty means all slides.
	Slides []int
}

// MatchDetail is one occurrence of a search term within a slide's notes.
type MatchDetail struct {
	// Start and End are byte offsets into the notes text.
	Start int
	End   int

	// Matched is the matched text.
	Matched string

	// Context is a snippet of surrounding text with ellipses.
	Context string
}

// NoteMatch reports all occurrences of a search term on one slide.
type NoteMatch struct {
	SlideNumber int
	SlideTitle  string
	Matches     []MatchDetail

	// Preview is the leading portion of the notes text.
	Preview string
}

// ReplacePreview shows the effect a replacement would have on one slide
// without applying it.
type ReplacePreview struct {
	SlideNumber int
	SlideTitle  string
	MatchCount  int
	Original    string
	Replaced    string
}

// ReplaceResult reports an applied find/replace run.
type ReplaceResult struct {
	// SlidesModified lists slides whose notes were rewritten.
	SlidesModified []int

	// TotalReplacements counts individual substitutions.
	TotalReplacements int

	// Errors lists per-slide write failures.
	Errors []ApplyError
}
