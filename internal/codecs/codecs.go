// Package codecs holds the pieces shared by all three notes file
// encodings: the slide header grammar, the empty-notes placeholder, and
// the accumulator that turns a classified line stream back into a
// snapshot. The per-format codecs in the subpackages only decide what a
// header, separator, or body unit looks like on the wire.
package codecs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// Placeholder is the literal body written for a slide with no notes.
// A parsed body equal to it after trimming collapses to empty notes.
const Placeholder = "[No notes]"

// headerPattern matches the shared header grammar:
//
//	Slide <n>[: <title>]
//
// "Slide" is matched case-insensitively and the title is optional.
var headerPattern = regexp.MustCompile(`(?i)^slide\s+(\d+)\s*(?::\s*(.*))?$`)

// HeaderLine renders the marker-free header for a record. The title is
// sanitised and flattened to a single line so it cannot break the
// header grammar.
func HeaderLine(rec domain.NotesRecord) string {
	title := strings.Join(strings.Fields(domain.Sanitize(rec.SlideTitle)), " ")
	if title == "" {
		return fmt.Sprintf("Slide %d", rec.SlideNumber)
	}
	return fmt.Sprintf("Slide %d: %s", rec.SlideNumber, title)
}

// ParseHeader recognises a marker-free header line and extracts the
// slide number and optional title. Slide numbers must be positive.
func ParseHeader(line string) (slide int, title string, ok bool) {
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}

// Body normalises a record's notes for serialisation: sanitised, outer
// whitespace trimmed, with the placeholder standing in for empty notes.
func Body(rec domain.NotesRecord) string {
	body := strings.TrimSpace(domain.Sanitize(rec.Notes))
	if body == "" {
		return Placeholder
	}
	return body
}

// Accumulator rebuilds a snapshot from classified parse units. Body
// lines accumulate into the open slide; content seen before the first
// header is discarded. A slide number appearing under two headers is
// de-duplicated keep-last: the later body wins, at the position of the
// first occurrence.
type Accumulator struct {
	records []domain.NotesRecord
	byNum   map[int]int

	open  bool
	num   int
	title string
	lines []string
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{byNum: make(map[int]int)}
}

// StartSlide flushes any open slide and begins a new accumulation
// context for the given header.
func (a *Accumulator) StartSlide(slide int, title string) {
	a.flush()
	a.open = true
	a.num = slide
	a.title = strings.TrimSpace(domain.Sanitize(title))
	a.lines = a.lines[:0]
}

// AddLine appends one body unit to the open slide. Lines outside any
// slide are dropped.
func (a *Accumulator) AddLine(line string) {
	if !a.open {
		return
	}
	a.lines = append(a.lines, domain.Sanitize(line))
}

// Records flushes the final open slide and returns the snapshot.
func (a *Accumulator) Records() []domain.NotesRecord {
	a.flush()
	return a.records
}

func (a *Accumulator) flush() {
	if !a.open {
		return
	}
	a.open = false

	body := strings.TrimSpace(strings.Join(a.lines, "\n"))
	if body == Placeholder {
		body = ""
	}

	rec := domain.NotesRecord{
		SlideNumber: a.num,
		SlideTitle:  a.title,
		Notes:       body,
	}

	if i, seen := a.byNum[rec.SlideNumber]; seen {
		a.records[i] = rec
		return
	}
	a.byNum[rec.SlideNumber] = len(a.records)
	a.records = append(a.records, rec)
}
