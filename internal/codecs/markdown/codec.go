// Package markdown implements the lightweight-markup notes encoding
// (.md). Slide headers are level-2 headings; slides are divided by
// horizontal rules.
package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/voxprep/voxnotes-cli/internal/codecs"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

const (
	docTitle  = "# Speaker Notes"
	marker    = "## "
	separator = "---"
)

// Codec reads and writes the markdown encoding.
type Codec struct{}

// New creates a new markdown codec.
func New() *Codec {
	return &Codec{}
}

// Format returns the encoding this codec handles.
func (c *Codec) Format() domain.Format {
	return domain.FormatMarkdown
}

// Encode renders the snapshot as a markdown file.
func (c *Codec) Encode(records []domain.NotesRecord) ([]byte, error) {
	var b strings.Builder
	b.WriteString(docTitle + "\n\n")

	for _, rec := range records {
		b.WriteString(marker + codecs.HeaderLine(rec) + "\n\n")
		b.WriteString(codecs.Body(rec) + "\n\n")
		b.WriteString(separator + "\n\n")
	}

	return []byte(b.String()), nil
}

// Decode recovers a snapshot from a markdown file. The document title,
// horizontal rules, and headings that do not match the slide grammar
// are skipped; anything before the first slide heading is discarded.
func (c *Codec) Decode(data []byte) ([]domain.NotesRecord, error) {
	if !utf8.Valid(data) {
		return nil, domain.ErrMalformedInput
	}

	acc := codecs.NewAccumulator()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		if isRule(trimmed) {
			continue
		}
		if heading, ok := strings.CutPrefix(trimmed, "##"); ok && !strings.HasPrefix(heading, "#") {
			if slide, title, headerOK := codecs.ParseHeader(heading); headerOK {
				acc.StartSlide(slide, title)
			}
			// Non-slide level-2 headings are decoration.
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			// Document title or other heading decoration.
			continue
		}
		acc.AddLine(line)
	}

	return acc.Records(), nil
}

// isRule reports whether a line is a markdown horizontal rule.
func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '*' && r != '_' {
			return false
		}
	}
	return true
}
