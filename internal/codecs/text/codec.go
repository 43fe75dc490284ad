// Package text implements the tabular plain-text notes encoding (.txt).
package text

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
	banner    = "SPEAKER NOTES"
	separator = "--------------------------------------------------"
	underline = "=================================================="
)

// Codec reads and writes the tabular text encoding. Headers carry no
// marker prefix; slides are divided by dashed separator lines.
type Codec struct{}

// New creates a new text codec.
func New() *Codec {
	return &Codec{}
}

// Format returns the encoding this codec handles.
func (c *Codec) Format() domain.Format {
	return domain.FormatText
}

// Encode renders the snapshot as a plain text file.
func (c *Codec) Encode(records []domain.NotesRecord) ([]byte, error) {
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString(underline + "\n\n")

	for _, rec := range records {
		b.WriteString(codecs.HeaderLine(rec) + "\n")
		b.WriteString(codecs.Body(rec) + "\n\n")
		b.WriteString(separator + "\n\n")
	}

	return []byte(b.String()), nil
}

// Decode recovers a snapshot from a plain text file. Banner, underline,
// and separator lines are skipped; anything before the first header is
// discarded.
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
		if slide, title, ok := codecs.ParseHeader(trimmed); ok {
			acc.StartSlide(slide, title)
			continue
		}
		acc.AddLine(line)
	}

	return acc.Records(), nil
}

// isRule reports whether a line is a decoration or separator rule made
// entirely of dashes or equals signs.
func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '=' {
			return false
		}
	}
	return true
}
