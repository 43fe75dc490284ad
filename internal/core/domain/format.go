package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies one of the interchangeable notes file encodings.
// Format selection is always the caller's responsibility, dispatched on
// file extension, never inferred from content.
type Format string

const (
	// FormatText is the tabular plain-text encoding (.txt).
	FormatText Format = "text"

	// FormatMarkdown is the lightweight-markup encoding (.md).
	FormatMarkdown Format = "markdown"

	// FormatDocx is the rich-document encoding (.docx).
	FormatDocx Format = "docx"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Extension returns the canonical file extension for the format,
// including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatDocx:
		return ".docx"
	default:
		return ".txt"
	}
}

// Valid reports whether the format is one of the known encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatDocx:
		return true
	}
	return false
}

// FormatForPath resolves the notes format for a file path by extension.
// Returns ErrUnsupportedFormat for anything it does not recognise.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".docx":
		return FormatDocx, nil
	}
	return "", ErrUnsupportedFormat
}
