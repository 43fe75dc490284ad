package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"txt extension", "notes.txt", FormatText},
		{"text extension", "notes.text", FormatText},
		{"md extension", "notes.md", FormatMarkdown},
		{"markdown extension", "notes.markdown", FormatMarkdown},
		{"docx extension", "notes.docx", FormatDocx},
		{"uppercase extension", "NOTES.TXT", FormatText},
		{"full path", "/tmp/deck/notes.md", FormatMarkdown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := FormatForPath(tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestFormatForPath_Unsupported(t *testing.T) {
	for _, path := range []string{"notes.pdf", "notes", "notes.pptx", ""} {
		_, err := FormatForPath(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, path)
	}
}

func TestFormat_Valid(t *testing.T) {
	assert.True(t, FormatText.Valid())
	assert.True(t, FormatMarkdown.Valid())
	assert.True(t, FormatDocx.Valid())
	assert.False(t, Format("rtf").Valid())
	assert.False(t, Format("").Valid())
}
