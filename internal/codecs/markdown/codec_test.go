package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, domain.FormatMarkdown, New().Format())
}

func TestEncode(t *testing.T) {
	records := []domain.NotesRecord{
		{SlideNumber: 1, SlideTitle: "Intro", Notes: "Welcome."},
		{SlideNumber: 2, Notes: ""},
	}

	data, err := New().Encode(records)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "# Speaker Notes\n"))
	assert.Contains(t, out, "## Slide 1: Intro\n")
	assert.Contains(t, out, "Welcome.\n")
	assert.Contains(t, out, "## Slide 2\n")
	assert.Contains(t, out, "[No notes]\n")
	assert.Contains(t, out, "\n---\n")
}

func TestRoundTrip(t *testing.T) {
	records := []domain.NotesRecord{
		{SlideNumber: 1, SlideTitle: "Intro", Notes: "Welcome.\n\nSecond paragraph."},
		{SlideNumber: 3, SlideTitle: "", Notes: ""},
		{SlideNumber: 9, SlideTitle: "Q & A", Notes: "Leave ten minutes."},
	}

	codec := New()
	data, err := codec.Encode(records)
	require.NoError(t, err)

	parsed, err := codec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, records, parsed)
}

func TestDecode_HandEdited(t *testing.T) {
	edited := strings.Join([]string{
		"# Speaker Notes",
		"",
		"some preamble the editor added",
		"",
		"## slide 2: Setup",
		"",
		"New setup instructions.",
		"More detail on a second line.",
		"",
		"***",
		"",
		"### not a slide heading",
		"",
		"## Slide 5",
		"",
		"[No notes]",
		"",
		"---",
	}, "\n")

	parsed, err := New().Decode([]byte(edited))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, 2, parsed[0].SlideNumber)
	assert.Equal(t, "Setup", parsed[0].SlideTitle)
	assert.Equal(t, "New setup instructions.\nMore detail on a second line.", parsed[0].Notes)

	assert.Equal(t, 5, parsed[1].SlideNumber)
	assert.Equal(t, "", parsed[1].Notes)
}

func TestDecode_NonSlideHeadingInsideBodySkipped(t *testing.T) {
	data := "## Slide 1\nbody line\n## Notes for later\nmore body\n"

	parsed, err := New().Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	// The stray heading is decoration; the body around it survives.
	assert.Equal(t, "body line\nmore body", parsed[0].Notes)
}

func TestDecode_NoHeaders(t *testing.T) {
	parsed, err := New().Decode([]byte("# Title\n\nplain prose\n"))
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := New().Decode([]byte{0xc3, 0x28})
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Codec = (*Codec)(nil)
}
