package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

func TestStatsCmd_Output(t *testing.T) {
	notes, _, cleanup := setupTestServices()
	defer cleanup()
	notes.stats = domain.NotesStats{
		TotalSlides:      10,
		SlidesWithNotes:  7,
		SlidesWithout:    3,
		TotalWords:       420,
		TotalCharacters:  2600,
		AvgWordsPerSlide: 60,
	}

	out, err := execute("stats", "talk.pptx")
	require.NoError(t, err)

	assert.Contains(t, out, "Slides:            10")
	assert.Contains(t, out, "With notes:        7")
	assert.Contains(t, out, "Without notes:     3")
	assert.Contains(t, out, "Total words:       420")
	assert.Contains(t, out, "Avg words/slide:   60")
}

func TestStatsCmd_JSONOutput(t *testing.T) {
	notes, _, cleanup := setupTestServices()
	defer cleanup()
	notes.stats = domain.NotesStats{TotalSlides: 2}
	defer func() { statsJSON = false }()

	out, err := execute("stats", "--json", "talk.pptx")
	require.NoError(t, err)
	assert.Contains(t, out, "\"TotalSlides\": 2")
}

func TestStatsCmd_DeckMissing(t *testing.T) {
	notes, _, cleanup := setupTestServices()
	defer cleanup()
	notes.err = domain.ErrNotFound

	_, err := execute("stats", "gone.pptx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
