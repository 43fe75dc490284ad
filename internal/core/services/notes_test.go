package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxnotes-cli/internal/adapters/driven/deck/memory"
	"github.com/voxprep/voxnotes-cli/internal/codecs/docx"
	"github.com/voxprep/voxnotes-cli/internal/codecs/markdown"
	"github.com/voxprep/voxnotes-cli/internal/codecs/text"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driving"
)

func allCodecs() []driven.Codec {
	return []driven.Codec{text.New(), markdown.New(), docx.New()}
}

func newFixture(t *testing.T, slides ...memory.Slide) (*NotesService, *memory.Deck) {
	t.Helper()
	deck := memory.NewDeck(slides...)
	opener := memory.NewOpener()
	opener.Register("deck.pptx", deck)
	return NewNotesService(opener, allCodecs(), nil), deck
}

func TestNotesService_Extract(t *testing.T) {
	svc, _ := newFixture(t,
		memory.Slide{Title: "Intro", Notes: "welcome\x00 text"},
		memory.Slide{Title: "  Setup \n", Notes: ""},
	)

	records, err := svc.Extract(context.Background(), "deck.pptx")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Control characters are stripped on the way in.
	assert.Equal(t, domain.NotesRecord{SlideNumber: 1, SlideTitle: "Intro", Notes: "welcome text"}, records[0])
	assert.Equal(t, domain.NotesRecord{SlideNumber: 2, SlideTitle: "Setup", Notes: ""}, records[1])
}

func TestNotesService_Extract_DeckMissing(t *testing.T) {
	svc := NewNotesService(memory.NewOpener(), allCodecs(), nil)
	_, err := svc.Extract(context.Background(), "nope.pptx")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotesService_ExportRoundTrip(t *testing.T) {
	for _, ext := range []string{".txt", ".md", ".docx"} {
		t.Run(ext, func(t *testing.T) {
			svc, _ := newFixture(t,
				memory.Slide{Title: "Intro", Notes: "hello\n\nworld"},
				memory.Slide{Title: "", Notes: ""},
			)

			outPath := filepath.Join(t.TempDir(), "notes"+ext)
			n, err := svc.Export(context.Background(), "deck.pptx", outPath)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			// Re-importing the untouched export is a no-op diff.
			changes, err := svc.Preview(context.Background(), "deck.pptx", outPath)
			require.NoError(t, err)
			assert.Empty(t, changes)
		})
	}
}

func TestNotesService_Export_UnsupportedExtension(t *testing.T) {
	svc, _ := newFixture(t, memory.Slide{})
	_, err := svc.Export(context.Background(), "deck.pptx", filepath.Join(t.TempDir(), "notes.pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestNotesService_Preview(t *testing.T) {
	svc, _ := newFixture(t,
		memory.Slide{Title: "One", Notes: "original one"},
		memory.Slide{Title: "Two", Notes: "original two"},
		memory.Slide{Title: "Three", Notes: ""},
	)

	edited := "Slide 1: One\noriginal one\n\nSlide 2: Two\nchanged two\n\nSlide 3: Three\nbrand new\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	changes, err := svc.Preview(context.Background(), "deck.pptx", editedPath)
	require.NoError(t, err)
	require.Len(t, changes, 2)

	assert.Equal(t, 2, changes[0].SlideNumber)
	assert.Equal(t, domain.ChangeModified, changes[0].Type)
	assert.Equal(t, 3, changes[1].SlideNumber)
	assert.Equal(t, domain.ChangeAdded, changes[1].Type)
}

func TestNotesService_Preview_EditedFileMissing(t *testing.T) {
	svc, _ := newFixture(t, memory.Slide{})
	_, err := svc.Preview(context.Background(), "deck.pptx", filepath.Join(t.TempDir(), "gone.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotesService_Import(t *testing.T) {
	svc, deck := newFixture(t,
		memory.Slide{Title: "One", Notes: "keep me"},
		memory.Slide{Title: "Two", Notes: "replace me"},
	)

	edited := "Slide 1: One\nkeep me\n\nSlide 2: Two\nreplaced\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	outcome, err := svc.Import(context.Background(), "deck.pptx", editedPath, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, outcome.Applied)
	assert.Empty(t, outcome.Errors)

	persisted := deck.Persisted()
	require.Len(t, persisted, 2)
	assert.Equal(t, "keep me", persisted[0].Notes)
	assert.Equal(t, "replaced", persisted[1].Notes)
}

func TestNotesService_Import_AllowedSubset(t *testing.T) {
	svc, deck := newFixture(t,
		memory.Slide{Notes: "a"},
		memory.Slide{Notes: "b"},
		memory.Slide{Notes: "c"},
	)

	edited := "Slide 1\nA2\n\nSlide 2\nB2\n\nSlide 3\nC2\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	outcome, err := svc.Import(context.Background(), "deck.pptx", editedPath, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, outcome.Applied)

	slides := deck.Slides()
	assert.Equal(t, "a", slides[0].Notes)
	assert.Equal(t, "B2", slides[1].Notes)
	assert.Equal(t, "c", slides[2].Notes)
}

func TestNotesService_Import_RemovalWritesEmpty(t *testing.T) {
	svc, deck := newFixture(t, memory.Slide{Notes: "obsolete"})

	edited := "Slide 1\n[No notes]\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	outcome, err := svc.Import(context.Background(), "deck.pptx", editedPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, outcome.Applied)
	assert.Empty(t, deck.Persisted()[0].Notes)
}

func TestNotesService_Import_PersistFailurePropagates(t *testing.T) {
	svc, deck := newFixture(t, memory.Slide{Notes: "old"})
	deck.FailPersist = true

	edited := "Slide 1\nnew\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	_, err := svc.Import(context.Background(), "deck.pptx", editedPath, nil)
	assert.ErrorIs(t, err, domain.ErrDeckFailure)
}

func TestNotesService_Import_RecordsHistory(t *testing.T) {
	deck := memory.NewDeck(memory.Slide{Notes: "old"})
	opener := memory.NewOpener()
	opener.Register("deck.pptx", deck)
	history := &stubHistory{}
	svc := NewNotesService(opener, allCodecs(), history)

	edited := "Slide 1\nnew\n"
	editedPath := filepath.Join(t.TempDir(), "edited.txt")
	require.NoError(t, os.WriteFile(editedPath, []byte(edited), 0600))

	_, err := svc.Import(context.Background(), "deck.pptx", editedPath, nil)
	require.NoError(t, err)

	require.Len(t, history.runs, 1)
	run := history.runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "deck.pptx", run.DeckPath)
	assert.Equal(t, domain.FormatText, run.Format)
	assert.Equal(t, 1, run.Applied)
	assert.Zero(t, run.Failed)
}

func TestNotesService_Stats(t *testing.T) {
	svc, _ := newFixture(t,
		memory.Slide{Notes: "four words right here"},
		memory.Slide{Notes: "two words"},
		memory.Slide{Notes: "   "},
	)

	stats, err := svc.Stats(context.Background(), "deck.pptx")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSlides)
	assert.Equal(t, 2, stats.SlidesWithNotes)
	assert.Equal(t, 1, stats.SlidesWithout)
	assert.Equal(t, 6, stats.TotalWords)
	assert.Equal(t, 3, stats.AvgWordsPerSlide)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driving.NotesService = (*NotesService)(nil)
	var _ driving.ReplaceService = (*ReplaceService)(nil)
}

// stubHistory captures recorded runs.
type stubHistory struct {
	runs []driven.ImportRun
}

func (s *stubHistory) Record(_ context.Context, run driven.ImportRun) error {
	s.runs = append(s.runs, run)
	return nil
}

func (s *stubHistory) List(_ context.Context, _ int) ([]driven.ImportRun, error) {
	return s.runs, nil
}

func (s *stubHistory) Close() error { return nil }
