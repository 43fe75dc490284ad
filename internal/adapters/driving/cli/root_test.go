package cli

import (
	"bytes"
	"context"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

// mockNotesService is a configurable driving.NotesService for command
// tests.
type mockNotesService struct {
	records []domain.NotesRecord
	changes []domain.ChangeRecord
	outcome domain.ApplyOutcome
	stats   domain.NotesStats
	exportN int
	err     error

	importAllowed [][]int
}

func (m *mockNotesService) Extract(context.Context, string) ([]domain.NotesRecord, error) {
	return m.records, m.err
}

func (m *mockNotesService) Export(context.Context, string, string) (int, error) {
	return m.exportN, m.err
}

func (m *mockNotesService) Preview(context.Context, string, string) ([]domain.ChangeRecord, error) {
	return m.changes, m.err
}

func (m *mockNotesService) Import(_ context.Context, _, _ string, allowed []int) (domain.ApplyOutcome, error) {
	m.importAllowed = append(m.importAllowed, allowed)
	return m.outcome, m.err
}

func (m *mockNotesService) Stats(context.Context, string) (domain.NotesStats, error) {
	return m.stats, m.err
}

// mockReplaceService is a configurable driving.ReplaceService.
type mockReplaceService struct {
	matches  []domain.NoteMatch
	previews []domain.ReplacePreview
	result   domain.ReplaceResult
	err      error

	replaceCalls int
}

func (m *mockReplaceService) Find(context.Context, string, string, domain.SearchOptions) ([]domain.NoteMatch, error) {
	return m.matches, m.err
}

func (m *mockReplaceService) PreviewReplace(context.Context, string, string, string, domain.SearchOptions) ([]domain.ReplacePreview, error) {
	return m.previews, m.err
}

func (m *mockReplaceService) Replace(context.Context, string, string, string, domain.SearchOptions) (domain.ReplaceResult, error) {
	m.replaceCalls++
	return m.result, m.err
}

// mockHistoryStore is an in-memory driven.HistoryStore.
type mockHistoryStore struct {
	runs []driven.ImportRun
}

func (m *mockHistoryStore) Record(_ context.Context, run driven.ImportRun) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockHistoryStore) List(context.Context, int) ([]driven.ImportRun, error) {
	return m.runs, nil
}

func (m *mockHistoryStore) Close() error { return nil }

// setupTestServices installs mocks and returns them with a cleanup
// restoring the previous wiring.
func setupTestServices() (*mockNotesService, *mockReplaceService, func()) {
	oldNotes, oldReplace := notesService, replaceService
	notes := &mockNotesService{}
	replace := &mockReplaceService{}
	notesService, replaceService = notes, replace
	return notes, replace, func() {
		notesService, replaceService = oldNotes, oldReplace
	}
}

// execute runs the root command with args and captures its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
