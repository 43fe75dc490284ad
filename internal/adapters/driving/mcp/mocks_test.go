package mcp

import (
	"context"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// mockNotesService is a configurable notes service for handler tests.
type mockNotesService struct {
	records []domain.NotesRecord
	changes []domain.ChangeRecord
	outcome domain.ApplyOutcome
	stats   domain.NotesStats
	err     error

	importAllowed [][]int
}

func (m *mockNotesService) Extract(context.Context, string) ([]domain.NotesRecord, error) {
	return m.records, m.err
}

func (m *mockNotesService) Export(context.Context, string, string) (int, error) {
	return len(m.records), m.err
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

// mockReplaceService is a configurable replace service.
type mockReplaceService struct {
	matches []domain.NoteMatch
	err     error

	lastOpts domain.SearchOptions
}

func (m *mockReplaceService) Find(_ context.Context, _, _ string, opts domain.SearchOptions) ([]domain.NoteMatch, error) {
	m.lastOpts = opts
	return m.matches, m.err
}

func (m *mockReplaceService) PreviewReplace(context.Context, string, string, string, domain.SearchOptions) ([]domain.ReplacePreview, error) {
	return nil, m.err
}

func (m *mockReplaceService) Replace(context.Context, string, string, string, domain.SearchOptions) (domain.ReplaceResult, error) {
	return domain.ReplaceResult{}, m.err
}
