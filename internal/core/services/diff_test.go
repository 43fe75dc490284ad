package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

func rec(n int, title, notes string) domain.NotesRecord {
	return domain.NotesRecord{SlideNumber: n, SlideTitle: title, Notes: notes}
}

func TestCompare_Identical(t *testing.T) {
	snapshot := []domain.NotesRecord{
		rec(1, "A", "first"),
		rec(2, "B", ""),
		rec(3, "", "third"),
	}
	assert.Empty(t, Compare(snapshot, snapshot))
}

func TestCompare_Classification(t *testing.T) {
	tests := []struct {
		name     string
		original domain.NotesRecord
		edited   domain.NotesRecord
		expected *domain.ChangeRecord
	}{
		{
			name:     "equal no change",
			original: rec(1, "", "A"),
			edited:   rec(1, "", "A"),
			expected: nil,
		},
		{
			name:     "modified",
			original: rec(1, "", "A"),
			edited:   rec(1, "", "B"),
			expected: &domain.ChangeRecord{SlideNumber: 1, OriginalNotes: "A", EditedNotes: "B", Type: domain.ChangeModified},
		},
		{
			name:     "added",
			original: rec(1, "", ""),
			edited:   rec(1, "", "hello"),
			expected: &domain.ChangeRecord{SlideNumber: 1, OriginalNotes: "", EditedNotes: "hello", Type: domain.ChangeAdded},
		},
		{
			name:     "removed",
			original: rec(1, "", "hello"),
			edited:   rec(1, "", ""),
			expected: &domain.ChangeRecord{SlideNumber: 1, OriginalNotes: "hello", EditedNotes: "", Type: domain.ChangeRemoved},
		},
		{
			name:     "equal after trim",
			original: rec(1, "", "  hello \n"),
			edited:   rec(1, "", "hello"),
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			changes := Compare([]domain.NotesRecord{tc.original}, []domain.NotesRecord{tc.edited})
			if tc.expected == nil {
				assert.Empty(t, changes)
				return
			}
			require.Len(t, changes, 1)
			assert.Equal(t, *tc.expected, changes[0])
		})
	}
}

func TestCompare_AbsenceAsymmetry(t *testing.T) {
	original := []domain.NotesRecord{
		rec(1, "", "one"),
		rec(2, "", "two"),
	}
	edited := []domain.NotesRecord{
		rec(1, "", "one"),
	}
	// Slide 2 is missing from the edited copy: leave untouched, not a
	// removal.
	assert.Empty(t, Compare(original, edited))
}

func TestCompare_SlideOnlyInEdited(t *testing.T) {
	edited := []domain.NotesRecord{
		rec(4, "New", "fresh notes"),
		rec(5, "Empty", ""),
	}

	changes := Compare(nil, edited)
	require.Len(t, changes, 1)
	assert.Equal(t, 4, changes[0].SlideNumber)
	assert.Equal(t, domain.ChangeAdded, changes[0].Type)
	assert.Equal(t, "New", changes[0].SlideTitle)
	assert.Equal(t, "fresh notes", changes[0].EditedNotes)
}

func TestCompare_OutputAscendingBySlide(t *testing.T) {
	original := []domain.NotesRecord{
		rec(1, "", "a"), rec(5, "", "e"), rec(3, "", "c"),
	}
	edited := []domain.NotesRecord{
		rec(5, "", "E"), rec(1, "", "A"), rec(3, "", "C"),
	}

	changes := Compare(original, edited)
	require.Len(t, changes, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{changes[0].SlideNumber, changes[1].SlideNumber, changes[2].SlideNumber})
}

func TestCompare_TitleFallsBackToEdited(t *testing.T) {
	original := []domain.NotesRecord{rec(2, "", "old")}
	edited := []domain.NotesRecord{rec(2, "From Edit", "new")}

	changes := Compare(original, edited)
	require.Len(t, changes, 1)
	assert.Equal(t, "From Edit", changes[0].SlideTitle)
}

func TestCompare_OriginalTitlePreferred(t *testing.T) {
	original := []domain.NotesRecord{rec(2, "Canonical", "old")}
	edited := []domain.NotesRecord{rec(2, "Edited Title", "new")}

	changes := Compare(original, edited)
	require.Len(t, changes, 1)
	assert.Equal(t, "Canonical", changes[0].SlideTitle)
}
