package services

import (
	"sort"
	"strings"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// Compare diffs a re-parsed edited snapshot against the original and
// returns the classified changes, ascending by slide number.
//
// The edited snapshot is authoritative only for slides it mentions:
// slides present in the original but absent from the edited copy are
// left untouched and never reported. Notes are compared after trimming,
// so formatting drift from the edit round trip does not register as a
// change.
func Compare(original, edited []domain.NotesRecord) []domain.ChangeRecord {
	origByNum := make(map[int]domain.NotesRecord, len(original))
	for _, rec := range original {
		origByNum[rec.SlideNumber] = rec
	}

	var changes []domain.ChangeRecord
	for _, rec := range edited {
		editedNotes := strings.TrimSpace(rec.Notes)

		orig, exists := origByNum[rec.SlideNumber]
		if !exists {
			// A new empty-notes slide with no prior counterpart is
			// not a change.
			if editedNotes == "" {
				continue
			}
			changes = append(changes, domain.ChangeRecord{
				SlideNumber: rec.SlideNumber,
				SlideTitle:  rec.SlideTitle,
				EditedNotes: editedNotes,
				Type:        domain.ChangeAdded,
			})
			continue
		}

		originalNotes := strings.TrimSpace(orig.Notes)
		if originalNotes == editedNotes {
			continue
		}

		change := domain.ChangeRecord{
			SlideNumber:   rec.SlideNumber,
			SlideTitle:    titleFor(orig, rec),
			OriginalNotes: originalNotes,
			EditedNotes:   editedNotes,
		}
		switch {
		case originalNotes == "":
			change.Type = domain.ChangeAdded
		case editedNotes == "":
			change.Type = domain.ChangeRemoved
		default:
			change.Type = domain.ChangeModified
		}
		changes = append(changes, change)
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].SlideNumber < changes[j].SlideNumber
	})
	return changes
}

// titleFor prefers the original record's title, falling back to the
// edited record's when the original has none.
func titleFor(orig, edited domain.NotesRecord) string {
	if orig.SlideTitle != "" {
		return orig.SlideTitle
	}
	return edited.SlideTitle
}
