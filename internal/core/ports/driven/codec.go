package driven

import (
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// Codec is one serializer/parser pair for a notes file encoding.
// All three codecs encode the same record sequence; they differ only in
// slide-boundary markers and surface syntax, so a file written by Encode
// can be hand-edited and recovered by Decode.
type Codec interface {
	// Format returns the encoding this codec handles.
	Format() domain.Format

	// Encode renders an ordered snapshot into file bytes. Callers pass
	// records already ordered by slide number.
	Encode(records []domain.NotesRecord) ([]byte, error)

	// Decode recovers a snapshot from a (possibly hand-edited) file.
	// Decoding is tolerant: unrecognised lines are skipped, and a file
	// with no slide headers yields an empty snapshot, not an error.
	Decode(data []byte) ([]domain.NotesRecord, error)
}
