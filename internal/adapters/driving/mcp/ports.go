package mcp

import (
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Notes provides the extract/preview/import surface.
	Notes driving.NotesService

	// Replace provides find and replace across notes.
	Replace driving.ReplaceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Notes == nil {
		return ErrMissingNotesService
	}
	// Replace is optional, its tools are skipped when absent
	return nil
}
