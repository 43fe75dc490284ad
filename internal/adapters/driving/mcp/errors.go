// Package mcp provides an MCP (Model Context Protocol) server adapter
// so AI assistants can inspect and edit a deck's speaker notes.
package mcp

import "errors"

// ErrMissingNotesService is returned when the notes service is not provided.
var ErrMissingNotesService = errors.New("mcp: notes service is required")
