package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

// ExtractInput is the input schema for the extract_notes tool.
type ExtractInput struct {
	Deck string `json:"deck" jsonschema:"path to the pptx file"`
}

// ExtractOutput is the output schema for the extract_notes tool.
type ExtractOutput struct {
	Slides []SlideNotesOutput `json:"slides"`
	Count  int                `json:"count"`
}

// SlideNotesOutput is one slide's notes.
type SlideNotesOutput struct {
	Slide int    `json:"slide"`
	Title string `json:"title,omitempty"`
	Notes string `json:"notes"`
}

// PreviewInput is the input schema for the preview_changes tool.
type PreviewInput struct {
	Deck   string `json:"deck" jsonschema:"path to the pptx file"`
	Edited string `json:"edited" jsonschema:"path to the edited notes file (.txt, .md, or .docx)"`
}

// PreviewOutput is the output schema for the preview_changes tool.
type PreviewOutput struct {
	Changes []ChangeOutput `json:"changes"`
	Count   int            `json:"count"`
}

// ChangeOutput is one classified per-slide change.
type ChangeOutput struct {
	Slide    int    `json:"slide"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type"`
	Original string `json:"original,omitempty"`
	Edited   string `json:"edited,omitempty"`
}

// ImportInput is the input schema for the apply_changes tool.
type ImportInput struct {
	Deck   string `json:"deck" jsonschema:"path to the pptx file"`
	Edited string `json:"edited" jsonschema:"path to the edited notes file"`
	Slides []int  `json:"slides,omitempty" jsonschema:"restrict the import to these slide numbers"`
}

// ImportOutput is the output schema for the apply_changes tool.
type ImportOutput struct {
	Applied []int         `json:"applied"`
	Skipped []int         `json:"skipped,omitempty"`
	Errors  []ErrorOutput `json:"errors,omitempty"`
}

// ErrorOutput is a per-slide failure.
type ErrorOutput struct {
	Slide   int    `json:"slide"`
	Message string `json:"message"`
}

// StatsInput is the input schema for the deck_stats tool.
type StatsInput struct {
	Deck string `json:"deck" jsonschema:"path to the pptx file"`
}

// StatsOutput is the output schema for the deck_stats tool.
type StatsOutput struct {
	TotalSlides      int `json:"total_slides"`
	SlidesWithNotes  int `json:"slides_with_notes"`
	SlidesWithout    int `json:"slides_without_notes"`
	TotalWords       int `json:"total_words"`
	TotalCharacters  int `json:"total_characters"`
	AvgWordsPerSlide int `json:"avg_words_per_slide"`
}

// FindInput is the input schema for the find_notes tool.
type FindInput struct {
	Deck          string `json:"deck" jsonschema:"path to the pptx file"`
	Term          string `json:"term" jsonschema:"the text or pattern to search for"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	Regex         bool   `json:"regex,omitempty" jsonschema:"treat the term as a regular expression"`
	Slides        []int  `json:"slides,omitempty" jsonschema:"restrict the search to these slide numbers"`
}

// FindOutput is the output schema for the find_notes tool.
type FindOutput struct {
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
}

// MatchOutput is one slide's matches.
type MatchOutput struct {
	Slide    int      `json:"slide"`
	Title    string   `json:"title,omitempty"`
	Contexts []string `json:"contexts"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_notes",
		Description: "Extract every slide's speaker notes from a PowerPoint deck",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_changes",
		Description: "Show what importing an edited notes file would change, without writing",
	}, s.handlePreview)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "apply_changes",
		Description: "Apply edited speaker notes back to a PowerPoint deck",
	}, s.handleImport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "deck_stats",
		Description: "Summarise speaker notes coverage across a deck",
	}, s.handleStats)

	if s.ports.Replace != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "find_notes",
			Description: "Search a deck's speaker notes for a term",
		}, s.handleFind)
	}
}

// handleExtract handles the extract_notes tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	records, err := s.ports.Notes.Extract(ctx, input.Deck)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		Slides: make([]SlideNotesOutput, len(records)),
		Count:  len(records),
	}
	for i := range records {
		output.Slides[i] = SlideNotesOutput{
			Slide: records[i].SlideNumber,
			Title: records[i].SlideTitle,
			Notes: records[i].Notes,
		}
	}
	return nil, output, nil
}

// handlePreview handles the preview_changes tool invocation.
func (s *Server) handlePreview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PreviewInput,
) (*mcp.CallToolResult, PreviewOutput, error) {
	changes, err := s.ports.Notes.Preview(ctx, input.Deck, input.Edited)
	if err != nil {
		return nil, PreviewOutput{}, err
	}

	output := PreviewOutput{
		Changes: make([]ChangeOutput, len(changes)),
		Count:   len(changes),
	}
	for i := range changes {
		output.Changes[i] = ChangeOutput{
			Slide:    changes[i].SlideNumber,
			Title:    changes[i].SlideTitle,
			Type:     string(changes[i].Type),
			Original: changes[i].OriginalNotes,
			Edited:   changes[i].EditedNotes,
		}
	}
	return nil, output, nil
}

// handleImport handles the apply_changes tool invocation.
func (s *Server) handleImport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ImportInput,
) (*mcp.CallToolResult, ImportOutput, error) {
	outcome, err := s.ports.Notes.Import(ctx, input.Deck, input.Edited, input.Slides)
	if err != nil {
		return nil, ImportOutput{}, err
	}

	output := ImportOutput{
		Applied: outcome.Applied,
		Skipped: outcome.Skipped,
		Errors:  make([]ErrorOutput, len(outcome.Errors)),
	}
	for i := range outcome.Errors {
		output.Errors[i] = ErrorOutput{
			Slide:   outcome.Errors[i].SlideNumber,
			Message: outcome.Errors[i].Message,
		}
	}
	return nil, output, nil
}

// handleStats handles the deck_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Notes.Stats(ctx, input.Deck)
	if err != nil {
		return nil, StatsOutput{}, err
	}

	return nil, StatsOutput{
		TotalSlides:      stats.TotalSlides,
		SlidesWithNotes:  stats.SlidesWithNotes,
		SlidesWithout:    stats.SlidesWithout,
		TotalWords:       stats.TotalWords,
		TotalCharacters:  stats.TotalCharacters,
		AvgWordsPerSlide: stats.AvgWordsPerSlide,
	}, nil
}

// handleFind handles the find_notes tool invocation.
func (s *Server) handleFind(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindInput,
) (*mcp.CallToolResult, FindOutput, error) {
	opts := domain.SearchOptions{
		CaseSensitive: input.CaseSensitive,
		Regex:         input.Regex,
		Slides:        input.Slides,
	}

	matches, err := s.ports.Replace.Find(ctx, input.Deck, input.Term, opts)
	if err != nil {
		return nil, FindOutput{}, err
	}

	output := FindOutput{
		Matches: make([]MatchOutput, len(matches)),
	}
	for i := range matches {
		contexts := make([]string, len(matches[i].Matches))
		for j := range matches[i].Matches {
			contexts[j] = matches[i].Matches[j].Context
		}
		output.Matches[i] = MatchOutput{
			Slide:    matches[i].SlideNumber,
			Title:    matches[i].SlideTitle,
			Contexts: contexts,
		}
		output.Count += len(contexts)
	}
	return nil, output, nil
}
