package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxnotes-cli/internal/adapters/driven/deck/memory"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

func newReplaceFixture(t *testing.T, slides ...memory.Slide) (*ReplaceService, *memory.Deck) {
	t.Helper()
	deck := memory.NewDeck(slides...)
	opener := memory.NewOpener()
	opener.Register("deck.pptx", deck)
	return NewReplaceService(opener), deck
}

func TestFind_LiteralCaseInsensitive(t *testing.T) {
	svc, _ := newReplaceFixture(t,
		memory.Slide{Title: "Config", Notes: "Contact Acme Corp about the ACME CORP account."},
		memory.Slide{Notes: "nothing relevant"},
		memory.Slide{Notes: ""},
	)

	matches, err := svc.Find(context.Background(), "deck.pptx", "acme corp", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, 1, m.SlideNumber)
	assert.Equal(t, "Config", m.SlideTitle)
	require.Len(t, m.Matches, 2)
	assert.Equal(t, "Acme Corp", m.Matches[0].Matched)
	assert.Equal(t, "ACME CORP", m.Matches[1].Matched)
	assert.Contains(t, m.Matches[0].Context, "Acme Corp")
}

func TestFind_CaseSensitive(t *testing.T) {
	svc, _ := newReplaceFixture(t,
		memory.Slide{Notes: "Acme and acme"},
	)

	matches, err := svc.Find(context.Background(), "deck.pptx", "acme", domain.SearchOptions{CaseSensitive: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Matches, 1)
	assert.Equal(t, "acme", matches[0].Matches[0].Matched)
}

func TestFind_Regex(t *testing.T) {
	svc, _ := newReplaceFixture(t,
		memory.Slide{Notes: "versions v1.2 and v3.4 shipped"},
	)

	matches, err := svc.Find(context.Background(), "deck.pptx", `v\d+\.\d+`, domain.SearchOptions{Regex: true})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Len(t, matches[0].Matches, 2)
}

func TestFind_LiteralTreatsRegexMetaAsText(t *testing.T) {
	svc, _ := newReplaceFixture(t,
		memory.Slide{Notes: "cost is $10 (approx)"},
	)

	matches, err := svc.Find(context.Background(), "deck.pptx", "(approx)", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "(approx)", matches[0].Matches[0].Matched)
}

func TestFind_InvalidRegex(t *testing.T) {
	svc, _ := newReplaceFixture(t, memory.Slide{Notes: "x"})
	_, err := svc.Find(context.Background(), "deck.pptx", "(unclosed", domain.SearchOptions{Regex: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFind_EmptyTerm(t *testing.T) {
	svc, _ := newReplaceFixture(t, memory.Slide{Notes: "x"})
	_, err := svc.Find(context.Background(), "deck.pptx", "", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreviewReplace(t *testing.T) {
	svc, deck := newReplaceFixture(t,
		memory.Slide{Notes: "ship v1 today, v1 forever"},
	)

	previews, err := svc.PreviewReplace(context.Background(), "deck.pptx", "v1", "v2", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, previews, 1)

	assert.Equal(t, 2, previews[0].MatchCount)
	assert.Equal(t, "ship v1 today, v1 forever", previews[0].Original)
	assert.Equal(t, "ship v2 today, v2 forever", previews[0].Replaced)

	// Preview writes nothing.
	assert.Equal(t, "ship v1 today, v1 forever", deck.Slides()[0].Notes)
	assert.Zero(t, deck.Persists)
}

func TestReplace_AppliesAndPersists(t *testing.T) {
	svc, deck := newReplaceFixture(t,
		memory.Slide{Notes: "old name here"},
		memory.Slide{Notes: "no match"},
		memory.Slide{Notes: "old name twice: old name"},
	)

	result, err := svc.Replace(context.Background(), "deck.pptx", "old name", "new name", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, result.SlidesModified)
	assert.Equal(t, 3, result.TotalReplacements)
	assert.Empty(t, result.Errors)

	persisted := deck.Persisted()
	assert.Equal(t, "new name here", persisted[0].Notes)
	assert.Equal(t, "no match", persisted[1].Notes)
	assert.Equal(t, "new name twice: new name", persisted[2].Notes)
}

func TestReplace_SlideFilter(t *testing.T) {
	svc, deck := newReplaceFixture(t,
		memory.Slide{Notes: "target"},
		memory.Slide{Notes: "target"},
	)

	result, err := svc.Replace(context.Background(), "deck.pptx", "target", "hit",
		domain.SearchOptions{Slides: []int{2}})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, result.SlidesModified)
	slides := deck.Slides()
	assert.Equal(t, "target", slides[0].Notes)
	assert.Equal(t, "hit", slides[1].Notes)
}

func TestReplace_PerSlideFailureContinues(t *testing.T) {
	svc, deck := newReplaceFixture(t,
		memory.Slide{Notes: "fix me"},
		memory.Slide{Notes: "fix me"},
	)
	deck.FailSetNotes = map[int]bool{1: true}

	result, err := svc.Replace(context.Background(), "deck.pptx", "fix", "done", domain.SearchOptions{})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, result.SlidesModified)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].SlideNumber)
}

func TestSnippet_Ellipses(t *testing.T) {
	long := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa MATCH bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	start := 59
	end := start + len("MATCH")

	out := snippet(long, start, end)
	assert.Contains(t, out, "MATCH")
	assert.True(t, len(out) < len(long))
	assert.Contains(t, out, "...")
}
