// Package pptx reads and writes speaker notes inside PowerPoint
// presentations. A deck is an OOXML zip archive; slides are addressed
// in presentation order, 1-based, and each slide may reference a notes
// part holding the speaker notes placeholder.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

// Ensure Deck implements the interface.
var _ driven.Deck = (*Deck)(nil)

// slideEntry pairs a slide part with its notes part, if any.
type slideEntry struct {
	slidePart string
	notesPart string
}

// Deck is an opened pptx file held in memory until Persist.
type Deck struct {
	path     string
	readOnly bool
	closed   bool

	// parts maps archive entry names to their content, order preserves
	// the original entry sequence for rewriting.
	parts map[string][]byte
	order []string

	slides []slideEntry
}

// newDeck parses the archive and resolves the slide ordering.
func newDeck(path string, data []byte, readOnly bool) (*Deck, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a pptx archive: %v", domain.ErrDeckFailure, err)
	}

	d := &Deck{
		path:     path,
		readOnly: readOnly,
		parts:    make(map[string][]byte, len(reader.File)),
	}
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDeckFailure, file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrDeckFailure, file.Name, err)
		}
		d.parts[file.Name] = content
		d.order = append(d.order, file.Name)
	}

	if err := d.resolveSlides(); err != nil {
		return nil, err
	}
	return d, nil
}

// resolveSlides walks presentation.xml and the relationship parts to
// build the ordered slide list.
func (d *Deck) resolveSlides() error {
	presData, ok := d.parts[presentationPart]
	if !ok {
		return fmt.Errorf("%w: missing %s", domain.ErrDeckFailure, presentationPart)
	}

	var pres presentationXML
	if err := xml.Unmarshal(presData, &pres); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", domain.ErrDeckFailure, presentationPart, err)
	}

	rels, err := parseRelationships(d.parts[presentationRels])
	if err != nil {
		return fmt.Errorf("%w: parsing %s: %v", domain.ErrDeckFailure, presentationRels, err)
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		targets[rel.ID] = resolveTarget("ppt", rel.Target)
	}

	for _, id := range pres.SlideIDs {
		slidePart, ok := targets[id.RID]
		if !ok {
			return fmt.Errorf("%w: unresolved slide relationship %s", domain.ErrDeckFailure, id.RID)
		}
		notesPart, err := d.notesPartFor(slidePart)
		if err != nil {
			return err
		}
		d.slides = append(d.slides, slideEntry{slidePart: slidePart, notesPart: notesPart})
	}
	return nil
}

// notesPartFor finds the notes part a slide references, empty when the
// slide has none.
func (d *Deck) notesPartFor(slidePart string) (string, error) {
	rels, err := parseRelationships(d.parts[relsPartFor(slidePart)])
	if err != nil {
		return "", fmt.Errorf("%w: parsing rels for %s: %v", domain.ErrDeckFailure, slidePart, err)
	}
	for _, rel := range rels {
		if rel.Type == notesRelType {
			return resolveTarget("ppt/slides", rel.Target), nil
		}
	}
	return "", nil
}

// SlideCount returns the number of slides in presentation order.
func (d *Deck) SlideCount() (int, error) {
	if d.closed {
		return 0, domain.ErrDeckClosed
	}
	return len(d.slides), nil
}

// Notes returns the speaker notes text for a slide, empty when the
// slide has no notes part or an empty placeholder.
func (d *Deck) Notes(slide int) (string, error) {
	entry, err := d.slideAt(slide)
	if err != nil {
		return "", err
	}
	if entry.notesPart == "" {
		return "", nil
	}
	text, _ := placeholderText(d.parts[entry.notesPart], map[string]bool{"body": true}, "\n")
	return text, nil
}

// Title returns the slide's title placeholder text.
func (d *Deck) Title(slide int) (string, error) {
	entry, err := d.slideAt(slide)
	if err != nil {
		return "", err
	}
	text, _ := placeholderText(d.parts[entry.slidePart],
		map[string]bool{"title": true, "ctrTitle": true}, " ")
	return text, nil
}

// SetNotes replaces a slide's speaker notes in the in-memory archive.
// Slides without a notes placeholder cannot be written.
func (d *Deck) SetNotes(slide int, text string) error {
	entry, err := d.slideAt(slide)
	if err != nil {
		return err
	}
	if d.readOnly {
		return domain.ErrReadOnly
	}
	if entry.notesPart == "" {
		return fmt.Errorf("%w: slide %d has no notes placeholder", domain.ErrDeckFailure, slide)
	}

	data := d.parts[entry.notesPart]
	start, end, ok := notesBodyRegion(data)
	if !ok {
		return fmt.Errorf("%w: slide %d notes part has no body placeholder", domain.ErrDeckFailure, slide)
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(text))
	buf.Write(data[:start])
	buf.WriteString(notesBodyXML(text))
	buf.Write(data[end:])
	d.parts[entry.notesPart] = buf.Bytes()
	return nil
}

// Persist rewrites the pptx file on disk from the in-memory parts.
func (d *Deck) Persist() error {
	if d.closed {
		return domain.ErrDeckClosed
	}
	if d.readOnly {
		return domain.ErrReadOnly
	}

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range d.order {
		w, err := writer.Create(name)
		if err != nil {
			writer.Close()
			return fmt.Errorf("%w: writing %s: %v", domain.ErrDeckFailure, name, err)
		}
		if _, err := w.Write(d.parts[name]); err != nil {
			writer.Close()
			return fmt.Errorf("%w: writing %s: %v", domain.ErrDeckFailure, name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: finalising archive: %v", domain.ErrDeckFailure, err)
	}

	if err := os.WriteFile(d.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: saving %s: %v", domain.ErrDeckFailure, d.path, err)
	}
	return nil
}

// Close releases the deck. Unpersisted writes are discarded.
func (d *Deck) Close() error {
	d.closed = true
	return nil
}

func (d *Deck) slideAt(slide int) (slideEntry, error) {
	if d.closed {
		return slideEntry{}, domain.ErrDeckClosed
	}
	if slide < 1 || slide > len(d.slides) {
		return slideEntry{}, fmt.Errorf("%w: slide %d of %d", domain.ErrSlideNotFound, slide, len(d.slides))
	}
	return d.slides[slide-1], nil
}
