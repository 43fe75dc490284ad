// Package docx implements the rich-document notes encoding (.docx).
// The file is a minimal WordprocessingML package: slide headers are
// bold paragraph runs, the empty-notes placeholder is italic, and
// slides are divided by empty paragraphs.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/voxprep/voxnotes-cli/internal/codecs"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
	"github.com/voxprep/voxnotes-cli/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.Codec = (*Codec)(nil)

// Codec reads and writes the docx encoding.
type Codec struct{}

// New creates a new docx codec.
func New() *Codec {
	return &Codec{}
}

// Format returns the encoding this codec handles.
func (c *Codec) Format() domain.Format {
	return domain.FormatDocx
}

// Encode renders the snapshot as a docx package.
func (c *Codec) Encode(records []domain.NotesRecord) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(records)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, part.content); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode recovers a snapshot from a docx file. Paragraph text is
// extracted from word/document.xml; a paragraph whose text matches the
// header grammar starts a slide whether or not the bold run survived
// editing, and every other paragraph accumulates as a body line.
func (c *Codec) Decode(data []byte) ([]domain.NotesRecord, error) {
	paragraphs, err := extractParagraphs(data)
	if err != nil {
		return nil, err
	}

	acc := codecs.NewAccumulator()
	for _, text := range paragraphs {
		if slide, title, ok := codecs.ParseHeader(text); ok {
			acc.StartSlide(slide, title)
			continue
		}
		acc.AddLine(text)
	}

	return acc.Records(), nil
}

// extractParagraphs walks word/document.xml and returns the text of
// each paragraph in order, empty paragraphs included.
func extractParagraphs(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.ErrMalformedInput
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, domain.ErrMalformedInput
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, domain.ErrMalformedInput
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var current strings.Builder
	var inParagraph, inText bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.ErrMalformedInput
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			case "br", "cr":
				if inParagraph {
					current.WriteString("\n")
				}
			case "tab":
				if inParagraph {
					current.WriteString("\t")
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			}
		}
	}

	return paragraphs, nil
}
