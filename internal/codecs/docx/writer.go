package docx

import (
	"strings"

	"github.com/voxprep/voxnotes-cli/internal/codecs"
	"github.com/voxprep/voxnotes-cli/internal/core/domain"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const relsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// documentXML builds the word/document.xml part for a snapshot.
func documentXML(records []domain.NotesRecord) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	b.WriteString(`<w:body>`)

	writeParagraph(&b, "Speaker Notes", runBold)

	for _, rec := range records {
		writeParagraph(&b, codecs.HeaderLine(rec), runBold)

		body := codecs.Body(rec)
		if body == codecs.Placeholder {
			writeParagraph(&b, body, runItalic)
		} else {
			for _, line := range strings.Split(body, "\n") {
				writeParagraph(&b, line, runPlain)
			}
		}

		// Empty paragraph as the slide separator.
		b.WriteString(`<w:p/>`)
	}

	b.WriteString(`</w:body>`)
	b.WriteString(`</w:document>`)
	return b.String()
}

// run styles for writeParagraph.
const (
	runPlain = iota
	runBold
	runItalic
)

func writeParagraph(b *strings.Builder, text string, style int) {
	b.WriteString(`<w:p><w:r>`)
	switch style {
	case runBold:
		b.WriteString(`<w:rPr><w:b/></w:rPr>`)
	case runItalic:
		b.WriteString(`<w:rPr><w:i/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

// xmlReplacer escapes the characters that are unsafe inside element text.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
