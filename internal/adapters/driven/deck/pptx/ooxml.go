package pptx

import (
	"bytes"
	"encoding/xml"
	"path"
	"strings"
)

const (
	presentationPart = "ppt/presentation.xml"
	presentationRels = "ppt/_rels/presentation.xml.rels"

	relNS        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	notesRelType = relNS + "/notesSlide"
	slideRelType = relNS + "/slide"
)

// presentationXML is the subset of ppt/presentation.xml we need: the
// ordered slide id list with its relationship references.
type presentationXML struct {
	SlideIDs []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// parseRelationships decodes a .rels part, returning nil on a missing
// part.
func parseRelationships(data []byte) ([]relationship, error) {
	if data == nil {
		return nil, nil
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, err
	}
	return rels.Rels, nil
}

// resolveTarget resolves a relationship target against the directory of
// the part that owns the .rels file.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

// relsPartFor returns the .rels part name for a given part.
func relsPartFor(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// placeholderText collects the text of the first placeholder shape
// whose type is in want. Paragraphs are joined with sep, explicit line
// breaks become newlines. The second return reports whether such a
// placeholder exists at all.
func placeholderText(data []byte, want map[string]bool, sep string) (string, bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		inShape bool
		phType  string
		inBody  bool
		inText  bool
		found   bool
		current strings.Builder
		paras   []string
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				inShape, phType = true, ""
			case "ph":
				if inShape {
					phType = attrValue(el, "type")
				}
			case "txBody":
				if inShape && want[phType] && !found {
					inBody, found = true, true
				}
			case "p":
				if inBody {
					current.Reset()
				}
			case "t":
				if inBody {
					inText = true
				}
			case "br":
				if inBody {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "sp":
				inShape = false
			case "txBody":
				inBody = false
			case "p":
				if inBody {
					paras = append(paras, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write([]byte(el))
			}
		}
	}

	return strings.Join(paras, sep), found
}

// notesBodyRegion locates the inner byte range of the notes body
// placeholder's txBody element, the region SetNotes rewrites.
func notesBodyRegion(data []byte) (start, end int, ok bool) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		inShape bool
		phType  string
		inBody  bool
	)

	for {
		before := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, false
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				inShape, phType = true, ""
			case "ph":
				if inShape {
					phType = attrValue(el, "type")
				}
			case "txBody":
				if inShape && phType == "body" {
					start = int(dec.InputOffset())
					inBody = true
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "sp":
				inShape = false
			case "txBody":
				if inBody {
					end = int(before)
					return start, end, start < end
				}
			}
		}
	}
}

func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// xmlEscaper escapes text destined for element content.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// notesBodyXML renders notes text as drawingml paragraphs, one per
// line, preserving blank lines as empty paragraphs.
func notesBodyXML(text string) string {
	var b strings.Builder
	b.WriteString("<a:bodyPr/><a:lstStyle/>")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteString("<a:p/>")
			continue
		}
		b.WriteString("<a:p><a:r><a:t>")
		b.WriteString(xmlEscaper.Replace(line))
		b.WriteString("</a:t></a:r></a:p>")
	}
	return b.String()
}
