package feed

import (
	"encoding/xml"
	"strings"
)

// markEnclosureValidity flags the item as emittable once it carries an
// enclosure with a sane URL scheme.
func (s *parserState) markEnclosureValidity() {
	url := strings.TrimSpace(s.itemEnclosureURL)
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		s.itemHasValidEnclosure = true
	}
}

func (d *document) startEnclosure(attrs []xml.Attr) {
	s := &d.state
	if !s.inItem() {
		return
	}

	// Only the first enclosure counts.
	if s.itemEnclosureURL != "" {
		return
	}

	for _, attr := range attrs {
		switch attr.Name.Local {
		case "url":
			s.itemEnclosureURL = attr.Value
		case "length":
			s.itemEnclosureLength = attr.Value
		case "type":
			s.itemEnclosureType = attr.Value
		}
	}

	s.markEnclosureValidity()
}

func (d *document) textGUID(data string) {
	s := &d.state
	if s.inItem() {
		s.itemGUID += data
	}
}

func (d *document) textContent(data string) {
	s := &d.state
	if s.inItem() {
		s.itemContent += data
	}
}

func (d *document) textContentEncoded(data string) {
	s := &d.state
	if s.inItem() {
		s.itemContentEncoded += data
	}
}
