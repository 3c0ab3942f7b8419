package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Parser turns one feed document into canonical records. A Parser is safe
// for concurrent use; all per-document state lives in the document walker.
type Parser struct {
	entities map[string]string
	now      func() time.Time
}

// NewParser creates a parser using the given named-entity substitution
// table, or the built-in defaults when nil.
func NewParser(entities map[string]string) *Parser {
	if entities == nil {
		entities = defaultEntities()
	}
	return &Parser{
		entities: entities,
		now:      time.Now,
	}
}

// document walks a single feed payload, dispatching tokenizer events into
// the parsing context and delivering finalized records to the sink.
type document struct {
	state  parserState
	sink   Sink
	feedID *int64
	now    func() time.Time
}

func (d *document) writeChannel(rec *ChannelRecord) {
	if err := d.sink.WriteChannel(rec); err != nil {
		slog.Error("Failed to write channel record", "error", err)
	}
}

func (d *document) writeItem(rec *ItemRecord) {
	if err := d.sink.WriteItem(rec); err != nil {
		slog.Error("Failed to write item record", "error", err)
	}
}

// Run processes one XML payload and emits one channel record plus a record
// per item carrying a valid enclosure. An empty or whitespace-only payload
// still yields a single all-defaults channel record. A tokenizer error
// aborts the remainder of the document; records already emitted stay valid,
// so the worst failure mode is fewer records, never a crash.
func (p *Parser) Run(payload []byte, feedID *int64, sink Sink) error {
	d := &document{
		sink:   sink,
		feedID: feedID,
		now:    p.now,
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		d.writeChannel(d.finalizeChannel())
		return nil
	}

	decoder := xml.NewDecoder(bytes.NewReader(payload))
	decoder.Strict = false
	decoder.Entity = p.entities
	decoder.CharsetReader = charsetReader

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to tokenize feed document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			key := qualifiedName(t.Name)
			d.state.currentElement = key
			d.dispatchStart(key, t.Attr)
		case xml.CharData:
			// Inter-element whitespace is not content; text events route by
			// the most recently opened or closed element.
			data := string(t)
			if strings.TrimSpace(data) == "" {
				continue
			}
			d.dispatchText(d.state.currentElement, data)
		case xml.EndElement:
			key := qualifiedName(t.Name)
			d.state.currentElement = key
			d.dispatchEnd(key)
		}
	}
}
