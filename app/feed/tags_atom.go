package feed

import "encoding/xml"

// Atom author capture is feed-level only; item authors are not part of the
// output schema.
func (d *document) startAtomAuthor(_ []xml.Attr) {
	s := &d.state
	if s.inChannelOnly() && s.feedType == FeedTypeAtom {
		s.sub = subAtomAuthor
	}
}

func (d *document) endAtomAuthor() {
	if d.state.sub == subAtomAuthor {
		d.state.sub = subNone
	}
}

func (d *document) textAtomName(data string) {
	s := &d.state
	if s.sub == subAtomAuthor {
		s.channelAtomAuthorName = data
	}
}

func (d *document) textAtomEmail(data string) {
	s := &d.state
	if s.sub == subAtomAuthor {
		s.channelAtomAuthorEmail = data
	}
}

// Atom <logo> fills the channel image slot when no RSS <image> beat it to it.
func (d *document) textAtomLogo(data string) {
	s := &d.state
	if s.inChannelOnly() && s.channelImage == "" {
		s.channelImage += data
	}
}
