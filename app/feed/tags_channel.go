package feed

import (
	"encoding/xml"
	"strings"
)

func (d *document) startChannel(_ []xml.Attr) {
	d.state.feedType = FeedTypeRSS
	d.enterChannel()
}

func (d *document) startAtomFeed(_ []xml.Attr) {
	d.state.feedType = FeedTypeAtom
	d.enterChannel()
}

func (d *document) enterChannel() {
	d.state.scope = scopeChannel
	d.state.resetChannel()
}

func (d *document) endChannel() {
	if d.state.scope == scopeNone {
		return
	}
	d.writeChannel(d.finalizeChannel())
	d.state.scope = scopeNone
	d.state.sub = subNone
}

func (d *document) startItem(_ []xml.Attr) {
	d.state.scope = scopeItem
	d.state.resetItem()
}

func (d *document) endItem() {
	s := &d.state
	if s.scope != scopeItem {
		return
	}

	// Items without a valid http(s) enclosure vanish: no record, no count.
	if s.itemHasValidEnclosure {
		rec := d.finalizeItem()
		d.writeItem(rec)
		s.itemPubdates = append(s.itemPubdates, rec.PubDate)
		s.itemCount++
	}

	s.scope = scopeChannel
	s.sub = subNone
}

// image toggles a sub-scope that redirects <url> text into the channel or
// item image accumulator and suppresses title/description/link/generator
// capture at channel scope.
func (d *document) startImage(_ []xml.Attr) {
	s := &d.state
	if s.inChannelOnly() || s.inItem() {
		s.sub = subImage
	}
}

func (d *document) endImage() {
	if d.state.sub == subImage {
		d.state.sub = subNone
	}
}

func (d *document) textTitle(data string) {
	s := &d.state
	if s.inItem() {
		s.itemTitle += data
	} else if s.inChannelOnly() && s.sub != subImage && s.channelTitle == "" {
		s.channelTitle = data
	}
}

func (d *document) textDescription(data string) {
	s := &d.state
	if s.inItem() {
		s.itemDescription += data
	} else if s.inChannelOnly() && s.sub != subImage && s.channelDescription == "" {
		s.channelDescription = data
	}
}

func (d *document) textGenerator(data string) {
	s := &d.state
	if s.inChannelOnly() && s.sub != subImage && s.channelGenerator == "" {
		s.channelGenerator = data
	}
}

func (d *document) textLanguage(data string) {
	s := &d.state
	if s.inChannelOnly() && s.channelLanguage == "" {
		s.channelLanguage = data
	}
}

func (d *document) textLastBuildDate(data string) {
	s := &d.state
	if s.inChannelOnly() && s.channelLastBuildDate == 0 {
		s.channelLastBuildDate = pubDateToTimestamp(data)
	}
}

// textPubDate covers pubDate, published and atom:updated. Item dates stay
// raw strings until finalization; the channel date is parsed immediately.
func (d *document) textPubDate(data string) {
	s := &d.state
	if s.inItem() {
		s.itemPubDate += data
	} else if s.inChannelOnly() && s.channelPubDate == 0 {
		s.channelPubDate = pubDateToTimestamp(data)
	}
}

// textURL handles <url> inside an <image> block.
func (d *document) textURL(data string) {
	s := &d.state
	if s.sub != subImage {
		return
	}
	text := strings.TrimSpace(data)
	if s.inChannelOnly() {
		s.channelImage += text
	} else if s.inItem() {
		s.itemImage += text
	}
}

// textLink handles the text-content form of <link> (RSS); the attribute form
// is handled by startLink.
func (d *document) textLink(data string) {
	s := &d.state
	if s.inItem() {
		s.itemLink += data
	} else if s.inChannelOnly() && s.sub != subImage && s.channelLink == "" {
		s.channelLink = data
	}
}

// startLink handles the attribute form of <link> and <atom:link>. The first
// element in document order wins for each rel target, regardless of which
// spelling the document used.
func (d *document) startLink(attrs []xml.Attr) {
	s := &d.state

	var rel, href, length, linkType string
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "rel":
			rel = attr.Value
		case "href":
			href = attr.Value
		case "length":
			length = attr.Value
		case "type":
			linkType = attr.Value
		}
	}

	switch rel {
	case "alternate":
		if s.inItem() && s.itemLink == "" {
			s.itemLink = href
		} else if s.inChannelOnly() && s.channelLink == "" {
			s.channelLink = href
		}
	case "enclosure":
		if s.inItem() && s.itemEnclosureURL == "" {
			s.itemEnclosureURL = href
			s.itemEnclosureLength = length
			s.itemEnclosureType = linkType
			s.markEnclosureValidity()
		}
	case "hub":
		if s.inChannelOnly() && s.channelPubsubHubURL == "" {
			s.channelPubsubHubURL = href
		}
	case "self":
		if s.inChannelOnly() && s.channelPubsubSelfURL == "" {
			s.channelPubsubSelfURL = href
		}
	default:
		if href == "" {
			return
		}
		if s.inItem() && s.itemLink == "" {
			s.itemLink = href
		} else if s.inChannelOnly() && s.channelLink == "" {
			s.channelLink = href
		}
	}
}
