package feed

import (
	"encoding/xml"
	"strconv"
	"strings"
)

func (d *document) textItunesAuthor(data string) {
	s := &d.state
	if s.inItem() {
		if s.itemItunesAuthor == "" {
			s.itemItunesAuthor = data
		}
	} else if s.inChannel() {
		if s.channelItunesAuthor == "" {
			s.channelItunesAuthor = data
		}
	}
}

// itunes:category carries its value in the text attribute; nested categories
// each arrive as their own element.
func (d *document) startItunesCategory(attrs []xml.Attr) {
	s := &d.state
	if !s.inChannelOnly() {
		return
	}
	for _, attr := range attrs {
		if attr.Name.Local == "text" {
			if val := strings.TrimSpace(attr.Value); val != "" {
				s.channelItunesCategories = append(s.channelItunesCategories, val)
			}
			return
		}
	}
}

func (d *document) startItunesDuration(_ []xml.Attr) {
	s := &d.state
	if s.inItem() && s.sub != subAltEnclosure {
		s.itemItunesDuration = 0
	}
}

func (d *document) textItunesDuration(data string) {
	s := &d.state
	if s.inItem() && s.sub != subAltEnclosure {
		s.itemItunesDuration = timeToSeconds(data)
	}
}

// textItunesEpisode keeps only the digits of the value, so "S01E05" yields
// 105 and "Episode 42" yields 42. Values with no digits at all stay unset.
func (d *document) textItunesEpisode(data string) {
	s := &d.state
	if !s.inItem() {
		return
	}

	var digits strings.Builder
	for _, r := range data {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return
	}

	if parsed, err := strconv.ParseInt(digits.String(), 10, 64); err == nil {
		if parsed > 1000000 {
			parsed = 1000000
		}
		s.itemItunesEpisode = strconv.FormatInt(parsed, 10)
	}
}

func (d *document) textItunesEpisodeType(data string) {
	s := &d.state
	if s.inItem() && s.itemItunesEpisodeType == "" {
		s.itemItunesEpisodeType = data
	}
}

func (d *document) textItunesExplicit(data string) {
	s := &d.state
	val := strings.ToLower(strings.TrimSpace(data))
	flag := 0
	switch val {
	case "true", "yes", "explicit", "1":
		flag = 1
	}

	if s.inItem() {
		s.itemItunesExplicit = flag
	} else if s.inChannel() {
		s.channelExplicit = flag
	}
}

// itunes:image usually carries href (sometimes url); some feeds use text
// content instead, which textItunesImage picks up.
func (d *document) startItunesImage(attrs []xml.Attr) {
	s := &d.state
	for _, attr := range attrs {
		if attr.Name.Local == "href" || attr.Name.Local == "url" {
			if s.inItem() {
				s.itemItunesImage = attr.Value
			} else if s.inChannel() {
				s.channelItunesImage = attr.Value
			}
			return
		}
	}
}

func (d *document) textItunesImage(data string) {
	s := &d.state
	if s.inItem() {
		s.itemItunesImage += data
	} else if s.inChannel() {
		s.channelItunesImage += data
	}
}

func (d *document) startItunesOwner(_ []xml.Attr) {
	s := &d.state
	if s.inChannelOnly() {
		s.sub = subOwner
	}
}

func (d *document) endItunesOwner() {
	if d.state.sub == subOwner {
		d.state.sub = subNone
	}
}

func (d *document) textItunesName(data string) {
	s := &d.state
	if s.sub == subOwner {
		s.channelItunesOwnerName = data
	}
}

func (d *document) textItunesEmail(data string) {
	s := &d.state
	if s.sub == subOwner {
		s.channelItunesOwnerEmail = data
	}
}

func (d *document) textItunesNewFeedURL(data string) {
	s := &d.state
	if s.inChannelOnly() && s.channelItunesNewFeedURL == "" {
		s.channelItunesNewFeedURL = data
	}
}

func (d *document) textItunesSeason(data string) {
	s := &d.state
	if s.inItem() && s.itemItunesSeason == "" {
		s.itemItunesSeason = data
	}
}

func (d *document) textItunesSummary(data string) {
	s := &d.state
	if s.inItem() {
		s.itemItunesSummary += data
	} else if s.inChannel() {
		s.channelItunesSummary += data
	}
}

func (d *document) textItunesTitle(data string) {
	s := &d.state
	if s.inItem() {
		s.itemItunesTitle += data
	}
}

func (d *document) textItunesType(data string) {
	s := &d.state
	if s.inChannelOnly() && s.channelItunesType == "" {
		s.channelItunesType = data
	}
}
