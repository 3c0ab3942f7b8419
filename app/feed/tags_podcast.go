package feed

import (
	"encoding/xml"
	"strconv"
	"strings"
)

func attrByName(attrs []xml.Attr, local string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// podcast:alternateEnclosure acts as a suppressor: nested itunes:duration,
// podcast:chapters and podcast:transcript elements describe the alternate
// rendition, not the item, and must not reach their normal handlers.
func (d *document) startAlternateEnclosure(_ []xml.Attr) {
	s := &d.state
	if s.inItem() {
		s.sub = subAltEnclosure
	}
}

func (d *document) endAlternateEnclosure() {
	if d.state.sub == subAltEnclosure {
		d.state.sub = subNone
	}
}

func (d *document) startPodcastChapters(attrs []xml.Attr) {
	s := &d.state
	if !s.inItem() || s.sub == subAltEnclosure {
		return
	}

	url, _ := attrByName(attrs, "url")
	chapterType, _ := attrByName(attrs, "type")
	s.itemChapters = append(s.itemChapters, Chapter{
		URL:  truncateString(url, 768),
		Type: truncateString(chapterType, 128),
	})
}

func (d *document) startPodcastTranscript(attrs []xml.Attr) {
	s := &d.state
	if !s.inItem() || s.sub == subAltEnclosure {
		return
	}

	url, _ := attrByName(attrs, "url")
	transcriptType, _ := attrByName(attrs, "type")
	s.itemTranscripts = append(s.itemTranscripts, Transcript{
		URL:  truncateString(url, 768),
		Type: truncateString(transcriptType, 128),
	})
}

func (d *document) startPodcastFunding(attrs []xml.Attr) {
	s := &d.state
	url, _ := attrByName(attrs, "url")

	if s.inItem() {
		s.sub = subFunding
		if url != "" {
			s.itemFundingURL = url
		}
	} else if s.inChannel() {
		s.sub = subFunding
		if url != "" {
			s.channelFundingURL = url
		}
	}
}

func (d *document) textPodcastFunding(data string) {
	s := &d.state
	if s.sub != subFunding {
		return
	}
	if s.inItem() {
		s.itemFundingText += data
	} else {
		s.channelFundingText += data
	}
}

func (d *document) endPodcastFunding() {
	if d.state.sub == subFunding {
		d.state.sub = subNone
	}
}

func (d *document) startPodcastLocked(attrs []xml.Attr) {
	s := &d.state
	if !s.inChannelOnly() {
		return
	}

	s.sub = subLocked

	if owner, ok := attrByName(attrs, "owner"); ok {
		s.channelPodcastOwner = owner
	}
	if email, ok := attrByName(attrs, "email"); ok {
		if strings.TrimSpace(s.channelPodcastOwner) == "" {
			s.channelPodcastOwner = email
		}
	}
}

func (d *document) textPodcastLocked(data string) {
	s := &d.state
	if s.sub != subLocked {
		return
	}

	s.channelLockedText += data
	switch strings.ToLower(strings.TrimSpace(s.channelLockedText)) {
	case "yes", "true":
		s.channelLocked = 1
	}
}

func (d *document) endPodcastLocked() {
	if d.state.sub == subLocked {
		d.state.sub = subNone
	}
}

func (d *document) startPodcastPerson(attrs []xml.Attr) {
	s := &d.state
	if !s.inItem() {
		return
	}

	s.sub = subPerson
	s.personName = ""
	s.personRole = ""
	s.personGroup = ""
	s.personImg = ""
	s.personHref = ""

	for _, attr := range attrs {
		switch attr.Name.Local {
		case "role":
			s.personRole = attr.Value
		case "group":
			s.personGroup = attr.Value
		case "img":
			s.personImg = attr.Value
		case "href":
			s.personHref = attr.Value
		}
	}
}

func (d *document) textPodcastPerson(data string) {
	s := &d.state
	if s.sub == subPerson {
		s.personName += data
	}
}

func (d *document) endPodcastPerson() {
	s := &d.state
	if s.sub != subPerson {
		return
	}
	s.sub = subNone

	s.itemPersons = append(s.itemPersons, Person{
		Name:  truncateString(s.personName, 128),
		Role:  truncateString(s.personRole, 128),
		Group: truncateString(s.personGroup, 128),
		Img:   truncateString(s.personImg, 768),
		Href:  truncateString(s.personHref, 768),
	})
}

func (d *document) startPodcastSoundbite(attrs []xml.Attr) {
	s := &d.state
	if !s.inItem() {
		return
	}

	s.sub = subSoundbite
	s.soundbiteTitle = ""
	s.soundbiteStart = ""
	s.soundbiteDuration = ""

	for _, attr := range attrs {
		switch attr.Name.Local {
		case "startTime":
			s.soundbiteStart = attr.Value
		case "duration":
			s.soundbiteDuration = attr.Value
		}
	}
}

func (d *document) textPodcastSoundbite(data string) {
	s := &d.state
	if s.sub == subSoundbite {
		s.soundbiteTitle += data
	}
}

func (d *document) endPodcastSoundbite() {
	s := &d.state
	if s.sub != subSoundbite {
		return
	}
	s.sub = subNone

	s.itemSoundbites = append(s.itemSoundbites, Soundbite{
		Title:    truncateString(s.soundbiteTitle, 500),
		Start:    s.soundbiteStart,
		Duration: s.soundbiteDuration,
	})
}

func (d *document) textPodcastGUID(data string) {
	s := &d.state
	if s.inChannelOnly() {
		s.channelPodcastGUID += data
	}
}

func (d *document) startPodcastValue(attrs []xml.Attr) {
	s := &d.state
	if !s.inChannel() {
		return
	}

	modelType, _ := attrByName(attrs, "type")
	method, _ := attrByName(attrs, "method")
	suggested, _ := attrByName(attrs, "suggested")

	s.sub = subValue
	s.valueModel = ValueModel{Type: modelType, Method: method, Suggested: suggested}
	s.valueRecipients = nil
}

func (d *document) startValueRecipient(attrs []xml.Attr) {
	s := &d.state
	if s.sub != subValue {
		return
	}

	var vr ValueRecipient
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "name":
			vr.Name = attr.Value
		case "type":
			vr.Type = attr.Value
		case "address":
			vr.Address = attr.Value
		case "split":
			if split, err := strconv.Atoi(attr.Value); err == nil {
				vr.Split = split
			}
		case "fee":
			switch strings.ToLower(attr.Value) {
			case "true", "yes":
				vr.Fee = true
			}
		case "customKey":
			key := attr.Value
			vr.CustomKey = &key
		case "customValue":
			val := attr.Value
			vr.CustomValue = &val
		}
	}

	s.valueRecipients = append(s.valueRecipients, vr)
}

// endPodcastValue retains the block only when it gathered at least one
// recipient; empty blocks are dropped.
func (d *document) endPodcastValue() {
	s := &d.state
	if s.sub != subValue {
		return
	}
	s.sub = subNone

	if len(s.valueRecipients) > 0 {
		block := ValueBlock{Model: s.valueModel, Recipients: s.valueRecipients}
		if s.inItem() {
			s.itemValues = append(s.itemValues, block)
		} else {
			s.channelValues = append(s.channelValues, block)
		}
	}

	s.valueModel = ValueModel{}
	s.valueRecipients = nil
}
