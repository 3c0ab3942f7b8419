package feed

import "encoding/xml"

type startFn func(d *document, attrs []xml.Attr)
type textFn func(d *document, data string)
type endFn func(d *document)

// The dispatch tables form a total function: keys without a handler are a
// no-op, never an error. Dual spellings of the same element register the
// same handler so RSS and Atom variants behave identically.
var (
	startHandlers map[string]startFn
	textHandlers  map[string]textFn
	endHandlers   map[string]endFn
)

func init() {
	startHandlers = map[string]startFn{
		"atom:author": (*document).startAtomAuthor,
		"author":      (*document).startAtomAuthor,
		"atom:feed":   (*document).startAtomFeed,
		"atom:link":   (*document).startLink,
		"channel":     (*document).startChannel,
		"enclosure":   (*document).startEnclosure,
		"image":       (*document).startImage,
		"item":        (*document).startItem,
		"atom:entry":  (*document).startItem,
		"itunes:category": (*document).startItunesCategory,
		"itunes:duration": (*document).startItunesDuration,
		"itunes:image":    (*document).startItunesImage,
		"itunes:owner":    (*document).startItunesOwner,
		"link":            (*document).startLink,
		"podcast:alternateEnclosure": (*document).startAlternateEnclosure,
		"podcast:chapters":           (*document).startPodcastChapters,
		"podcast:funding":            (*document).startPodcastFunding,
		"podcast:locked":             (*document).startPodcastLocked,
		"podcast:person":             (*document).startPodcastPerson,
		"podcast:soundbite":          (*document).startPodcastSoundbite,
		"podcast:transcript":         (*document).startPodcastTranscript,
		"podcast:value":              (*document).startPodcastValue,
		"podcast:valueRecipient":     (*document).startValueRecipient,
	}

	textHandlers = map[string]textFn{
		"atom:email":      (*document).textAtomEmail,
		"email":           (*document).textAtomEmail,
		"atom:logo":       (*document).textAtomLogo,
		"atom:name":       (*document).textAtomName,
		"name":            (*document).textAtomName,
		"atom:summary":    (*document).textDescription,
		"content":         (*document).textContent,
		"atom:content":    (*document).textContent,
		"content:encoded": (*document).textContentEncoded,
		"description":     (*document).textDescription,
		"atom:subtitle":   (*document).textDescription,
		"subtitle":        (*document).textDescription,
		"generator":       (*document).textGenerator,
		"guid":            (*document).textGUID,
		"id":              (*document).textGUID,
		"atom:id":         (*document).textGUID,
		"itunes:author":   (*document).textItunesAuthor,
		"itunes:duration": (*document).textItunesDuration,
		"itunes:email":    (*document).textItunesEmail,
		"itunes:episode":  (*document).textItunesEpisode,
		"itunes:episodeType": (*document).textItunesEpisodeType,
		"itunes:explicit":    (*document).textItunesExplicit,
		"itunes:image":       (*document).textItunesImage,
		"itunes:name":        (*document).textItunesName,
		"itunes:new-feed-url": (*document).textItunesNewFeedURL,
		"itunes:season":       (*document).textItunesSeason,
		"itunes:summary":      (*document).textItunesSummary,
		"itunes:title":        (*document).textItunesTitle,
		"itunes:type":         (*document).textItunesType,
		"language":            (*document).textLanguage,
		"lastBuildDate":       (*document).textLastBuildDate,
		"link":                (*document).textLink,
		"podcast:funding":     (*document).textPodcastFunding,
		"podcast:guid":        (*document).textPodcastGUID,
		"podcast:locked":      (*document).textPodcastLocked,
		"podcast:person":      (*document).textPodcastPerson,
		"podcast:soundbite":   (*document).textPodcastSoundbite,
		"pubDate":             (*document).textPubDate,
		"published":           (*document).textPubDate,
		"atom:published":      (*document).textPubDate,
		"atom:updated":        (*document).textPubDate,
		"title":               (*document).textTitle,
		"atom:title":          (*document).textTitle,
		"url":                 (*document).textURL,
	}

	endHandlers = map[string]endFn{
		"atom:author":                (*document).endAtomAuthor,
		"author":                     (*document).endAtomAuthor,
		"channel":                    (*document).endChannel,
		"atom:feed":                  (*document).endChannel,
		"image":                      (*document).endImage,
		"item":                       (*document).endItem,
		"atom:entry":                 (*document).endItem,
		"itunes:owner":               (*document).endItunesOwner,
		"podcast:alternateEnclosure": (*document).endAlternateEnclosure,
		"podcast:funding":            (*document).endPodcastFunding,
		"podcast:locked":             (*document).endPodcastLocked,
		"locked":                     (*document).endPodcastLocked,
		"podcast:person":             (*document).endPodcastPerson,
		"podcast:soundbite":          (*document).endPodcastSoundbite,
		"podcast:value":              (*document).endPodcastValue,
	}
}

func (d *document) dispatchStart(key string, attrs []xml.Attr) {
	if h, ok := startHandlers[key]; ok {
		h(d, attrs)
	}
}

func (d *document) dispatchText(key string, data string) {
	if h, ok := textHandlers[key]; ok {
		h(d, data)
	}
}

func (d *document) dispatchEnd(key string) {
	if h, ok := endHandlers[key]; ok {
		h(d)
	}
}
