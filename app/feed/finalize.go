package feed

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Largest accepted enclosure length; anything above is treated as garbage.
const maxEnclosureLength = 922337203685477580

var ampEntityRe = regexp.MustCompile(`(?i)&amp;`)

// selectValueBlock picks the value block for the output record: a block
// typed lightning wins over earlier declarations, otherwise the first block
// declared. Blocks without recipients never made it into the list.
func selectValueBlock(blocks []ValueBlock) *ValueBlock {
	if len(blocks) == 0 {
		return nil
	}
	for i := range blocks {
		if blocks[i].Model.Type == "lightning" {
			return &blocks[i]
		}
	}
	return &blocks[0]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// finalizeChannel resolves the channel accumulators into one newsfeeds row.
func (d *document) finalizeChannel() *ChannelRecord {
	s := &d.state
	now := d.now().Unix()

	// Item pubdates claiming to be in the future carry no signal.
	var pubdates []int64
	for _, ts := range s.itemPubdates {
		if ts <= now {
			pubdates = append(pubdates, ts)
		}
	}

	var newest, oldest int64
	for i, ts := range pubdates {
		if i == 0 || ts > newest {
			newest = ts
		}
		if i == 0 || ts < oldest {
			oldest = ts
		}
	}

	pubDate := s.channelPubDate
	if pubDate == 0 {
		pubDate = s.channelLastBuildDate
	}
	if pubDate == 0 {
		pubDate = newest
	}

	owner := s.channelPodcastOwner
	if owner == "" {
		owner = s.channelItunesOwnerEmail
	}

	return &ChannelRecord{
		FeedID:            d.feedID,
		Title:             truncateString(strings.TrimSpace(s.channelTitle), 768),
		Link:              strings.TrimSpace(s.channelLink),
		Description:       strings.TrimSpace(firstNonEmpty(s.channelItunesSummary, s.channelDescription)),
		Generator:         strings.TrimSpace(s.channelGenerator),
		ItunesAuthor:      s.channelItunesAuthor,
		FeedType:          s.feedType,
		Explicit:          s.channelExplicit,
		Image:             truncateString(firstNonEmpty(s.channelImage, s.channelItunesImage), 768),
		Language:          truncateString(s.channelLanguage, 8),
		ItunesOwnerName:   s.channelItunesOwnerName,
		ItunesOwnerEmail:  s.channelItunesOwnerEmail,
		AtomAuthorName:    s.channelAtomAuthorName,
		AtomAuthorEmail:   s.channelAtomAuthorEmail,
		ItunesNewFeedURL:  truncateString(s.channelItunesNewFeedURL, 768),
		ItunesImage:       truncateString(s.channelItunesImage, 768),
		ItunesType:        s.channelItunesType,
		ItunesCategories:  s.channelItunesCategories,
		PodcastGUID:       s.channelPodcastGUID,
		FundingURL:        truncateString(s.channelFundingURL, 768),
		FundingText:       strings.TrimSpace(s.channelFundingText),
		PodcastLocked:     s.channelLocked,
		PodcastOwner:      truncateString(owner, 255),
		ValueBlock:        selectValueBlock(s.channelValues),
		PubsubHubURL:      truncateString(s.channelPubsubHubURL, 768),
		PubsubSelfURL:     truncateString(s.channelPubsubSelfURL, 768),
		PubDate:           clampInt32(pubDate),
		LastBuildDate:     clampInt32(s.channelLastBuildDate),
		NewestItemPubDate: clampInt32(newest),
		OldestItemPubDate: clampInt32(oldest),
		ItemCount:         s.itemCount,
		UpdateFrequency:   calculateUpdateFrequency(pubdates, now),
	}
}

// finalizeItem resolves the item accumulators into one nfitems row. The
// caller has already verified the valid-enclosure gate.
func (d *document) finalizeItem() *ItemRecord {
	s := &d.state

	title := s.itemItunesTitle
	if title == "" {
		title = strings.TrimSpace(s.itemTitle)
	}

	enclosureURL := sanitizeURL(s.itemEnclosureURL)
	if strings.Contains(strings.ToLower(enclosureURL), "&amp;") {
		enclosureURL = ampEntityRe.ReplaceAllString(enclosureURL, "&")
	}

	var enclosureLength int64
	if n, err := strconv.ParseInt(strings.TrimSpace(s.itemEnclosureLength), 10, 64); err == nil && n <= maxEnclosureLength {
		enclosureLength = n
	}

	enclosureType := truncateString(s.itemEnclosureType, 128)
	if enclosureType == "" {
		enclosureType = guessEnclosureType(enclosureURL)
	}

	guid := s.itemGUID
	if guid == "" && utf8.RuneCountInString(enclosureURL) > 10 {
		guid = truncateString(enclosureURL, 738)
	}

	var season int64
	if n, err := strconv.ParseInt(s.itemItunesSeason, 10, 64); err == nil {
		season = clampInt32(n)
	}

	return &ItemRecord{
		FeedID:            d.feedID,
		Title:             truncateString(title, 1024),
		Link:              s.itemLink,
		Description:       strings.TrimSpace(firstNonEmpty(s.itemContent, s.itemContentEncoded, s.itemDescription, s.itemItunesSummary)),
		PubDate:           pubDateToTimestamp(s.itemPubDate),
		Image:             truncateString(firstNonEmpty(s.itemItunesImage, s.itemImage), 768),
		ItunesAuthor:      s.itemItunesAuthor,
		FundingURL:        truncateString(s.itemFundingURL, 768),
		FundingText:       strings.TrimSpace(s.itemFundingText),
		GUID:              truncateString(guid, 740),
		EnclosureURL:      enclosureURL,
		EnclosureLength:   enclosureLength,
		EnclosureType:     enclosureType,
		ItunesEpisode:     s.itemItunesEpisode,
		ItunesEpisodeType: s.itemItunesEpisodeType,
		ItunesExplicit:    s.itemItunesExplicit,
		ItunesDuration:    s.itemItunesDuration,
		ItunesSeason:      int(season),
		Transcripts:       s.itemTranscripts,
		Chapters:          s.itemChapters,
		Soundbites:        s.itemSoundbites,
		Persons:           s.itemPersons,
		ValueBlock:        selectValueBlock(s.itemValues),
	}
}
