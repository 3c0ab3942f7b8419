package feed

// docScope tracks where in the document the parser currently is. Exactly one
// of the three values holds at any time; item scope implies the enclosing
// channel scope for the purposes of channel accumulators.
type docScope int

const (
	scopeNone docScope = iota
	scopeChannel
	scopeItem
)

// subScope tracks the active sub-element within the current document scope.
// Sub-elements of interest never nest in practice, so a single marker is
// enough; handlers clear it only when closing the matching element.
type subScope int

const (
	subNone subScope = iota
	subImage
	subOwner
	subAtomAuthor
	subFunding
	subLocked
	subValue
	subPerson
	subSoundbite
	subAltEnclosure
)

// parserState is the mutable context accumulated while walking one feed
// document. Channel accumulators are reset on every channel/feed start, item
// accumulators on every item/entry start; the running item count and pubdate
// list are cumulative across all items of a channel.
type parserState struct {
	scope          docScope
	sub            subScope
	feedType       int
	currentElement string

	// channel accumulators
	channelTitle           string
	channelLink            string
	channelDescription     string
	channelGenerator       string
	channelLanguage        string
	channelImage           string
	channelExplicit        int
	channelItunesAuthor    string
	channelItunesSummary   string
	channelItunesImage     string
	channelItunesType      string
	channelItunesNewFeedURL string
	channelItunesOwnerName  string
	channelItunesOwnerEmail string
	channelItunesCategories []string
	channelAtomAuthorName  string
	channelAtomAuthorEmail string
	channelPodcastGUID     string
	channelFundingURL      string
	channelFundingText     string
	channelLocked          int
	channelLockedText      string
	channelPodcastOwner    string
	channelPubsubHubURL    string
	channelPubsubSelfURL   string
	channelPubDate         int64
	channelLastBuildDate   int64
	channelValues          []ValueBlock

	itemCount    int
	itemPubdates []int64

	// item accumulators
	itemTitle           string
	itemItunesTitle     string
	itemLink            string
	itemDescription     string
	itemContent         string
	itemContentEncoded  string
	itemItunesSummary   string
	itemPubDate         string
	itemImage           string
	itemItunesImage     string
	itemItunesAuthor    string
	itemItunesDuration  int
	itemItunesEpisode   string
	itemItunesEpisodeType string
	itemItunesSeason    string
	itemItunesExplicit  int
	itemGUID            string
	itemFundingURL      string
	itemFundingText     string
	itemEnclosureURL    string
	itemEnclosureLength string
	itemEnclosureType   string
	itemHasValidEnclosure bool
	itemTranscripts     []Transcript
	itemChapters        []Chapter
	itemSoundbites      []Soundbite
	itemPersons         []Person
	itemValues          []ValueBlock

	// scratch state for in-flight sub-elements
	personName  string
	personRole  string
	personGroup string
	personImg   string
	personHref  string

	soundbiteTitle    string
	soundbiteStart    string
	soundbiteDuration string

	valueModel      ValueModel
	valueRecipients []ValueRecipient
}

func (s *parserState) resetChannel() {
	s.sub = subNone

	s.channelTitle = ""
	s.channelLink = ""
	s.channelDescription = ""
	s.channelGenerator = ""
	s.channelLanguage = ""
	s.channelImage = ""
	s.channelExplicit = 0
	s.channelItunesAuthor = ""
	s.channelItunesSummary = ""
	s.channelItunesImage = ""
	s.channelItunesType = ""
	s.channelItunesNewFeedURL = ""
	s.channelItunesOwnerName = ""
	s.channelItunesOwnerEmail = ""
	s.channelItunesCategories = nil
	s.channelAtomAuthorName = ""
	s.channelAtomAuthorEmail = ""
	s.channelPodcastGUID = ""
	s.channelFundingURL = ""
	s.channelFundingText = ""
	s.channelLocked = 0
	s.channelLockedText = ""
	s.channelPodcastOwner = ""
	s.channelPubsubHubURL = ""
	s.channelPubsubSelfURL = ""
	s.channelPubDate = 0
	s.channelLastBuildDate = 0
	s.channelValues = nil
	s.valueModel = ValueModel{}
	s.valueRecipients = nil

	s.itemCount = 0
	s.itemPubdates = nil
}

func (s *parserState) resetItem() {
	s.sub = subNone

	s.itemTitle = ""
	s.itemItunesTitle = ""
	s.itemLink = ""
	s.itemDescription = ""
	s.itemContent = ""
	s.itemContentEncoded = ""
	s.itemItunesSummary = ""
	s.itemPubDate = ""
	s.itemImage = ""
	s.itemItunesImage = ""
	s.itemItunesAuthor = ""
	s.itemItunesDuration = 0
	s.itemItunesEpisode = ""
	s.itemItunesEpisodeType = ""
	s.itemItunesSeason = ""
	s.itemItunesExplicit = 0
	s.itemGUID = ""
	s.itemFundingURL = ""
	s.itemFundingText = ""
	s.itemEnclosureURL = ""
	s.itemEnclosureLength = ""
	s.itemEnclosureType = ""
	s.itemHasValidEnclosure = false
	s.itemTranscripts = nil
	s.itemChapters = nil
	s.itemSoundbites = nil
	s.itemPersons = nil
	s.itemValues = nil
	s.valueModel = ValueModel{}
	s.valueRecipients = nil
}

// inChannel reports whether channel accumulators are in scope, which holds
// both directly inside the channel and inside one of its items.
func (s *parserState) inChannel() bool {
	return s.scope != scopeNone
}

// inChannelOnly reports whether the parser is inside the channel but outside
// any item.
func (s *parserState) inChannelOnly() bool {
	return s.scope == scopeChannel
}

func (s *parserState) inItem() bool {
	return s.scope == scopeItem
}
