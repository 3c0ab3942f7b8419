package feed

// Feed kinds, recorded in the channel record's feed_type column.
const (
	FeedTypeRSS  = 0
	FeedTypeAtom = 1
)

// ChannelRecord is the canonical flat row emitted for one feed document,
// one per document ("newsfeeds" table).
type ChannelRecord struct {
	FeedID            *int64      `json:"feed_id"`
	Title             string      `json:"title"`
	Link              string      `json:"link"`
	Description       string      `json:"description"`
	Generator         string      `json:"generator"`
	ItunesAuthor      string      `json:"itunes_author"`
	FeedType          int         `json:"feed_type"`
	Explicit          int         `json:"explicit"`
	Image             string      `json:"image"`
	Language          string      `json:"language"`
	ItunesOwnerName   string      `json:"itunes_owner_name"`
	ItunesOwnerEmail  string      `json:"itunes_owner_email"`
	AtomAuthorName    string      `json:"atom_author_name"`
	AtomAuthorEmail   string      `json:"atom_author_email"`
	ItunesNewFeedURL  string      `json:"itunes_new_feed_url"`
	ItunesImage       string      `json:"itunes_image"`
	ItunesType        string      `json:"itunes_type"`
	ItunesCategories  []string    `json:"itunes_categories"`
	PodcastGUID       string      `json:"podcast_guid"`
	FundingURL        string      `json:"funding_url"`
	FundingText       string      `json:"funding_text"`
	PodcastLocked     int         `json:"podcast_locked"`
	PodcastOwner      string      `json:"podcast_owner"`
	ValueBlock        *ValueBlock `json:"value_block"`
	PubsubHubURL      string      `json:"pubsub_hub_url"`
	PubsubSelfURL     string      `json:"pubsub_self_url"`
	PubDate           int64       `json:"pub_date"`
	LastBuildDate     int64       `json:"last_build_date"`
	NewestItemPubDate int64       `json:"newest_item_pub_date"`
	OldestItemPubDate int64       `json:"oldest_item_pub_date"`
	ItemCount         int         `json:"item_count"`
	UpdateFrequency   int         `json:"update_frequency"`
}

// ItemRecord is the canonical flat row emitted for one qualifying item
// ("nfitems" table). Items without a valid http(s) enclosure are dropped
// before a record is ever built.
type ItemRecord struct {
	FeedID            *int64       `json:"feed_id"`
	Title             string       `json:"title"`
	Link              string       `json:"link"`
	Description       string       `json:"description"`
	PubDate           int64        `json:"pub_date"`
	Image             string       `json:"image"`
	ItunesAuthor      string       `json:"itunes_author"`
	FundingURL        string       `json:"funding_url"`
	FundingText       string       `json:"funding_text"`
	GUID              string       `json:"guid"`
	EnclosureURL      string       `json:"enclosure_url"`
	EnclosureLength   int64        `json:"enclosure_length"`
	EnclosureType     string       `json:"enclosure_type"`
	ItunesEpisode     string       `json:"itunes_episode"` // digits-only, capped; empty means unset (NULL)
	ItunesEpisodeType string       `json:"itunes_episode_type"`
	ItunesExplicit    int          `json:"itunes_explicit"`
	ItunesDuration    int          `json:"itunes_duration"`
	ItunesSeason      int          `json:"itunes_season"`
	Transcripts       []Transcript `json:"transcripts"`
	Chapters          []Chapter    `json:"chapters"`
	Soundbites        []Soundbite  `json:"soundbites"`
	Persons           []Person     `json:"persons"`
	ValueBlock        *ValueBlock  `json:"value_block"`
}

// Transcript is a podcast:transcript reference.
type Transcript struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Chapter is a podcast:chapters reference.
type Chapter struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Soundbite is one podcast:soundbite declaration. Start and duration are
// kept verbatim as declared.
type Soundbite struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	Duration string `json:"duration"`
}

// Person is one podcast:person declaration.
type Person struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Group string `json:"group"`
	Img   string `json:"img"`
	Href  string `json:"href"`
}

// ValueBlock is a value-for-value monetization declaration with its payout
// destinations. Blocks without recipients are never retained.
type ValueBlock struct {
	Model      ValueModel       `json:"model"`
	Recipients []ValueRecipient `json:"destinations"`
}

type ValueModel struct {
	Type      string `json:"type"`
	Method    string `json:"method"`
	Suggested string `json:"suggested"`
}

type ValueRecipient struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Address     string  `json:"address"`
	Split       int     `json:"split"`
	Fee         bool    `json:"fee"`
	CustomKey   *string `json:"custom_key,omitempty"`
	CustomValue *string `json:"custom_value,omitempty"`
}

// Sink receives finalized records. Implementations must be safe for
// concurrent use; documents processed in parallel share one sink.
type Sink interface {
	WriteChannel(rec *ChannelRecord) error
	WriteItem(rec *ItemRecord) error
}
