package database

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/podsift/podsift/app/feed"
)

// Store persists parser output into the newsfeeds and nfitems tables. It
// implements feed.Sink; the single-writer connection makes it safe for the
// worker pool.
type Store struct {
	db *DB
}

// NewStore creates a record store on top of db.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

func marshalList(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}

func marshalValueBlock(block *feed.ValueBlock) (any, error) {
	if block == nil {
		return nil, nil
	}
	data, err := json.Marshal(block)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullableFeedID(feedID *int64) any {
	if feedID == nil {
		return nil
	}
	return *feedID
}

// WriteChannel inserts one newsfeeds row.
func (s *Store) WriteChannel(rec *feed.ChannelRecord) error {
	categories, err := marshalList(rec.ItunesCategories)
	if err != nil {
		return fmt.Errorf("failed to marshal itunes categories: %w", err)
	}
	valueBlock, err := marshalValueBlock(rec.ValueBlock)
	if err != nil {
		return fmt.Errorf("failed to marshal value block: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO newsfeeds (
			feed_id, title, link, description, generator, itunes_author,
			feed_type, explicit, image, language,
			itunes_owner_name, itunes_owner_email, atom_author_name, atom_author_email,
			itunes_new_feed_url, itunes_image, itunes_type, itunes_categories,
			podcast_guid, funding_url, funding_text, podcast_locked, podcast_owner,
			value_block, pubsub_hub_url, pubsub_self_url,
			pub_date, last_build_date, newest_item_pub_date, oldest_item_pub_date,
			item_count, update_frequency
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		nullableFeedID(rec.FeedID), rec.Title, rec.Link, rec.Description, rec.Generator, rec.ItunesAuthor,
		rec.FeedType, rec.Explicit, rec.Image, rec.Language,
		rec.ItunesOwnerName, rec.ItunesOwnerEmail, rec.AtomAuthorName, rec.AtomAuthorEmail,
		rec.ItunesNewFeedURL, rec.ItunesImage, rec.ItunesType, categories,
		rec.PodcastGUID, rec.FundingURL, rec.FundingText, rec.PodcastLocked, rec.PodcastOwner,
		valueBlock, rec.PubsubHubURL, rec.PubsubSelfURL,
		rec.PubDate, rec.LastBuildDate, rec.NewestItemPubDate, rec.OldestItemPubDate,
		rec.ItemCount, rec.UpdateFrequency,
	)
	if err != nil {
		return fmt.Errorf("failed to insert newsfeed: %w", err)
	}

	return nil
}

// WriteItem inserts one nfitems row.
func (s *Store) WriteItem(rec *feed.ItemRecord) error {
	transcripts, err := marshalList(rec.Transcripts)
	if err != nil {
		return fmt.Errorf("failed to marshal transcripts: %w", err)
	}
	chapters, err := marshalList(rec.Chapters)
	if err != nil {
		return fmt.Errorf("failed to marshal chapters: %w", err)
	}
	soundbites, err := marshalList(rec.Soundbites)
	if err != nil {
		return fmt.Errorf("failed to marshal soundbites: %w", err)
	}
	persons, err := marshalList(rec.Persons)
	if err != nil {
		return fmt.Errorf("failed to marshal persons: %w", err)
	}
	valueBlock, err := marshalValueBlock(rec.ValueBlock)
	if err != nil {
		return fmt.Errorf("failed to marshal value block: %w", err)
	}

	var episode any
	if rec.ItunesEpisode != "" {
		if n, convErr := strconv.ParseInt(rec.ItunesEpisode, 10, 64); convErr == nil {
			episode = n
		}
	}

	_, err = s.db.Exec(`
		INSERT INTO nfitems (
			feed_id, title, link, description, pub_date, image, itunes_author,
			funding_url, funding_text, guid,
			enclosure_url, enclosure_length, enclosure_type,
			itunes_episode, itunes_episode_type, itunes_explicit, itunes_duration, itunes_season,
			transcripts, chapters, soundbites, persons, value_block
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		nullableFeedID(rec.FeedID), rec.Title, rec.Link, rec.Description, rec.PubDate, rec.Image, rec.ItunesAuthor,
		rec.FundingURL, rec.FundingText, rec.GUID,
		rec.EnclosureURL, rec.EnclosureLength, rec.EnclosureType,
		episode, rec.ItunesEpisodeType, rec.ItunesExplicit, rec.ItunesDuration, rec.ItunesSeason,
		transcripts, chapters, soundbites, persons, valueBlock,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

var _ feed.Sink = (*Store)(nil)
