package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/podsift/podsift/app/feed"
)

const newsfeedColumns = `
	id, feed_id, title, link, description, generator, itunes_author,
	feed_type, explicit, image, language,
	itunes_owner_name, itunes_owner_email, atom_author_name, atom_author_email,
	itunes_new_feed_url, itunes_image, itunes_type, itunes_categories,
	podcast_guid, funding_url, funding_text, podcast_locked, podcast_owner,
	value_block, pubsub_hub_url, pubsub_self_url,
	pub_date, last_build_date, newest_item_pub_date, oldest_item_pub_date,
	item_count, update_frequency, created_at`

// SQLNewsfeedRepository reads newsfeeds rows
type SQLNewsfeedRepository struct {
	db *DB
}

// NewNewsfeedRepository creates a new newsfeed repository
func NewNewsfeedRepository(db *DB) *SQLNewsfeedRepository {
	return &SQLNewsfeedRepository{db: db}
}

func scanNewsfeed(scan func(dest ...any) error) (*Newsfeed, error) {
	var nf Newsfeed
	var feedID sql.NullInt64
	var categories string
	var valueBlock sql.NullString

	err := scan(
		&nf.ID, &feedID, &nf.Record.Title, &nf.Record.Link, &nf.Record.Description,
		&nf.Record.Generator, &nf.Record.ItunesAuthor,
		&nf.Record.FeedType, &nf.Record.Explicit, &nf.Record.Image, &nf.Record.Language,
		&nf.Record.ItunesOwnerName, &nf.Record.ItunesOwnerEmail,
		&nf.Record.AtomAuthorName, &nf.Record.AtomAuthorEmail,
		&nf.Record.ItunesNewFeedURL, &nf.Record.ItunesImage, &nf.Record.ItunesType, &categories,
		&nf.Record.PodcastGUID, &nf.Record.FundingURL, &nf.Record.FundingText,
		&nf.Record.PodcastLocked, &nf.Record.PodcastOwner,
		&valueBlock, &nf.Record.PubsubHubURL, &nf.Record.PubsubSelfURL,
		&nf.Record.PubDate, &nf.Record.LastBuildDate,
		&nf.Record.NewestItemPubDate, &nf.Record.OldestItemPubDate,
		&nf.Record.ItemCount, &nf.Record.UpdateFrequency, &nf.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if feedID.Valid {
		nf.Record.FeedID = &feedID.Int64
	}
	if err := json.Unmarshal([]byte(categories), &nf.Record.ItunesCategories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal itunes categories: %w", err)
	}
	if valueBlock.Valid {
		var block feed.ValueBlock
		if err := json.Unmarshal([]byte(valueBlock.String), &block); err != nil {
			return nil, fmt.Errorf("failed to unmarshal value block: %w", err)
		}
		nf.Record.ValueBlock = &block
	}

	return &nf, nil
}

// GetNewsfeedsByFeedID returns every stored channel record for a feed,
// newest first.
func (r *SQLNewsfeedRepository) GetNewsfeedsByFeedID(feedID int64) ([]Newsfeed, error) {
	rows, err := r.db.Query(`
		SELECT `+newsfeedColumns+`
		FROM newsfeeds
		WHERE feed_id = ?
		ORDER BY id DESC
	`, feedID)
	if err != nil {
		return nil, fmt.Errorf("failed to get newsfeeds by feed ID: %w", err)
	}
	defer rows.Close()

	var feeds []Newsfeed
	for rows.Next() {
		nf, err := scanNewsfeed(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan newsfeed row: %w", err)
		}
		feeds = append(feeds, *nf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating newsfeed rows: %w", err)
	}

	return feeds, nil
}

// GetNewsfeedCount returns the total number of stored channel records
func (r *SQLNewsfeedRepository) GetNewsfeedCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM newsfeeds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get newsfeed count: %w", err)
	}
	return count, nil
}
