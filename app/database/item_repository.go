package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/podsift/podsift/app/feed"
)

const itemColumns = `
	id, feed_id, title, link, description, pub_date, image, itunes_author,
	funding_url, funding_text, guid,
	enclosure_url, enclosure_length, enclosure_type,
	itunes_episode, itunes_episode_type, itunes_explicit, itunes_duration, itunes_season,
	transcripts, chapters, soundbites, persons, value_block, created_at`

// SQLItemRepository reads nfitems rows
type SQLItemRepository struct {
	db *DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *DB) *SQLItemRepository {
	return &SQLItemRepository{db: db}
}

func scanItem(scan func(dest ...any) error) (*NFItem, error) {
	var item NFItem
	var feedID, episode sql.NullInt64
	var transcripts, chapters, soundbites, persons string
	var valueBlock sql.NullString

	err := scan(
		&item.ID, &feedID, &item.Record.Title, &item.Record.Link, &item.Record.Description,
		&item.Record.PubDate, &item.Record.Image, &item.Record.ItunesAuthor,
		&item.Record.FundingURL, &item.Record.FundingText, &item.Record.GUID,
		&item.Record.EnclosureURL, &item.Record.EnclosureLength, &item.Record.EnclosureType,
		&episode, &item.Record.ItunesEpisodeType, &item.Record.ItunesExplicit,
		&item.Record.ItunesDuration, &item.Record.ItunesSeason,
		&transcripts, &chapters, &soundbites, &persons, &valueBlock, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if feedID.Valid {
		item.Record.FeedID = &feedID.Int64
	}
	if episode.Valid {
		item.Record.ItunesEpisode = strconv.FormatInt(episode.Int64, 10)
	}
	for _, col := range []struct {
		data string
		dest any
	}{
		{transcripts, &item.Record.Transcripts},
		{chapters, &item.Record.Chapters},
		{soundbites, &item.Record.Soundbites},
		{persons, &item.Record.Persons},
	} {
		if err := json.Unmarshal([]byte(col.data), col.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item list column: %w", err)
		}
	}
	if valueBlock.Valid {
		var block feed.ValueBlock
		if err := json.Unmarshal([]byte(valueBlock.String), &block); err != nil {
			return nil, fmt.Errorf("failed to unmarshal value block: %w", err)
		}
		item.Record.ValueBlock = &block
	}

	return &item, nil
}

// GetItemsByFeedID returns stored items for a feed, newest publication first.
func (r *SQLItemRepository) GetItemsByFeedID(feedID int64, limit int) ([]NFItem, error) {
	rows, err := r.db.Query(`
		SELECT `+itemColumns+`
		FROM nfitems
		WHERE feed_id = ?
		ORDER BY pub_date DESC, id DESC
		LIMIT ?
	`, feedID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by feed ID: %w", err)
	}
	defer rows.Close()

	var items []NFItem
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}

// GetItemCount returns the total number of stored item records
func (r *SQLItemRepository) GetItemCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM nfitems").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get item count: %w", err)
	}
	return count, nil
}
