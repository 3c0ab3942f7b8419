package database

import (
	"time"

	"github.com/podsift/podsift/app/feed"
)

// Newsfeed is a stored channel record plus its database bookkeeping.
type Newsfeed struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Record    feed.ChannelRecord `json:"record"`
}

// NFItem is a stored item record plus its database bookkeeping.
type NFItem struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Record    feed.ItemRecord `json:"record"`
}

// Stats summarizes the stored corpus for the status API.
type Stats struct {
	NewsfeedCount int `json:"newsfeed_count"`
	ItemCount     int `json:"item_count"`
}
