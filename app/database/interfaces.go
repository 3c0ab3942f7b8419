package database

// NewsfeedRepository reads stored channel records.
type NewsfeedRepository interface {
	GetNewsfeedsByFeedID(feedID int64) ([]Newsfeed, error)
	GetNewsfeedCount() (int, error)
}

// ItemRepository reads stored item records.
type ItemRepository interface {
	GetItemsByFeedID(feedID int64, limit int) ([]NFItem, error)
	GetItemCount() (int, error)
}
