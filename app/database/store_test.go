package database

import (
	"path/filepath"
	"testing"

	"github.com/podsift/podsift/app/feed"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestStoreChannelRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	repo := NewNewsfeedRepository(db)

	feedID := int64(42)
	rec := &feed.ChannelRecord{
		FeedID:           &feedID,
		Title:            "Stored Channel",
		Link:             "https://example.com",
		Description:      "desc",
		Language:         "en",
		FeedType:         feed.FeedTypeRSS,
		Explicit:         1,
		ItunesCategories: []string{"Technology", "News"},
		PodcastLocked:    1,
		PodcastOwner:     "owner@example.com",
		ValueBlock: &feed.ValueBlock{
			Model: feed.ValueModel{Type: "lightning", Method: "keysend"},
			Recipients: []feed.ValueRecipient{
				{Name: "host", Type: "node", Address: "abc", Split: 100},
			},
		},
		PubDate:         1704067200,
		ItemCount:       3,
		UpdateFrequency: 2,
	}

	if err := store.WriteChannel(rec); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	feeds, err := repo.GetNewsfeedsByFeedID(42)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(feeds) != 1 {
		t.Fatalf("Expected 1 stored newsfeed, got: %d", len(feeds))
	}

	got := feeds[0].Record
	if got.Title != "Stored Channel" {
		t.Errorf("Expected title 'Stored Channel', got: %s", got.Title)
	}
	if got.FeedID == nil || *got.FeedID != 42 {
		t.Errorf("Expected feed ID 42, got: %v", got.FeedID)
	}
	if len(got.ItunesCategories) != 2 || got.ItunesCategories[0] != "Technology" {
		t.Errorf("Expected categories round-tripped, got: %v", got.ItunesCategories)
	}
	if got.ValueBlock == nil || got.ValueBlock.Model.Type != "lightning" {
		t.Errorf("Expected value block round-tripped, got: %+v", got.ValueBlock)
	}
	if got.PubDate != 1704067200 || got.ItemCount != 3 || got.UpdateFrequency != 2 {
		t.Errorf("Unexpected numeric fields: %+v", got)
	}

	count, err := repo.GetNewsfeedCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected newsfeed count 1, got: %d", count)
	}
}

func TestStoreItemRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	repo := NewItemRepository(db)

	feedID := int64(7)
	rec := &feed.ItemRecord{
		FeedID:          &feedID,
		Title:           "Stored Item",
		GUID:            "item-1",
		PubDate:         1704067200,
		EnclosureURL:    "https://example.com/ep.mp3",
		EnclosureLength: 1234,
		EnclosureType:   "audio/mpeg",
		ItunesEpisode:   "42",
		ItunesDuration:  600,
		Transcripts: []feed.Transcript{
			{URL: "https://example.com/ep.srt", Type: "application/srt"},
		},
		Persons: []feed.Person{
			{Name: "Jane", Role: "host"},
		},
	}

	if err := store.WriteItem(rec); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// An item without an episode number stores NULL.
	noEpisode := &feed.ItemRecord{
		FeedID:       &feedID,
		GUID:         "item-2",
		PubDate:      1704000000,
		EnclosureURL: "https://example.com/ep2.mp3",
	}
	if err := store.WriteItem(noEpisode); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	items, err := repo.GetItemsByFeedID(7, 10)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 stored items, got: %d", len(items))
	}

	// Newest publication first.
	got := items[0].Record
	if got.GUID != "item-1" {
		t.Errorf("Expected newest item first, got: %s", got.GUID)
	}
	if got.ItunesEpisode != "42" {
		t.Errorf("Expected episode '42', got: %q", got.ItunesEpisode)
	}
	if len(got.Transcripts) != 1 || got.Transcripts[0].URL != "https://example.com/ep.srt" {
		t.Errorf("Expected transcripts round-tripped, got: %v", got.Transcripts)
	}
	if len(got.Persons) != 1 || got.Persons[0].Name != "Jane" {
		t.Errorf("Expected persons round-tripped, got: %v", got.Persons)
	}

	if items[1].Record.ItunesEpisode != "" {
		t.Errorf("Expected empty episode for NULL column, got: %q", items[1].Record.ItunesEpisode)
	}

	count, err := repo.GetItemCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected item count 2, got: %d", count)
	}
}

func TestStoreNullFeedID(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	if err := store.WriteChannel(&feed.ChannelRecord{Title: "No ID"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM newsfeeds WHERE feed_id IS NULL").Scan(&count)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row with NULL feed_id, got: %d", count)
	}
}
