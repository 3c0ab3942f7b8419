package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/podsift/podsift/app/feed"
)

func TestJSONSinkFileNaming(t *testing.T) {
	sink, err := NewJSONSink(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	feedID := int64(42)
	if err := sink.WriteChannel(&feed.ChannelRecord{FeedID: &feedID, Title: "JSON Feed"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := sink.WriteItem(&feed.ItemRecord{GUID: "item-1"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := os.Stat(filepath.Join(sink.Dir(), "1_newsfeeds_42.json")); err != nil {
		t.Errorf("Expected channel file '1_newsfeeds_42.json': %v", err)
	}
	if _, err := os.Stat(filepath.Join(sink.Dir(), "2_nfitems_NULL.json")); err != nil {
		t.Errorf("Expected item file '2_nfitems_NULL.json': %v", err)
	}

	data, err := os.ReadFile(filepath.Join(sink.Dir(), "1_newsfeeds_42.json"))
	if err != nil {
		t.Fatalf("Failed to read channel file: %v", err)
	}
	var rec feed.ChannelRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("Failed to parse channel file: %v", err)
	}
	if rec.Title != "JSON Feed" {
		t.Errorf("Expected title 'JSON Feed', got: %s", rec.Title)
	}
	if rec.FeedID == nil || *rec.FeedID != 42 {
		t.Errorf("Expected feed ID 42, got: %v", rec.FeedID)
	}
}
