package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/podsift/podsift/app/database"
	"github.com/podsift/podsift/app/feed"
)

type fakeNewsfeedRepo struct {
	feeds []database.Newsfeed
}

func (r *fakeNewsfeedRepo) GetNewsfeedsByFeedID(feedID int64) ([]database.Newsfeed, error) {
	var out []database.Newsfeed
	for _, nf := range r.feeds {
		if nf.Record.FeedID != nil && *nf.Record.FeedID == feedID {
			out = append(out, nf)
		}
	}
	return out, nil
}

func (r *fakeNewsfeedRepo) GetNewsfeedCount() (int, error) {
	return len(r.feeds), nil
}

type fakeItemRepo struct {
	items []database.NFItem
}

func (r *fakeItemRepo) GetItemsByFeedID(feedID int64, limit int) ([]database.NFItem, error) {
	var out []database.NFItem
	for _, item := range r.items {
		if item.Record.FeedID != nil && *item.Record.FeedID == feedID && len(out) < limit {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) GetItemCount() (int, error) {
	return len(r.items), nil
}

func newTestServer() http.Handler {
	feedID := int64(42)
	newsfeedRepo := &fakeNewsfeedRepo{
		feeds: []database.Newsfeed{
			{ID: 1, Record: feed.ChannelRecord{FeedID: &feedID, Title: "Test Feed"}},
		},
	}
	itemRepo := &fakeItemRepo{
		items: []database.NFItem{
			{ID: 1, Record: feed.ItemRecord{FeedID: &feedID, GUID: "item-1"}},
			{ID: 2, Record: feed.ItemRecord{FeedID: &feedID, GUID: "item-2"}},
		},
	}

	return NewServer(NewHandler(newsfeedRepo, itemRepo), "test")
}

func TestGetHealth(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/stats", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}

	var stats database.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if stats.NewsfeedCount != 1 {
		t.Errorf("Expected newsfeed count 1, got: %d", stats.NewsfeedCount)
	}
	if stats.ItemCount != 2 {
		t.Errorf("Expected item count 2, got: %d", stats.ItemCount)
	}
}

func TestGetNewsfeeds(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/newsfeeds/42", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}

	var resp struct {
		Newsfeeds []database.Newsfeed `json:"newsfeeds"`
		Total     int                 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Expected 1 newsfeed, got: %d", resp.Total)
	}
	if resp.Newsfeeds[0].Record.Title != "Test Feed" {
		t.Errorf("Expected title 'Test Feed', got: %s", resp.Newsfeeds[0].Record.Title)
	}
}

func TestGetNewsfeedsNotFound(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/newsfeeds/999", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got: %d", w.Code)
	}
}

func TestGetNewsfeedsBadFeedID(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/newsfeeds/abc", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got: %d", w.Code)
	}
}

func TestGetNewsfeedItems(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/newsfeeds/42/items?limit=1", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}

	var resp struct {
		Items []database.NFItem `json:"items"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("Expected limit applied, got: %d items", resp.Total)
	}
}
