package ingest

import (
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	raw := "1704067200\n\"abc123\"\nhttps://example.com/feed.xml\n1704070800\n<?xml version=\"1.0\"?><rss/>"

	src, err := ReadSource(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if src.LastModified != 1704067200 {
		t.Errorf("Expected last modified 1704067200, got: %d", src.LastModified)
	}
	if src.ETag != "\"abc123\"" {
		t.Errorf("Expected ETag '\"abc123\"', got: %s", src.ETag)
	}
	if src.FeedURL != "https://example.com/feed.xml" {
		t.Errorf("Expected feed URL 'https://example.com/feed.xml', got: %s", src.FeedURL)
	}
	if src.DownloadedAt != 1704070800 {
		t.Errorf("Expected downloaded at 1704070800, got: %d", src.DownloadedAt)
	}
	if string(src.Payload) != "<?xml version=\"1.0\"?><rss/>" {
		t.Errorf("Unexpected payload: %q", src.Payload)
	}
}

func TestReadSourceNoETag(t *testing.T) {
	raw := "0\n" + NoETagMarker + "\nhttps://example.com/feed.xml\n0\n<rss/>"

	src, err := ReadSource(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if src.ETag != "" {
		t.Errorf("Expected empty ETag for marker, got: %q", src.ETag)
	}
}

func TestReadSourceTruncated(t *testing.T) {
	src, err := ReadSource(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if src.LastModified != 0 || src.ETag != "" || src.FeedURL != "" || src.DownloadedAt != 0 {
		t.Errorf("Expected zero header values, got: %+v", src)
	}
	if len(src.Payload) != 0 {
		t.Errorf("Expected empty payload, got: %q", src.Payload)
	}
}

func TestParseFeedID(t *testing.T) {
	tests := []struct {
		path     string
		expected int64
		isNil    bool
	}{
		{"/data/feeds/12345_200.txt", 12345, false},
		{"99_404.txt", 99, false},
		{"7.xml", 7, false},
		{"feed.xml", 0, true},
		{"_200.txt", 0, true},
	}

	for _, tt := range tests {
		got := ParseFeedID(tt.path)
		if tt.isNil {
			if got != nil {
				t.Errorf("%q: expected nil feed ID, got: %d", tt.path, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("%q: expected feed ID %d, got nil", tt.path, tt.expected)
			continue
		}
		if *got != tt.expected {
			t.Errorf("%q: expected feed ID %d, got: %d", tt.path, tt.expected, *got)
		}
	}
}

func TestIsFeedFile(t *testing.T) {
	if !IsFeedFile("12345_200.txt") || !IsFeedFile("feed.XML") {
		t.Error("Expected .txt and .xml files recognized")
	}
	if IsFeedFile("notes.md") || IsFeedFile("feed.json") {
		t.Error("Expected other extensions rejected")
	}
}
