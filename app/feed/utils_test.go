package feed

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	if got := truncateString("hello", 10); got != "hello" {
		t.Errorf("Expected 'hello', got: %q", got)
	}
	if got := truncateString("hello", 3); got != "hel" {
		t.Errorf("Expected 'hel', got: %q", got)
	}
	if got := truncateString("héllo", 2); got != "hé" {
		t.Errorf("Expected code point truncation, got: %q", got)
	}
	if got := truncateString("hello", 0); got != "" {
		t.Errorf("Expected empty string, got: %q", got)
	}

	// Truncation is idempotent.
	once := truncateString("a long enough string", 7)
	if got := truncateString(once, 7); got != once {
		t.Errorf("Expected idempotent truncation, got: %q", got)
	}
}

func TestClampInt32(t *testing.T) {
	if got := clampInt32(100); got != 100 {
		t.Errorf("Expected 100, got: %d", got)
	}
	if got := clampInt32(3000000000); got != 2147483647 {
		t.Errorf("Expected upper clamp, got: %d", got)
	}
	if got := clampInt32(-3000000000); got != -2147483647 {
		t.Errorf("Expected lower clamp, got: %d", got)
	}
}

func TestCleanString(t *testing.T) {
	if got := cleanString("  line one\nline two\r\n  "); got != "line oneline two" {
		t.Errorf("Expected line breaks removed, got: %q", got)
	}
}

func TestSanitizeURL(t *testing.T) {
	plain := "https://example.com/audio.mp3"
	if got := sanitizeURL(plain); got != plain {
		t.Errorf("Expected ASCII URL untouched, got: %q", got)
	}

	if got := sanitizeURL(""); got != "" {
		t.Errorf("Expected empty URL untouched, got: %q", got)
	}

	encoded := sanitizeURL("https://example.com/日本")
	if encoded != "https%3A%2F%2Fexample.com%2F%E6%97%A5%E6%9C%AC" {
		t.Errorf("Expected percent-encoded URL, got: %q", encoded)
	}

	long := "https://example.com/" + strings.Repeat("a", 1000)
	if got := sanitizeURL(long); len([]rune(got)) != 768 {
		t.Errorf("Expected 768 code point cap, got length: %d", len([]rune(got)))
	}

	// Sanitization is idempotent for its own output.
	if got := sanitizeURL(encoded); got != encoded {
		t.Errorf("Expected idempotent sanitization, got: %q", got)
	}
}

func TestPubDateToTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"Mon, 1 Jan 2024 00:00:00 +0000", 1704067200},
		{"Mon, 01 Jan 2024 00:00:00 GMT", 1704067200},
		{"1 Jan 2024 00:00 +0000", 1704067200},
		{"2024-01-01T00:00:00Z", 1704067200},
		{"1704067200", 1704067200},
		{"not a date", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := pubDateToTimestamp(tt.input); got != tt.expected {
			t.Errorf("%q: expected %d, got: %d", tt.input, tt.expected, got)
		}
	}
}

func TestTimeToSeconds(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1:02:03", 3723},
		{"12:34", 754},
		{"600", 600},
		{"1:xx", 60},
		{"garbage", 1800},
	}

	for _, tt := range tests {
		if got := timeToSeconds(tt.input); got != tt.expected {
			t.Errorf("%q: expected %d, got: %d", tt.input, tt.expected, got)
		}
	}
}

func TestGuessEnclosureType(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://example.com/ep.mp3", "audio/mpeg"},
		{"https://example.com/ep.m4v", "video/mp4"},
		{"https://example.com/ep.ogg?x=1", "audio/ogg"},
		{"https://example.com/page.html", ""},
	}

	for _, tt := range tests {
		if got := guessEnclosureType(tt.url); got != tt.expected {
			t.Errorf("%q: expected %q, got: %q", tt.url, tt.expected, got)
		}
	}
}

func TestCalculateUpdateFrequency(t *testing.T) {
	const day = int64(24 * 60 * 60)
	now := int64(1700000000)

	tests := []struct {
		name     string
		pubdates []int64
		expected int
	}{
		{"empty", nil, 9},
		{"ancient", []int64{now - 500*day}, 9},
		{"dormant", []int64{now - 300*day}, 8},
		{"stale", []int64{now - 150*day}, 7},
		{"two within a day", []int64{now - 3600, now - 7200}, 1},
		{"two within five days", []int64{now - 1*day, now - 2*day}, 1},
		{"two within ten days", []int64{now - 7*day, now - 8*day}, 2},
		{"two within twenty days", []int64{now - 15*day, now - 16*day}, 3},
		{"two within forty days", []int64{now - 30*day, now - 31*day}, 4},
		{"two within a hundred days", []int64{now - 60*day, now - 61*day}, 5},
		{"slow but alive", []int64{now - 50*day, now - 150*day}, 6},
		{"lone recent item", []int64{now - 50*day}, 7},
	}

	for _, tt := range tests {
		if got := calculateUpdateFrequency(tt.pubdates, now); got != tt.expected {
			t.Errorf("%s: expected %d, got: %d", tt.name, tt.expected, got)
		}
	}
}
