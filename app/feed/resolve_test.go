package feed

import (
	"encoding/xml"
	"testing"
)

func TestQualifiedName(t *testing.T) {
	tests := []struct {
		space    string
		local    string
		expected string
	}{
		{"", "title", "title"},
		{"itunes", "duration", "itunes:duration"},
		{"http://www.itunes.com/dtds/podcast-1.0.dtd", "duration", "itunes:duration"},
		{"podcast", "person", "podcast:person"},
		{"https://podcastindex.org/namespace/1.0", "person", "podcast:person"},
		{"http://podcastindex.org/namespace/1.0", "person", "podcast:person"},
		{"atom", "link", "atom:link"},
		{"http://www.w3.org/2005/Atom", "link", "atom:link"},
		{"content", "encoded", "content:encoded"},
		{"http://purl.org/rss/1.0/modules/content/", "encoded", "content:encoded"},
		{"http://example.com/unknown", "title", "http://example.com/unknown:title"},
		{"media", "thumbnail", "media:thumbnail"},
	}

	for _, tt := range tests {
		got := qualifiedName(xml.Name{Space: tt.space, Local: tt.local})
		if got != tt.expected {
			t.Errorf("{%s}%s: expected %q, got: %q", tt.space, tt.local, tt.expected, got)
		}
	}
}
