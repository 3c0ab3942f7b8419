package feed

import (
	"strconv"
	"strings"
	"time"
)

// truncateString returns the first n code points of s.
func truncateString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// clampInt32 clamps n to the symmetric 32-bit signed range used by the
// output columns.
func clampInt32(n int64) int64 {
	if n > 2147483647 {
		return 2147483647
	}
	if n < -2147483647 {
		return -2147483647
	}
	return n
}

// cleanString trims surrounding whitespace and drops embedded line breaks.
func cleanString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

func containsNonLatin(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return true
		}
	}
	return false
}

const urlSafeBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"

// percentEncode percent-encodes every byte outside the RFC 3986 unreserved
// set.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(urlSafeBytes, c) >= 0 {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteString(strings.ToUpper(strconv.FormatInt(int64(c), 16)))
		}
	}
	return b.String()
}

// sanitizeURL caps a URL at 768 code points. URLs carrying code points above
// U+00FF are percent-encoded first; any non-Latin-1 code points that survive
// encoding are replaced with a space before the final cap.
func sanitizeURL(url string) string {
	if url == "" {
		return ""
	}

	if containsNonLatin(url) {
		encoded := truncateString(percentEncode(url), 768)
		if containsNonLatin(encoded) {
			encoded = strings.Map(func(r rune) rune {
				if r > 0xFF {
					return ' '
				}
				return r
			}, encoded)
		}
		return truncateString(encoded, 768)
	}

	return truncateString(url, 768)
}

// pubDateToTimestamp parses a feed date into UTC epoch seconds. Inputs that
// are already numeric pass through; otherwise RFC 2822 then RFC 3339 are
// attempted. Anything unparsable degrades to 0.
func pubDateToTimestamp(pubDate string) int64 {
	s := strings.TrimSpace(pubDate)
	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Unix()
		}
	}
	return 0
}

// RFC 2822 variants (day names and seconds are optional, days may be
// unpadded) tried before RFC 3339.
var dateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04 MST",
	time.RFC3339,
}

// timeToSeconds converts an itunes:duration value to seconds. One colon means
// minutes:seconds, two means hours:minutes:seconds; non-numeric segments
// count as 0. A plain value is taken as whole seconds, defaulting to 30
// minutes when unparsable.
func timeToSeconds(timeString string) int {
	parts := strings.Split(timeString, ":")

	atoi := func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}

	switch len(parts) {
	case 2:
		return atoi(parts[0])*60 + atoi(parts[1])
	case 3:
		return atoi(parts[0])*3600 + atoi(parts[1])*60 + atoi(parts[2])
	default:
		n, err := strconv.Atoi(timeString)
		if err != nil {
			return 30 * 60
		}
		return n
	}
}

var enclosureTypesByExt = []struct {
	ext  string
	mime string
}{
	{".m4v", "video/mp4"},
	{".mp4", "video/mp4"},
	{".avi", "video/avi"},
	{".mov", "video/quicktime"},
	{".mp3", "audio/mpeg"},
	{".m4a", "audio/mp4"},
	{".wav", "audio/wav"},
	{".ogg", "audio/ogg"},
	{".wmv", "video/x-ms-wmv"},
}

// guessEnclosureType derives a MIME type for an untyped media enclosure from
// its URL, or "" when no known extension appears.
func guessEnclosureType(url string) string {
	for _, e := range enclosureTypesByExt {
		if strings.Contains(url, e.ext) {
			return e.mime
		}
	}
	return ""
}

// calculateUpdateFrequency classifies publishing activity into a 0-9 code
// from the recency and density of item publish epochs. Branches are checked
// in this exact order; the code 7 is reachable both for feeds whose newest
// item is 100-200 days old and for feeds with a lone item under 400 days.
func calculateUpdateFrequency(pubdates []int64, now int64) int {
	countNewerThan := func(cutoff int64) int {
		n := 0
		for _, ts := range pubdates {
			if ts > cutoff {
				n++
			}
		}
		return n
	}

	const day = 24 * 60 * 60
	time400 := now - 400*day
	time200 := now - 200*day
	time100 := now - 100*day
	time40 := now - 40*day
	time20 := now - 20*day
	time10 := now - 10*day
	time5 := now - 5*day

	switch {
	case countNewerThan(time400) == 0:
		return 9
	case countNewerThan(time200) == 0:
		return 8
	case countNewerThan(time100) == 0:
		return 7
	case countNewerThan(time5) > 1:
		return 1
	case countNewerThan(time10) > 1:
		return 2
	case countNewerThan(time20) > 1:
		return 3
	case countNewerThan(time40) > 1:
		return 4
	case countNewerThan(time100) > 1:
		return 5
	case countNewerThan(time200) > 1:
		return 6
	case countNewerThan(time400) >= 1:
		return 7
	default:
		return 0
	}
}
