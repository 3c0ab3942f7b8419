package ingest

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// NoETagMarker is written by the fetcher on line two when the origin served
// no ETag header.
const NoETagMarker = "[[NO_ETAG]]"

// Source is one fetched feed document: a 4-line metadata header followed by
// the raw XML payload.
type Source struct {
	LastModified int64  // unix timestamp from line 1, 0 when absent
	ETag         string // line 2, "" when absent or [[NO_ETAG]]
	FeedURL      string // line 3
	DownloadedAt int64  // unix timestamp from line 4, 0 when absent
	Payload      []byte // everything after the header
}

// ReadSource splits a fetched feed file into its metadata header and XML
// payload. Header lines may be missing entirely (truncated files); the
// payload is then empty, which downstream still turns into a default
// channel record.
func ReadSource(r io.Reader) (*Source, error) {
	br := bufio.NewReader(r)

	readLine := func() string {
		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			return ""
		}
		return strings.TrimRight(line, "\r\n")
	}

	src := &Source{}
	if v, err := strconv.ParseInt(readLine(), 10, 64); err == nil {
		src.LastModified = v
	}
	if etag := readLine(); etag != "" && etag != NoETagMarker {
		src.ETag = etag
	}
	src.FeedURL = readLine()
	if v, err := strconv.ParseInt(readLine(), 10, 64); err == nil {
		src.DownloadedAt = v
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed payload: %w", err)
	}
	src.Payload = payload

	return src, nil
}

// ParseFeedID extracts the numeric feed id from a file named
// "<feedID>_<httpStatus>.txt". Files not following the pattern get a nil
// (NULL) feed id rather than an error.
func ParseFeedID(path string) *int64 {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	idPart, _, _ := strings.Cut(stem, "_")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// IsFeedFile reports whether a directory entry name looks like a fetched
// feed document.
func IsFeedFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml", ".txt":
		return true
	}
	return false
}
