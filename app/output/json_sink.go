package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/podsift/podsift/app/feed"
)

// JSONSink writes every record as a standalone JSON file into a per-run
// directory. File names carry a monotonically increasing sequence number so
// the emission order survives the directory listing.
type JSONSink struct {
	dir string
	seq atomic.Int64
}

// NewJSONSink creates the run directory under baseDir, named after the
// current time, and returns a sink writing into it.
func NewJSONSink(baseDir string) (*JSONSink, error) {
	dir := filepath.Join(baseDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &JSONSink{dir: dir}, nil
}

// Dir returns the run directory records are written into.
func (s *JSONSink) Dir() string {
	return s.dir
}

func (s *JSONSink) WriteChannel(rec *feed.ChannelRecord) error {
	return s.write("newsfeeds", rec.FeedID, rec)
}

func (s *JSONSink) WriteItem(rec *feed.ItemRecord) error {
	return s.write("nfitems", rec.FeedID, rec)
}

func (s *JSONSink) write(table string, feedID *int64, rec any) error {
	idPart := "NULL"
	if feedID != nil {
		idPart = strconv.FormatInt(*feedID, 10)
	}

	name := fmt.Sprintf("%d_%s_%s.json", s.seq.Add(1), table, idPart)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", table, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s record: %w", table, err)
	}

	return nil
}
