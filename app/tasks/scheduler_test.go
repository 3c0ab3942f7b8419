package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/podsift/podsift/app/feed"
)

func newTestScheduler(sink feed.Sink, inputDir string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		parser:      feed.NewParser(nil),
		sink:        sink,
		inputDir:    inputDir,
		watch:       false,
		interval:    time.Second,
		workerCount: 2,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
		seen:        make(map[string]struct{}),
	}
}

func writeFeedFile(t *testing.T, dir, name, xml string) {
	t.Helper()

	payload := "1704067200\n[[NO_ETAG]]\nhttps://example.com/feed.xml\n1704070800\n" + xml
	if err := os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644); err != nil {
		t.Fatalf("Failed to write feed file: %v", err)
	}
}

func TestSchedulerOneShotDrain(t *testing.T) {
	dir := t.TempDir()
	writeFeedFile(t, dir, "1_200.txt",
		`<rss version="2.0"><channel><title>Feed One</title></channel></rss>`)
	writeFeedFile(t, dir, "2_200.txt",
		`<rss version="2.0"><channel><title>Feed Two</title></channel></rss>`)

	sink := &collectSink{}
	scheduler := newTestScheduler(sink, dir)

	// Wait directly after Start must observe the files already on disk,
	// even when no worker has picked anything up yet.
	scheduler.Start()
	scheduler.Wait()
	scheduler.Stop()

	channels, _ := sink.counts()
	if channels != 2 {
		t.Errorf("Expected 2 channel records after drain, got: %d", channels)
	}
}

func TestSchedulerDoesNotRetryMalformedDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFeedFile(t, dir, "9_200.txt",
		`<rss version="2.0">
  <channel>
    <title>Broken Feed</title>
    <item>
      <guid>ep-1</guid>
      <enclosure url="https://example.com/ep1.mp3" length="100" type="audio/mpeg"/>
    </item>
    <item>
      <guid>ep-2`)

	sink := &collectSink{}
	scheduler := newTestScheduler(sink, dir)

	scheduler.Start()
	scheduler.Wait()
	scheduler.Stop()

	channels, items := sink.counts()
	if channels != 0 {
		t.Errorf("Expected 0 channel records from truncated document, got: %d", channels)
	}
	if items != 1 {
		t.Errorf("Expected the completed item emitted exactly once, got: %d", items)
	}
}
