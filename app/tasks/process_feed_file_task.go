package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/podsift/podsift/app/feed"
	"github.com/podsift/podsift/app/ingest"
)

type ProcessFeedFileTask struct {
	Task
	parser *feed.Parser
	sink   feed.Sink
}

func NewProcessFeedFileTask(path string, parser *feed.Parser, sink feed.Sink) *ProcessFeedFileTask {
	return &ProcessFeedFileTask{
		Task:   NewTask(TaskTypeProcessFeedFile, path),
		parser: parser,
		sink:   sink,
	}
}

func (t *ProcessFeedFileTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	f, err := os.Open(t.Source)
	if err != nil {
		return fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	src, err := ingest.ReadSource(f)
	if err != nil {
		return fmt.Errorf("failed to read feed file: %w", err)
	}

	feedID := ingest.ParseFeedID(t.Source)

	logFeedID := "NULL"
	if feedID != nil {
		logFeedID = fmt.Sprintf("%d", *feedID)
	}

	// A malformed document is terminal: records emitted before the failure
	// stand, and re-running the parser would emit them a second time.
	if err := t.parser.Run(src.Payload, feedID, t.sink); err != nil {
		slog.Warn("Feed document aborted",
			"file", t.Source,
			"feed_id", logFeedID,
			"error", err)
		return nil
	}

	slog.Info("Task completed",
		"type", "ProcessFeedFile",
		"file", t.Source,
		"feed_id", logFeedID,
		"duration", t.GetDuration())

	return nil
}
