package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/podsift/podsift/app/cfg"
	"github.com/podsift/podsift/app/feed"
	"github.com/podsift/podsift/app/ingest"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	parser      *feed.Parser
	sink        feed.Sink
	inputDir    string
	watch       bool
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	pending     sync.WaitGroup
	taskQueue   chan TaskInterface
	mu          sync.Mutex
	seen        map[string]struct{}
}

func NewScheduler(parser *feed.Parser, sink feed.Sink) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		parser:      parser,
		sink:        sink,
		inputDir:    cfg.InputDir,
		watch:       cfg.Watch,
		interval:    time.Duration(cfg.WatchInterval) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
		seen:        make(map[string]struct{}),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	// The first scan runs before Start returns so that a Wait immediately
	// after Start always observes the files already on disk.
	s.enqueueNewFiles()

	if !s.watch {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueNewFiles()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

// Wait blocks until every enqueued file has been fully processed, including
// retries. Used in one-shot mode to drain the queue before shutdown.
func (s *Scheduler) Wait() {
	s.pending.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// enqueueNewFiles scans the input directory and queues every feed file not
// seen before. Files are remembered by name so a watch cycle never processes
// the same file twice.
func (s *Scheduler) enqueueNewFiles() {
	entries, err := os.ReadDir(s.inputDir)
	if err != nil {
		slog.Error("Failed to read input directory", "dir", s.inputDir, "error", err)
		return
	}

	enqueued := 0
	for _, entry := range entries {
		if entry.IsDir() || !ingest.IsFeedFile(entry.Name()) {
			continue
		}

		path := filepath.Join(s.inputDir, entry.Name())

		s.mu.Lock()
		if _, ok := s.seen[path]; ok {
			s.mu.Unlock()
			continue
		}
		s.seen[path] = struct{}{}
		s.mu.Unlock()

		task := NewProcessFeedFileTask(path, s.parser, s.sink)
		s.pending.Add(1)
		if err := s.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue ProcessFeedFileTask", "file", path, "error", err)
			s.pending.Done()
			s.mu.Lock()
			delete(s.seen, path)
			s.mu.Unlock()
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		slog.Debug("Enqueued feed files", "count", enqueued)
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err == nil {
		s.pending.Done()
		return
	}

	slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

	if !task.CanRetry() {
		slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		s.pending.Done()
		return
	}

	task.IncrementRetryCount()
	retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
	if retryDelay > 30*time.Second {
		retryDelay = 30 * time.Second
	}

	slog.Warn("Task retry scheduled", "type", string(task.GetType()), "source", task.GetSource(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

	go func() {
		time.Sleep(retryDelay)
		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
			s.pending.Done()
			return
		default:
			if retryErr := s.EnqueueTask(task); retryErr != nil {
				slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
				s.pending.Done()
			}
		}
	}()
}
