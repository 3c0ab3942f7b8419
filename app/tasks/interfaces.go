package tasks

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to manage background task processing. The
// scheduler owns the worker pool and the input directory scan loop.
// Example usage:
//
//	scheduler := NewScheduler(parser, sink)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.Wait()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	Wait()
	EnqueueTask(task TaskInterface) error
}
