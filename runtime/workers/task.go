package workers

import (
	"collab-hub/contract"
	"collab-hub/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Task is a side effect scheduled from a broadcast path.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// TaskQueue decouples side effects from the broadcast that triggered them.
// Submit never waits for the task, nor for room in the queue.
type TaskQueue struct {
	log   *slog.Logger
	tasks chan Task
}

func NewTaskQueue(log *slog.Logger, bufferSize int) *TaskQueue {
	return &TaskQueue{log: log, tasks: make(chan Task, bufferSize)}
}

func (q *TaskQueue) Submit(task Task) bool {
	select {
	case q.tasks <- task:
		return true
	default:
		q.log.Warn("Task queue full, dropping side effect", "task", task.Name)
		return false
	}
}

func (q *TaskQueue) Backlog() int {
	return len(q.tasks)
}

func (q *TaskQueue) Workers(count int, timeout time.Duration) []contract.Worker {
	res := make([]contract.Worker, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, NewTaskWorker(q.log.With("taskWorker", i), q.tasks, timeout))
	}
	return res
}

var _ contract.Worker = (*TaskWorker)(nil)

// TaskWorker runs side effects one at a time. Errors and panics are logged
// and never leave the task.
type TaskWorker struct {
	log     *slog.Logger
	tasks   <-chan Task
	timeout time.Duration
}

func NewTaskWorker(log *slog.Logger, tasks <-chan Task, timeout time.Duration) *TaskWorker {
	return &TaskWorker{log: log, tasks: tasks, timeout: timeout}
}

func (w *TaskWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case task, ok := <-w.tasks:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.Execute(ctx, task); err != nil {
				w.log.Error("Side effect failed", "task", task.Name, "error", err)
			}
		}
	}
}

func (w *TaskWorker) Execute(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	return task.Run(ctx)
}
