package storage

import (
	"context"
	"scanguard/pkg/domain"
	"time"
)

// TaskUpdates describes the fields changed by a guarded task update. Status is
// always written; nil pointers leave the column untouched.
type TaskUpdates struct {
	// Status is the new status of the task.
	Status domain.TaskStatus
	// StartedAt is set when the task starts running.
	StartedAt *time.Time
	// EndedAt is set when the task reaches a terminal status.
	EndedAt *time.Time
	// Score is the result reported for a completed task.
	Score *float64
	// ErrorMessage replaces the short error message. An empty string clears it.
	ErrorMessage *string
	// ErrorDetail replaces the error detail. An empty string clears it.
	ErrorDetail *string
	// IncrementRetries bumps the retry counter by one. The update then only
	// applies while retries is still below max_retries.
	IncrementRetries bool
}

// TaskStorage defines persistence operations for the tasks of a run.
type TaskStorage interface {
	// StoreTasks inserts the tasks of a plan and returns them as stored.
	StoreTasks(ctx context.Context, tasks ...domain.ScanTask) ([]domain.ScanTask, error)
	// RunTasks returns every task of a run in execution order.
	RunTasks(ctx context.Context, runID domain.RunID) ([]domain.ScanTask, error)
	// UpdateTask applies updates only if the task's current status is one of
	// expected, and returns the updated task, or nil when nothing matched.
	UpdateTask(ctx context.Context,
		id domain.TaskID,
		expected []domain.TaskStatus,
		updates TaskUpdates) (*domain.ScanTask, error)
	// UpdateOutstandingTasks applies updates to the given tasks of a run that are
	// still pending or running, and returns how many rows changed. Tasks that
	// reached a terminal status in the meantime are left alone.
	UpdateOutstandingTasks(ctx context.Context,
		runID domain.RunID,
		ids []domain.TaskID,
		updates TaskUpdates) (int64, error)
}
