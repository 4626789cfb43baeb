package lifecycle

import (
	"context"
	"scanguard/pkg/domain"
)

// Overview is everything the dashboard shows for one run.
type Overview struct {
	Run      domain.ScanRun
	Tasks    []domain.ScanTask
	Progress domain.Progress
	// Audit is set only for runs that were halted.
	Audit *domain.AuditRecord
}

// Service drives scan runs and their tasks through the state machine. Every
// mutation is a status-guarded update, so a mutation that lost a race with a
// concurrent writer fails with a CONFLICT error instead of overwriting it.
//
//go:generate mockgen -package mocklifecycle -source=interface.go -destination=mock/mocklifecycle.go *
type Service interface {
	// CreateRun plans a run for the project according to the owner's tier and
	// queues it for execution.
	CreateRun(ctx context.Context,
		owner domain.UserID,
		projectID domain.ProjectID,
		mode domain.RunMode) (*domain.ScanRun, []domain.ScanTask, error)
	Overview(ctx context.Context, userID domain.UserID, runID domain.RunID) (*Overview, error)
	Pause(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error)
	Resume(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error)

	// Ledger returns a run and its tasks in execution order.
	Ledger(ctx context.Context, runID domain.RunID) (*domain.ScanRun, []domain.ScanTask, error)
	// BeginRun moves a pending run to running. A run that already runs is returned as is.
	BeginRun(ctx context.Context, runID domain.RunID) (*domain.ScanRun, error)
	StartTask(ctx context.Context, runID domain.RunID, taskID domain.TaskID) (*domain.ScanTask, error)
	CompleteTask(ctx context.Context, taskID domain.TaskID, score *float64) (*domain.ScanTask, error)
	// RetryTask puts a running task back to pending, spending one retry.
	RetryTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error)
	FailTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error)
	SkipTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error)
	// CompleteRun finishes a run whose tasks all completed or were skipped and stores its scores.
	CompleteRun(ctx context.Context, runID domain.RunID) (*domain.ScanRun, error)
	FailRun(ctx context.Context, runID domain.RunID, message string) (*domain.ScanRun, error)
	// FailTaskAndRun fails a running task and its running run in one transaction.
	// It is how a task that cannot be skipped ends once its retries are spent.
	FailTaskAndRun(ctx context.Context,
		runID domain.RunID,
		taskID domain.TaskID,
		cause error,
		message string) (*domain.ScanRun, error)
}
