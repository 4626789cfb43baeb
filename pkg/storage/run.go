package storage

import (
	"context"
	"scanguard/pkg/domain"
	"time"
)

// RunUpdates describes the fields changed by a guarded run update. Status is
// always written; nil pointers leave the column untouched.
type RunUpdates struct {
	// Status is the new status of the run.
	Status domain.RunStatus
	// StartedAt is set when the run first starts executing.
	StartedAt *time.Time
	// EndedAt is set when the run reaches a terminal status.
	EndedAt *time.Time
	// Scores replaces both computed scores.
	Scores *domain.Scores
	// ErrorMessage replaces the machine-readable error payload. An empty string clears it.
	ErrorMessage *string
	// ErrorSummary replaces the human-readable error summary. An empty string clears it.
	ErrorSummary *string
}

// RunStorage defines persistence operations for scan runs.
type RunStorage interface {
	// StoreRun inserts a run and returns it as stored, including its generated ID.
	StoreRun(ctx context.Context, run domain.ScanRun) (*domain.ScanRun, error)
	// RunByID returns the run or nil when it does not exist. When forUpdate is
	// set the row stays locked until the surrounding transaction ends.
	RunByID(ctx context.Context, id domain.RunID, forUpdate bool) (*domain.ScanRun, error)
	// UpdateRun applies updates only if the run's current status is one of
	// expected, and returns the updated run. It returns nil without an error when
	// the run does not exist or its status did not match, so concurrent writers
	// can never both move a run out of the same status.
	UpdateRun(ctx context.Context,
		id domain.RunID,
		expected []domain.RunStatus,
		updates RunUpdates) (*domain.ScanRun, error)
}
