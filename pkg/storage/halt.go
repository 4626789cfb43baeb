package storage

import (
	"context"
	"scanguard/pkg/domain"
)

// HaltStorage persists the audit record written when an operator halts a run.
// A run has at most one record.
type HaltStorage interface {
	// StoreHalt records the halt of a run. It returns an error wrapping
	// ErrDuplicate when the run already has a record.
	StoreHalt(ctx context.Context, runID domain.RunID, record domain.AuditRecord) error
	// HaltByRunID returns the halt record of a run, or nil when it was never halted.
	HaltByRunID(ctx context.Context, runID domain.RunID) (*domain.AuditRecord, error)
}
