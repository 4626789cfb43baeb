// Package halt implements the operator halt of a scan run: the run and every
// outstanding task move to canceled in one transaction, and exactly one audit
// record describing the halt is kept.
package halt

import (
	"context"
	"scanguard/pkg/domain"
)

//go:generate mockgen -package mockhalt -source=interface.go -destination=mock/mockhalt.go *

// Coordinator halts scan runs.
type Coordinator interface {
	// Halt cancels the run and its outstanding tasks on behalf of identity and
	// returns the audit record. A blank reason is recorded as the default reason.
	Halt(ctx context.Context, identity domain.Identity, runID domain.RunID, reason string) (*domain.AuditRecord, error)
}

// Notifier is told about every committed halt so in-flight work can be aborted.
type Notifier interface {
	Halted(ctx context.Context, event Event) error
}
