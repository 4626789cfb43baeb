package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"scanguard/internal/halt"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrHalted is the cancellation cause of an executor whose run was halted.
var ErrHalted = errors.New("scan run halted")

type tracked struct {
	cancel context.CancelCauseFunc
}

// Canceller tracks the contexts of runs being executed in this process so a
// halt can abort the task in flight instead of waiting for it to finish.
type Canceller struct {
	mu   sync.Mutex
	runs map[domain.RunID]*tracked
}

func NewCanceller() *Canceller {
	return &Canceller{runs: make(map[domain.RunID]*tracked)}
}

// Track derives a cancellable context for executing runID. The returned
// function must be called once execution stops.
func (c *Canceller) Track(ctx context.Context, runID domain.RunID) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)
	t := &tracked{cancel: cancel}

	c.mu.Lock()
	c.runs[runID] = t
	c.mu.Unlock()

	return ctx, func() {
		c.mu.Lock()
		if c.runs[runID] == t {
			delete(c.runs, runID)
		}
		c.mu.Unlock()
		cancel(nil)
	}
}

// Cancel aborts the execution of runID with cause. It reports whether the run
// was executing in this process.
func (c *Canceller) Cancel(runID domain.RunID, cause error) bool {
	c.mu.Lock()
	t, ok := c.runs[runID]
	c.mu.Unlock()
	if !ok {
		return false
	}
	t.cancel(cause)

	return true
}

// Halted implements halt.Notifier so a single process without a bus can
// cancel its executors directly.
func (c *Canceller) Halted(ctx context.Context, event halt.Event) error {
	id, err := uuid.Parse(event.ScanRunID)
	if err != nil {
		return fmt.Errorf("invalid scan run id in halt event: %w", err)
	}

	if c.Cancel(domain.RunID(id), fmt.Errorf("%w by %s: %s", ErrHalted, event.HaltedBy, event.Reason)) {
		logger.Info(logger.WithRun(ctx, event.ScanRunID), "aborted in-flight execution of halted scan run",
			zap.String("stage", event.StageWhenHalted))
	}

	return nil
}

// HandleHaltedMessage decodes a halt event received from the bus.
func (c *Canceller) HandleHaltedMessage(ctx context.Context, data []byte) error {
	var event halt.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not decode halt event: %w", err)
	}

	return c.Halted(ctx, event)
}
