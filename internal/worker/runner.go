package worker

import (
	"context"
	"hash/fnv"
	"scanguard/pkg/domain"
	"time"
)

// Result is what a task reports when it completes.
type Result struct {
	// Score is the task's 0-100 result, nil for tasks that do not score.
	Score *float64
}

// TaskRunner performs the actual work of one scan task. Implementations must
// return promptly once ctx is done.
//
//go:generate mockgen -package mockworker -source=runner.go -destination=mock/mockworker.go *
type TaskRunner interface {
	Run(ctx context.Context, task domain.ScanTask) (Result, error)
}

// DryRunner pretends to run tasks. It waits Delay and reports a stable score
// derived from the task type for tasks whose stage is scored.
type DryRunner struct {
	Delay time.Duration
}

func (r DryRunner) Run(ctx context.Context, task domain.ScanTask) (Result, error) {
	timer := time.NewTimer(r.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, context.Cause(ctx)
	case <-timer.C:
	}

	stage := domain.ClassifyStage(task.Type)
	if !domain.IsSecurityStage(stage) && !domain.IsReliabilityStage(stage) {
		return Result{}, nil
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(task.Type))
	score := float64(60 + h.Sum32()%41)

	return Result{Score: &score}, nil
}
