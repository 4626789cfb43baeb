package worker

import (
	"context"
	"errors"
	"fmt"
	"scanguard/internal/config"
	"scanguard/internal/lifecycle"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"scanguard/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const instrumentationName = "scanguard/internal/worker"

// errInterrupted marks a task found running when an execution started, which
// means a previous attempt died while running it.
var errInterrupted = errors.New("task interrupted by executor restart")

// Options configure the run executor.
type Options struct {
	// MaxWorkers is the number of runs executed concurrently.
	MaxWorkers int
	// PausePoll is how long a paused run is snoozed before it is looked at again.
	PausePoll time.Duration
	// TaskTimeout bounds a single task. Zero means no bound.
	TaskTimeout time.Duration
	// MeterProvider receives task metrics. Metrics are dropped when nil.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, mp metric.MeterProvider) Options {
	return Options{
		MaxWorkers:    cfg.Executor.MaxWorkers,
		PausePoll:     cfg.Executor.PausePoll,
		TaskTimeout:   cfg.Executor.TaskTimeout,
		MeterProvider: mp,
	}
}

// RunExecutorWorker is a River worker that executes the tasks of a run one
// after another, in plan order.
//
// Every step re-reads the ledger and moves a single run or task through a
// guarded transition. A transition rejected with a conflict means someone
// else (an operator pause, a halt) changed the run, so the executor re-reads
// and reacts to the new state instead of failing:
//   - paused runs snooze the job for PausePoll,
//   - terminal runs end the job,
//   - a task left running by a dead attempt is treated as a failed attempt.
//
// Halts additionally cancel the context of the task in flight through the
// Canceller.
type RunExecutorWorker struct {
	river.WorkerDefaults[lifecycle.ExecuteRunArgs]

	lifecycle lifecycle.Service
	runner    TaskRunner
	cancels   *Canceller
	options   Options

	taskDuration metric.Float64Histogram
}

// NewRunExecutorWorker constructs the executor.
func NewRunExecutorWorker(svc lifecycle.Service,
	runner TaskRunner,
	cancels *Canceller,
	options Options) (*RunExecutorWorker, error) {
	if options.MeterProvider == nil {
		options.MeterProvider = noop.NewMeterProvider()
	}
	if cancels == nil {
		cancels = NewCanceller()
	}

	taskDuration, err := options.MeterProvider.Meter(instrumentationName).Float64Histogram(
		metrics.Namespace+".task.duration",
		metric.WithDescription("Scan task execution time by type and outcome."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.TaskBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create task histogram: %w", err)
	}

	return &RunExecutorWorker{
		lifecycle:    svc,
		runner:       runner,
		cancels:      cancels,
		options:      options,
		taskDuration: taskDuration,
	}, nil
}

// Timeout disables River's job timeout. A run lasts as long as its tasks, each
// of which is bounded by TaskTimeout.
func (w *RunExecutorWorker) Timeout(*river.Job[lifecycle.ExecuteRunArgs]) time.Duration { return -1 }

// Work executes the run until it is paused, finished or halted.
func (w *RunExecutorWorker) Work(ctx context.Context, job *river.Job[lifecycle.ExecuteRunArgs]) error {
	runID := domain.RunID(job.Args.RunID)
	ctx = logger.WithFields(logger.WithRun(ctx, runID.String()), zap.Int64("jobID", job.ID))
	ctx, untrack := w.cancels.Track(ctx, runID)
	defer untrack()

	for {
		if ctx.Err() != nil {
			return w.stop(ctx, context.Cause(ctx))
		}

		run, tasks, err := w.lifecycle.Ledger(ctx, runID)
		if err != nil {
			return w.stop(ctx, err)
		}

		switch run.Status {
		case domain.RunStatusPaused:
			logger.Info(ctx, "scan run paused, snoozing", zap.Duration("for", w.options.PausePoll))

			return river.JobSnooze(w.options.PausePoll) //nolint: wrapcheck
		case domain.RunStatusCompleted, domain.RunStatusFailed, domain.RunStatusCanceled:
			logger.Info(ctx, "scan run finished", zap.String("status", string(run.Status)))

			return nil
		case domain.RunStatusPending:
			err = w.begin(ctx, runID)
		case domain.RunStatusRunning:
			err = w.step(ctx, runID, tasks)
		default:
			return river.JobCancel(fmt.Errorf("scan run %s has unknown status %q", runID, run.Status)) //nolint: wrapcheck
		}
		if err != nil && !errors.Is(err, serrors.ErrConflict) {
			return w.stop(ctx, err)
		}
	}
}

func (w *RunExecutorWorker) begin(ctx context.Context, runID domain.RunID) error {
	if _, err := w.lifecycle.BeginRun(ctx, runID); err != nil {
		return fmt.Errorf("could not begin scan run: %w", err)
	}
	logger.Info(ctx, "scan run started")

	return nil
}

// step advances a running run by one task, or finishes it.
func (w *RunExecutorWorker) step(ctx context.Context, runID domain.RunID, tasks []domain.ScanTask) error {
	if current := domain.CurrentTask(tasks); current != nil {
		return w.settleFailure(logger.WithTask(ctx, current.ID.String(), current.Type), *current, errInterrupted)
	}

	// a required task exhausted its retries but the run survived, e.g. the
	// attempt died after failing the task; nothing else may run
	if failed := domain.FailedRequiredTask(tasks); failed != nil {
		if _, err := w.lifecycle.FailRun(ctx, runID, failureMessage(*failed, failed.ErrorMessage)); err != nil {
			return fmt.Errorf("could not fail scan run: %w", err)
		}
		logger.Info(ctx, "scan run failed", zap.String("taskType", failed.Type))

		return nil
	}

	if next := domain.NextPendingTask(tasks); next != nil {
		return w.execute(ctx, runID, *next)
	}

	if !domain.CanComplete(tasks) {
		p := domain.ComputeProgress(tasks)
		if _, err := w.lifecycle.FailRun(ctx, runID,
			fmt.Sprintf("%d of %d tasks failed", p.Failed, p.Total)); err != nil {
			return fmt.Errorf("could not fail scan run: %w", err)
		}

		return nil
	}

	run, err := w.lifecycle.CompleteRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("could not complete scan run: %w", err)
	}
	logger.Info(ctx, "scan run completed",
		zap.Float64p("securityScore", run.Scores.Security),
		zap.Float64p("reliabilityScore", run.Scores.Reliability))

	return nil
}

func (w *RunExecutorWorker) execute(ctx context.Context, runID domain.RunID, task domain.ScanTask) error {
	started, err := w.lifecycle.StartTask(ctx, runID, task.ID)
	if err != nil {
		return fmt.Errorf("could not start scan task: %w", err)
	}
	ctx = logger.WithTask(ctx, started.ID.String(), started.Type)
	logger.Debug(ctx, "scan task started", zap.Int("retries", started.Retries))

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if w.options.TaskTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, w.options.TaskTimeout)
	}
	start := time.Now()
	result, runErr := w.runner.Run(runCtx, *started)
	cancel()
	elapsed := time.Since(start)

	// the run was halted or the worker is shutting down; in both cases the
	// task row is not ours to touch anymore
	if ctx.Err() != nil {
		w.observe(ctx, *started, elapsed, "aborted")

		return context.Cause(ctx)
	}

	if runErr != nil {
		w.observe(ctx, *started, elapsed, "failed")

		return w.settleFailure(ctx, *started, runErr)
	}

	w.observe(ctx, *started, elapsed, "completed")
	if _, err := w.lifecycle.CompleteTask(ctx, started.ID, result.Score); err != nil {
		return fmt.Errorf("could not complete scan task: %w", err)
	}
	logger.Info(ctx, "scan task completed", zap.Duration("took", elapsed), zap.Float64p("score", result.Score))

	return nil
}

// settleFailure spends a retry if one is left, and otherwise skips the task
// or, for tasks that cannot be skipped, fails it together with its run.
func (w *RunExecutorWorker) settleFailure(ctx context.Context, task domain.ScanTask, cause error) error {
	logger.Warn(ctx, "scan task failed",
		zap.Error(cause), zap.Int("retries", task.Retries), zap.Int("maxRetries", task.MaxRetries))

	switch {
	case task.CanRetry():
		if _, err := w.lifecycle.RetryTask(ctx, task.ID, cause); err != nil {
			return fmt.Errorf("could not retry scan task: %w", err)
		}
	case task.Skippable:
		if _, err := w.lifecycle.SkipTask(ctx, task.ID, cause); err != nil {
			return fmt.Errorf("could not skip scan task: %w", err)
		}
	default:
		if _, err := w.lifecycle.FailTaskAndRun(ctx, task.RunID, task.ID, cause,
			failureMessage(task, cause.Error())); err != nil {
			return fmt.Errorf("could not fail scan run: %w", err)
		}
		logger.Info(ctx, "scan run failed")
	}

	return nil
}

func failureMessage(task domain.ScanTask, cause string) string {
	return fmt.Sprintf("%s failed after %d retries: %s", task.Type, task.Retries, cause)
}

// stop maps the error that ended an execution to the River outcome.
func (w *RunExecutorWorker) stop(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrHalted):
		logger.Info(ctx, "scan run halted, execution stopped", zap.NamedError("cause", err))

		return nil
	case errors.Is(err, serrors.ErrNotFound):
		return river.JobCancel(err) //nolint: wrapcheck
	default:
		logger.Error(ctx, "scan run execution interrupted", zap.Error(err))

		return fmt.Errorf("could not execute scan run: %w", err)
	}
}

func (w *RunExecutorWorker) observe(ctx context.Context, task domain.ScanTask, elapsed time.Duration, outcome string) {
	w.taskDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("task_type", task.Type),
		attribute.String("outcome", outcome),
	))
}
