package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"scanguard/internal/lifecycle"
	"scanguard/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// errorHandler logs executions that errored or panicked together with the
// run they were executing. River keeps its retry policy.
type errorHandler struct{}

func (errorHandler) jobContext(ctx context.Context, job *rivertype.JobRow) context.Context {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Int("maxAttempts", job.MaxAttempts))

	var args lifecycle.ExecuteRunArgs
	if job.Kind == args.Kind() && json.Unmarshal(job.EncodedArgs, &args) == nil {
		ctx = logger.WithRun(ctx, args.RunID.String())
	}

	return ctx
}

func (h errorHandler) HandleError(ctx context.Context, job *rivertype.JobRow, err error) *river.ErrorHandlerResult {
	logger.Warn(h.jobContext(ctx, job), "scan run execution attempt failed", zap.Error(err))

	return nil
}

func (h errorHandler) HandlePanic(ctx context.Context,
	job *rivertype.JobRow,
	panicVal any,
	trace string) *river.ErrorHandlerResult {
	logger.Error(h.jobContext(ctx, job), "scan run execution panicked",
		zap.Any("panic", panicVal), zap.String("trace", trace))

	return nil
}

// Start registers the run executor and starts a River client processing the
// default queue with up to MaxWorkers runs at a time.
func Start(ctx context.Context, dbPool *pgxpool.Pool, executor *RunExecutorWorker) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, executor); err != nil {
		return nil, fmt.Errorf("could not register run executor: %w", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(executor.options.MaxWorkers, 1)},
		},
		Workers:      workers,
		ErrorHandler: errorHandler{},
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}
	logger.Info(ctx, "run executor started", zap.Int("maxWorkers", max(executor.options.MaxWorkers, 1)))

	return riverClient, nil
}
