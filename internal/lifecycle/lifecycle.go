package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"scanguard/internal/config"
	"scanguard/internal/entitlement"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how runs are queued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the executor makes on a
	// run job that keeps erroring before River discards it.
	MaxAttempts int
	// Now returns the timestamps written on transitions. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Executor.MaxAttempts,
	}
}

type lifecycle struct {
	options Options
	storage storage.Storage
}

// New creates a Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}

	return &lifecycle{
		options: options,
		storage: storage,
	}
}

func (l *lifecycle) now() time.Time { return l.options.Now().UTC() }

// CreateRun stores the run, its planned tasks and the execution job in one transaction.
func (l *lifecycle) CreateRun(ctx context.Context,
	owner domain.UserID,
	projectID domain.ProjectID,
	mode domain.RunMode) (*domain.ScanRun, []domain.ScanTask, error) {
	if !mode.Valid() {
		return nil, nil, serrors.With(serrors.ErrBadRequest, "unknown run mode %q", mode)
	}

	var (
		run   *domain.ScanRun
		tasks []domain.ScanTask
	)
	err := l.storage.WithTx(ctx, storage.ReadCommitted, func(tx storage.AllStorage) error {
		project, err := tx.ProjectByID(ctx, projectID)
		if err != nil {
			return fmt.Errorf("could not load project: %w", err)
		}
		if project == nil {
			return serrors.With(serrors.ErrNotFound, "project %s not found", projectID)
		}
		if !project.OwnedBy(owner) {
			return serrors.With(serrors.ErrForbidden, "not allowed to scan project %s", projectID)
		}

		tier, err := tx.UserTier(ctx, owner)
		if err != nil {
			return fmt.Errorf("could not load entitlement: %w", err)
		}
		steps, err := entitlement.Plan(tier, mode)
		if err != nil {
			return err
		}

		run, err = tx.StoreRun(ctx, domain.ScanRun{
			ProjectID: projectID,
			Mode:      mode,
			Status:    domain.RunStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store scan run: %w", err)
		}

		planned := make([]domain.ScanTask, len(steps))
		for i, step := range steps {
			planned[i] = domain.ScanTask{
				RunID:      run.ID,
				Position:   i,
				Type:       step.Type,
				Status:     domain.TaskStatusPending,
				Skippable:  step.Skippable,
				MaxRetries: step.MaxRetries,
			}
		}
		tasks, err = tx.StoreTasks(ctx, planned...)
		if err != nil {
			return fmt.Errorf("could not store scan tasks: %w", err)
		}

		if _, err := tx.AddJob(ctx, ExecuteRunArgs{
			RunID:       uuid.UUID(run.ID),
			maxAttempts: l.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, serrors.Ensure(serrors.ErrStorage, err)
	}

	logger.Info(logger.WithRun(ctx, run.ID.String()), "scan run created",
		zap.String("mode", string(mode)), zap.Int("tasks", len(tasks)))

	return run, tasks, nil
}

// ownedRun loads a run and checks that the user owns its project.
func (l *lifecycle) ownedRun(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error) {
	run, err := l.storage.RunByID(ctx, runID, false)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load scan run: %w", err))
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
	}

	project, err := l.storage.ProjectByID(ctx, run.ProjectID)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load project: %w", err))
	}
	if project == nil || !project.OwnedBy(userID) {
		return nil, serrors.With(serrors.ErrForbidden, "not allowed to access scan run %s", runID)
	}

	return run, nil
}

func (l *lifecycle) Overview(ctx context.Context, userID domain.UserID, runID domain.RunID) (*Overview, error) {
	run, err := l.ownedRun(ctx, userID, runID)
	if err != nil {
		return nil, err
	}

	tasks, err := l.storage.RunTasks(ctx, runID)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load scan tasks: %w", err))
	}

	overview := &Overview{
		Run:      *run,
		Tasks:    tasks,
		Progress: domain.ComputeProgress(tasks),
	}
	if run.Status == domain.RunStatusCanceled {
		overview.Audit, err = l.storage.HaltByRunID(ctx, runID)
		if err != nil {
			return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load halt record: %w", err))
		}
	}

	return overview, nil
}

func (l *lifecycle) Pause(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error) {
	return l.operatorTransition(ctx, userID, runID, domain.RunStatusPaused)
}

func (l *lifecycle) Resume(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error) {
	return l.operatorTransition(ctx, userID, runID, domain.RunStatusRunning)
}

func (l *lifecycle) operatorTransition(ctx context.Context,
	userID domain.UserID,
	runID domain.RunID,
	to domain.RunStatus) (*domain.ScanRun, error) {
	run, err := l.ownedRun(ctx, userID, runID)
	if err != nil {
		return nil, err
	}
	// pending -> running belongs to the executor
	if err := domain.ValidateRunTransition(run.Status, to); err != nil || run.Status == domain.RunStatusPending {
		return nil, serrors.With(serrors.ErrConflict, "scan run %s is %s, cannot move it to %s", runID, run.Status, to)
	}

	updated, err := l.updateRun(ctx, runID, []domain.RunStatus{run.Status}, storage.RunUpdates{Status: to})
	if err != nil {
		return nil, err
	}
	logger.Info(logger.WithRun(ctx, runID.String()), "scan run "+string(to), zap.String("by", userID.String()))

	return updated, nil
}

func (l *lifecycle) Ledger(ctx context.Context, runID domain.RunID) (*domain.ScanRun, []domain.ScanTask, error) {
	run, err := l.storage.RunByID(ctx, runID, false)
	if err != nil {
		return nil, nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load scan run: %w", err))
	}
	if run == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
	}

	tasks, err := l.storage.RunTasks(ctx, runID)
	if err != nil {
		return nil, nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load scan tasks: %w", err))
	}

	return run, tasks, nil
}

func (l *lifecycle) BeginRun(ctx context.Context, runID domain.RunID) (*domain.ScanRun, error) {
	now := l.now()
	updated, err := l.storage.UpdateRun(ctx, runID, []domain.RunStatus{domain.RunStatusPending},
		storage.RunUpdates{Status: domain.RunStatusRunning, StartedAt: &now})
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not begin scan run: %w", err))
	}
	if updated != nil {
		return updated, nil
	}

	run, err := l.storage.RunByID(ctx, runID, false)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not load scan run: %w", err))
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
	}
	if run.Status != domain.RunStatusRunning {
		return nil, serrors.With(serrors.ErrConflict, "scan run %s is %s, cannot begin it", runID, run.Status)
	}

	return run, nil
}

// StartTask locks the run so a task can never start while a halt of the same
// run is in progress.
func (l *lifecycle) StartTask(ctx context.Context, runID domain.RunID, taskID domain.TaskID) (*domain.ScanTask, error) {
	var task *domain.ScanTask

	err := l.storage.WithTx(ctx, storage.ReadCommitted, func(tx storage.AllStorage) error {
		run, err := tx.RunByID(ctx, runID, true)
		if err != nil {
			return fmt.Errorf("could not load scan run: %w", err)
		}
		if run == nil {
			return serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
		}
		if run.Status != domain.RunStatusRunning {
			return serrors.With(serrors.ErrConflict, "scan run %s is %s, cannot start tasks", runID, run.Status)
		}

		tasks, err := tx.RunTasks(ctx, runID)
		if err != nil {
			return fmt.Errorf("could not load scan tasks: %w", err)
		}
		if err := domain.CheckSingleRunning(tasks); err != nil {
			return serrors.Wrap(serrors.ErrConflict, err, "scan run %s", runID)
		}
		if current := domain.CurrentTask(tasks); current != nil {
			return serrors.With(serrors.ErrConflict, "scan task %s is already running", current.ID)
		}
		if !containsTask(tasks, taskID) {
			return serrors.With(serrors.ErrNotFound, "scan task %s not found in run %s", taskID, runID)
		}

		now := l.now()
		task, err = tx.UpdateTask(ctx, taskID, domain.TaskPredecessors(domain.TaskStatusRunning),
			storage.TaskUpdates{Status: domain.TaskStatusRunning, StartedAt: &now})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "another task of scan run %s is running", runID)
			}

			return fmt.Errorf("could not start scan task: %w", err)
		}
		if task == nil {
			return taskConflict(taskID, domain.TaskStatusRunning)
		}

		return nil
	})
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, err)
	}

	return task, nil
}

func containsTask(tasks []domain.ScanTask, id domain.TaskID) bool {
	for i := range tasks {
		if tasks[i].ID == id {
			return true
		}
	}

	return false
}

func (l *lifecycle) CompleteTask(ctx context.Context, taskID domain.TaskID, score *float64) (*domain.ScanTask, error) {
	now := l.now()

	return l.updateTask(ctx, taskID, storage.TaskUpdates{
		Status:  domain.TaskStatusCompleted,
		EndedAt: &now,
		Score:   score,
	})
}

func (l *lifecycle) RetryTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error) {
	message := causeMessage(cause)

	return l.updateTask(ctx, taskID, storage.TaskUpdates{
		Status:           domain.TaskStatusPending,
		ErrorMessage:     &message,
		IncrementRetries: true,
	})
}

func (l *lifecycle) FailTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error) {
	now := l.now()
	message := causeMessage(cause)

	return l.updateTask(ctx, taskID, storage.TaskUpdates{
		Status:       domain.TaskStatusFailed,
		EndedAt:      &now,
		ErrorMessage: &message,
	})
}

func (l *lifecycle) SkipTask(ctx context.Context, taskID domain.TaskID, cause error) (*domain.ScanTask, error) {
	now := l.now()
	message := causeMessage(cause)

	return l.updateTask(ctx, taskID, storage.TaskUpdates{
		Status:       domain.TaskStatusSkipped,
		EndedAt:      &now,
		ErrorMessage: &message,
	})
}

func (l *lifecycle) updateTask(ctx context.Context,
	taskID domain.TaskID,
	updates storage.TaskUpdates) (*domain.ScanTask, error) {
	task, err := l.storage.UpdateTask(ctx, taskID, domain.TaskPredecessors(updates.Status), updates)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not update scan task: %w", err))
	}
	if task == nil {
		return nil, taskConflict(taskID, updates.Status)
	}

	return task, nil
}

// CompleteRun checks the ledger under the run lock before finishing the run.
func (l *lifecycle) CompleteRun(ctx context.Context, runID domain.RunID) (*domain.ScanRun, error) {
	var run *domain.ScanRun

	err := l.storage.WithTx(ctx, storage.ReadCommitted, func(tx storage.AllStorage) error {
		current, err := tx.RunByID(ctx, runID, true)
		if err != nil {
			return fmt.Errorf("could not load scan run: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
		}

		tasks, err := tx.RunTasks(ctx, runID)
		if err != nil {
			return fmt.Errorf("could not load scan tasks: %w", err)
		}
		if !domain.CanComplete(tasks) {
			p := domain.ComputeProgress(tasks)

			return serrors.With(serrors.ErrConflict,
				"scan run %s cannot complete: %d pending, %d running, %d failed, %d canceled",
				runID, p.Pending, p.Running, p.Failed, p.Canceled)
		}

		now := l.now()
		scores := domain.ComputeScores(tasks)
		run, err = tx.UpdateRun(ctx, runID, domain.RunPredecessors(domain.RunStatusCompleted), storage.RunUpdates{
			Status:  domain.RunStatusCompleted,
			EndedAt: &now,
			Scores:  &scores,
		})
		if err != nil {
			return fmt.Errorf("could not complete scan run: %w", err)
		}
		if run == nil {
			return runConflict(runID, domain.RunStatusCompleted)
		}

		return nil
	})
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, err)
	}

	return run, nil
}

func (l *lifecycle) FailRun(ctx context.Context, runID domain.RunID, message string) (*domain.ScanRun, error) {
	now := l.now()

	return l.updateRun(ctx, runID, domain.RunPredecessors(domain.RunStatusFailed), storage.RunUpdates{
		Status:       domain.RunStatusFailed,
		EndedAt:      &now,
		ErrorMessage: &message,
	})
}

// FailTaskAndRun locks the run first, so an operator pause either lands before
// it and turns it into a conflict, or waits until the run has failed.
func (l *lifecycle) FailTaskAndRun(ctx context.Context,
	runID domain.RunID,
	taskID domain.TaskID,
	cause error,
	message string) (*domain.ScanRun, error) {
	var run *domain.ScanRun

	err := l.storage.WithTx(ctx, storage.ReadCommitted, func(tx storage.AllStorage) error {
		current, err := tx.RunByID(ctx, runID, true)
		if err != nil {
			return fmt.Errorf("could not load scan run: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
		}
		if current.Status != domain.RunStatusRunning {
			return serrors.With(serrors.ErrConflict, "scan run %s is %s, cannot fail it", runID, current.Status)
		}

		now := l.now()
		taskMessage := causeMessage(cause)
		task, err := tx.UpdateTask(ctx, taskID, domain.TaskPredecessors(domain.TaskStatusFailed), storage.TaskUpdates{
			Status:       domain.TaskStatusFailed,
			EndedAt:      &now,
			ErrorMessage: &taskMessage,
		})
		if err != nil {
			return fmt.Errorf("could not fail scan task: %w", err)
		}
		if task == nil {
			return taskConflict(taskID, domain.TaskStatusFailed)
		}

		run, err = tx.UpdateRun(ctx, runID, domain.RunPredecessors(domain.RunStatusFailed), storage.RunUpdates{
			Status:       domain.RunStatusFailed,
			EndedAt:      &now,
			ErrorMessage: &message,
		})
		if err != nil {
			return fmt.Errorf("could not fail scan run: %w", err)
		}
		if run == nil {
			return runConflict(runID, domain.RunStatusFailed)
		}

		return nil
	})
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, err)
	}

	return run, nil
}

func (l *lifecycle) updateRun(ctx context.Context,
	runID domain.RunID,
	expected []domain.RunStatus,
	updates storage.RunUpdates) (*domain.ScanRun, error) {
	run, err := l.storage.UpdateRun(ctx, runID, expected, updates)
	if err != nil {
		return nil, serrors.Ensure(serrors.ErrStorage, fmt.Errorf("could not update scan run: %w", err))
	}
	if run == nil {
		return nil, runConflict(runID, updates.Status)
	}

	return run, nil
}

func runConflict(runID domain.RunID, to domain.RunStatus) error {
	return serrors.With(serrors.ErrConflict, "scan run %s is not %s, cannot move it to %s",
		runID, joinStatuses(domain.RunPredecessors(to)), to)
}

func taskConflict(taskID domain.TaskID, to domain.TaskStatus) error {
	return serrors.With(serrors.ErrConflict, "scan task %s is not %s, cannot move it to %s",
		taskID, joinStatuses(domain.TaskPredecessors(to)), to)
}

func joinStatuses[S ~string](statuses []S) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}

	return strings.Join(parts, " or ")
}

func causeMessage(cause error) string {
	if cause == nil {
		return ""
	}

	return cause.Error()
}
