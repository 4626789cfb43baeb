package halt

import (
	"context"
	"errors"
	"fmt"
	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "scanguard/internal/halt"

// errRaceLost marks an attempt whose guarded writes did not hit the rows the
// ledger said they would, because a concurrent writer got there first.
var errRaceLost = errors.New("concurrent modification")

// Options configure the coordinator.
type Options struct {
	// MaxAttempts bounds how many times a halt runs its transaction when it
	// loses a race with a concurrent writer.
	MaxAttempts int
	// MeterProvider receives the halt counters. Metrics are dropped when nil.
	MeterProvider metric.MeterProvider
	// TracerProvider receives halt spans. The global provider is used when nil.
	TracerProvider trace.TracerProvider
	// Now returns the halt timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config, mp metric.MeterProvider) Options {
	return Options{
		MaxAttempts:   cfg.Halt.MaxAttempts,
		MeterProvider: mp,
	}
}

type coordinator struct {
	options  Options
	storage  storage.Storage
	notifier Notifier

	tracer   trace.Tracer
	outcomes metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates a Coordinator backed by the given storage. Committed halts are
// announced through notifier.
func New(storage storage.Storage, notifier Notifier, options Options) (Coordinator, error) {
	if options.MaxAttempts < 1 {
		options.MaxAttempts = 1
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.MeterProvider == nil {
		options.MeterProvider = noop.NewMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	meter := options.MeterProvider.Meter(instrumentationName)
	outcomes, err := meter.Int64Counter(metrics.Namespace+".halt.requests",
		metric.WithDescription("Halt requests by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create halt counter: %w", err)
	}
	duration, err := meter.Float64Histogram(metrics.Namespace+".halt.duration",
		metric.WithDescription("Time spent halting a scan run, retries included."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create halt histogram: %w", err)
	}

	return &coordinator{
		options:  options,
		storage:  storage,
		notifier: notifier,
		tracer:   options.TracerProvider.Tracer(instrumentationName),
		outcomes: outcomes,
		duration: duration,
	}, nil
}

// Halt runs the halt transaction, retrying it when it loses a race, and
// publishes the event once the halt committed.
func (c *coordinator) Halt(ctx context.Context,
	identity domain.Identity,
	runID domain.RunID,
	reason string) (*domain.AuditRecord, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "halt.Halt", trace.WithAttributes(
		attribute.String("scan_run.id", runID.String()),
		attribute.String("halted_by", identity.String()),
	))
	defer span.End()
	ctx = logger.WithRun(ctx, runID.String())

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = domain.DefaultHaltReason
	}

	var (
		record *domain.AuditRecord
		err    error
	)
	for attempt := 1; attempt <= c.options.MaxAttempts; attempt++ {
		record, err = c.attempt(ctx, identity, runID, reason)
		if !retryable(err) {
			break
		}
		logger.Warn(ctx, "halt lost a race with a concurrent writer",
			zap.Int("attempt", attempt), zap.Error(err))
	}
	if retryable(err) {
		err = serrors.Wrap(serrors.ErrConflict, err,
			"scan run %s was modified concurrently, halt aborted after %d attempts", runID, c.options.MaxAttempts)
	}

	outcome := "halted"
	if err != nil {
		outcome = strings.ToLower(serrors.KindOf(err).Error())
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	c.outcomes.Add(ctx, 1, attrs)
	c.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		logger.Info(ctx, "scan run not halted", zap.String("outcome", outcome), zap.Error(err))

		return nil, err
	}

	span.SetAttributes(
		attribute.String("stage_when_halted", record.StageWhenHalted),
		attribute.Int("tasks_canceled", record.TasksCanceled),
	)
	logger.Info(ctx, "scan run halted",
		zap.String("haltedBy", record.HaltedBy),
		zap.String("stage", record.StageWhenHalted),
		zap.Int("tasksCanceled", record.TasksCanceled),
		zap.Int("tasksCompletedBeforeHalt", record.TasksCompletedBeforeHalt))

	if err := c.notifier.Halted(ctx, NewEvent(runID, *record)); err != nil {
		logger.Warn(ctx, "could not publish halt event", zap.Error(err))
	}

	return record, nil
}

func retryable(err error) bool {
	return err != nil && (errors.Is(err, errRaceLost) || errors.Is(err, storage.ErrSerialization))
}

// attempt performs one halt transaction. Semantic failures come back as
// serrors kinds, races as errRaceLost or storage.ErrSerialization, and any
// other failure of the store as a STORAGE error carrying the store's message.
func (c *coordinator) attempt(ctx context.Context,
	identity domain.Identity,
	runID domain.RunID,
	reason string) (*domain.AuditRecord, error) {
	var record *domain.AuditRecord

	err := c.storage.WithTx(ctx, storage.Serializable, func(tx storage.AllStorage) error {
		run, err := tx.RunByID(ctx, runID, true)
		if err != nil {
			return fmt.Errorf("could not load scan run: %w", err)
		}
		if run == nil {
			return serrors.With(serrors.ErrNotFound, "scan run %s not found", runID)
		}

		project, err := tx.ProjectByID(ctx, run.ProjectID)
		if err != nil {
			return fmt.Errorf("could not load project: %w", err)
		}
		if project == nil || !project.OwnedBy(identity.UserID) {
			return serrors.With(serrors.ErrForbidden, "not allowed to halt scan run %s", runID)
		}

		if !run.Status.Haltable() {
			return serrors.With(serrors.ErrConflict, "scan run %s is already %s", runID, run.Status)
		}

		tasks, err := tx.RunTasks(ctx, runID)
		if err != nil {
			return fmt.Errorf("could not load scan run tasks: %w", err)
		}
		assessment := Assess(tasks)

		now := c.options.Now().UTC()
		rec := domain.AuditRecord{
			HaltedBy:                 identity.String(),
			HaltedAt:                 now,
			Reason:                   reason,
			StageWhenHalted:          assessment.Stage,
			TasksCanceled:            len(assessment.Outstanding),
			TasksCompletedBeforeHalt: assessment.CompletedBefore,
		}

		message, detail := domain.HaltedTaskMessage, rec.TaskDetail()
		canceled, err := tx.UpdateOutstandingTasks(ctx, runID, assessment.Outstanding, storage.TaskUpdates{
			Status:       domain.TaskStatusCanceled,
			EndedAt:      &now,
			ErrorMessage: &message,
			ErrorDetail:  &detail,
		})
		if err != nil {
			return fmt.Errorf("could not cancel outstanding tasks: %w", err)
		}
		if canceled != int64(len(assessment.Outstanding)) {
			return fmt.Errorf("%w: canceled %d of %d outstanding tasks",
				errRaceLost, canceled, len(assessment.Outstanding))
		}

		payload, err := rec.Marshal()
		if err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not serialize audit record")
		}
		summary := rec.Summary()
		updated, err := tx.UpdateRun(ctx, runID, []domain.RunStatus{run.Status}, storage.RunUpdates{
			Status:       domain.RunStatusCanceled,
			EndedAt:      &now,
			ErrorMessage: &payload,
			ErrorSummary: &summary,
		})
		if err != nil {
			return fmt.Errorf("could not cancel scan run: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("%w: scan run left %s", errRaceLost, run.Status)
		}

		if err := tx.StoreHalt(ctx, runID, rec); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "scan run %s already has a halt record", runID)
			}

			return fmt.Errorf("could not store halt record: %w", err)
		}

		record = &rec

		return nil
	})
	if err != nil {
		var se *serrors.Error
		if errors.As(err, &se) || retryable(err) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrStorage, err, "")
	}

	return record, nil
}
