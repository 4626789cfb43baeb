package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"
	"scanguard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	tasksTable = "scan_tasks"
)

func (p *PgSQL) StoreTasks(ctx context.Context, tasks ...domain.ScanTask) ([]domain.ScanTask, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	rows := make([]PgTask, len(tasks))
	for i := range tasks {
		rows[i].FromDomain(tasks[i])
	}

	var result []PgTask
	if err := p.Builder.Insert(tasksTable).
		Rows(rows).
		Returning(&PgTask{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan tasks into pg: %w", mapError(err))
	}

	return pgTasksToDomain(result), nil
}

// RunTasks returns the tasks of a run ordered by creation time, then by their
// position in the plan.
func (p *PgSQL) RunTasks(ctx context.Context, runID domain.RunID) ([]domain.ScanTask, error) {
	var rows []PgTask
	if err := p.Builder.From(tasksTable).
		Where(goqu.I("run_id").Eq(uuid.UUID(runID))).
		Order(goqu.I("created_at").Asc(), goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scan run tasks from pg: %w", mapError(err))
	}

	return pgTasksToDomain(rows), nil
}

func taskUpdateRecord(updates storage.TaskUpdates) goqu.Record {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if updates.StartedAt != nil {
		rec["started_at"] = *updates.StartedAt
	}
	if updates.EndedAt != nil {
		rec["ended_at"] = *updates.EndedAt
	}
	if updates.Score != nil {
		rec["score"] = *updates.Score
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = nullableString(*updates.ErrorMessage)
	}
	if updates.ErrorDetail != nil {
		rec["error_detail"] = nullableString(*updates.ErrorDetail)
	}
	if updates.IncrementRetries {
		rec["retries"] = goqu.L("retries + 1")
	}

	return rec
}

func taskStatusStrings(statuses []domain.TaskStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}

	return out
}

// UpdateTask is a compare-and-set on the task status. When the update
// increments retries it additionally requires retry budget to be left.
func (p *PgSQL) UpdateTask(ctx context.Context,
	id domain.TaskID,
	expected []domain.TaskStatus,
	updates storage.TaskUpdates) (*domain.ScanTask, error) {
	if len(expected) == 0 {
		return nil, nil
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").In(taskStatusStrings(expected)),
	}
	if updates.IncrementRetries {
		w = append(w, goqu.L("retries < max_retries"))
	}

	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(taskUpdateRecord(updates)).
		Where(w...).
		Returning(&PgTask{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan task in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}
	task := row.ToDomain()

	return &task, nil
}

func (p *PgSQL) UpdateOutstandingTasks(ctx context.Context,
	runID domain.RunID,
	ids []domain.TaskID,
	updates storage.TaskUpdates) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	taskIDs := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		taskIDs[i] = uuid.UUID(id)
	}

	res, err := p.Builder.Update(tasksTable).
		Set(taskUpdateRecord(updates)).Where(
		goqu.I("run_id").Eq(uuid.UUID(runID)),
		goqu.I("id").In(taskIDs),
		goqu.I("status").In(taskStatusStrings(domain.OutstandingTaskStatuses())),
	).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not update outstanding scan tasks in pg: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count updated scan tasks: %w", err)
	}

	return n, nil
}
