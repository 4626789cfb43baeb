package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"
	"scanguard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	runsTable = "scan_runs"
)

func (p *PgSQL) StoreRun(ctx context.Context, run domain.ScanRun) (*domain.ScanRun, error) {
	var row PgRun
	row.FromDomain(run)

	var result PgRun
	if _, err := p.Builder.Insert(runsTable).
		Rows(row).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan run into pg: %w", mapError(err))
	}

	return result.ToDomain(), nil
}

// RunByID returns a run by its ID. With forUpdate the row is locked with
// SELECT ... FOR UPDATE, waiting for concurrent lockers.
func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID, forUpdate bool) (*domain.ScanRun, error) {
	ds := p.Builder.From(runsTable).Where(goqu.I("id").Eq(uuid.UUID(id)))
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgRun
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan run by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateRun is a compare-and-set on the run status: the update only matches
// while the stored status is one of expected.
func (p *PgSQL) UpdateRun(ctx context.Context,
	id domain.RunID,
	expected []domain.RunStatus,
	updates storage.RunUpdates) (*domain.ScanRun, error) {
	if len(expected) == 0 {
		return nil, nil
	}

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
	if updates.Scores != nil {
		rec["security_score"] = nullable(updates.Scores.Security)
		rec["reliability_score"] = nullable(updates.Scores.Reliability)
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = nullableString(*updates.ErrorMessage)
	}
	if updates.ErrorSummary != nil {
		rec["error_summary"] = nullableString(*updates.ErrorSummary)
	}

	statuses := make([]string, len(expected))
	for i, s := range expected {
		statuses[i] = string(s)
	}

	var row PgRun
	found, err := p.Builder.Update(runsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").In(statuses),
	).Returning(&PgRun{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan run in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
