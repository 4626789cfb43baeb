package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	haltsTable = "scan_run_halts"
)

// StoreHalt inserts the halt record. The run ID is the primary key, so a second
// record for the same run fails with storage.ErrDuplicate.
func (p *PgSQL) StoreHalt(ctx context.Context, runID domain.RunID, record domain.AuditRecord) error {
	var row PgHalt
	row.FromDomain(runID, record)

	if _, err := p.Builder.Insert(haltsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store scan run halt into pg: %w", mapError(err))
	}

	return nil
}

func (p *PgSQL) HaltByRunID(ctx context.Context, runID domain.RunID) (*domain.AuditRecord, error) {
	var row PgHalt
	found, err := p.Builder.From(haltsTable).
		Where(goqu.I("run_id").Eq(uuid.UUID(runID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan run halt: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
