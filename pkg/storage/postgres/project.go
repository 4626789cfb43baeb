package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	projectsTable     = "projects"
	entitlementsTable = "user_entitlements"
)

func (p *PgSQL) StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var row PgProject
	row.FromDomain(project)

	var result PgProject
	if _, err := p.Builder.Insert(projectsTable).
		Rows(row).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store project into pg: %w", mapError(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by id: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserTier(ctx context.Context, userID domain.UserID) (domain.Tier, error) {
	var tier string
	found, err := p.Builder.From(entitlementsTable).
		Select("tier").
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanValContext(ctx, &tier)
	if err != nil {
		return "", fmt.Errorf("could not fetch user tier: %w", mapError(err))
	}
	if !found {
		return domain.TierFree, nil
	}

	return domain.Tier(tier), nil
}

// SetUserTier upserts the entitlement row of the user.
func (p *PgSQL) SetUserTier(ctx context.Context, userID domain.UserID, tier domain.Tier) error {
	_, err := p.Builder.Insert(entitlementsTable).
		Rows(goqu.Record{
			"user_id": uuid.UUID(userID),
			"tier":    string(tier),
		}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"tier":       goqu.L("EXCLUDED.tier"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set user tier in pg: %w", mapError(err))
	}

	return nil
}
