package storage

import (
	"context"
	"scanguard/pkg/domain"
)

// ProjectStorage persists projects and the entitlement tier of their owners.
type ProjectStorage interface {
	// StoreProject inserts a project and returns it with generated fields populated.
	StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	// ProjectByID returns the project or nil when it does not exist.
	ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// UserTier returns the entitlement tier of a user. Users without an
	// entitlement row are on the free tier.
	UserTier(ctx context.Context, userID domain.UserID) (domain.Tier, error)
	// SetUserTier creates or replaces the entitlement tier of a user.
	SetUserTier(ctx context.Context, userID domain.UserID, tier domain.Tier) error
}
