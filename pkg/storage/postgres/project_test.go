package postgres_test

import (
	"context"
	"scanguard/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Projects(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := domain.UserID(uuid.New())

	t.Run("store and fetch", func(t *testing.T) {
		t.Parallel()

		stored, err := pgSQL.StoreProject(ctx, domain.Project{
			OwnerID:   owner,
			Name:      "checkout",
			TargetURL: "https://checkout.example.com/",
		})
		require.NoError(t, err)
		require.NotEqual(t, domain.ProjectID{}, stored.ID)
		require.False(t, stored.CreatedAt.IsZero())

		got, err := pgSQL.ProjectByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, "checkout", got.Name)
		require.Equal(t, "https://checkout.example.com/", got.TargetURL)
		require.True(t, got.OwnedBy(owner))
	})

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()

		got, err := pgSQL.ProjectByID(ctx, domain.ProjectID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_UserTier(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := domain.UserID(uuid.New())

	tier, err := pgSQL.UserTier(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.TierFree, tier, "users without entitlement are free")

	require.NoError(t, pgSQL.SetUserTier(ctx, user, domain.TierPro))
	tier, err = pgSQL.UserTier(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.TierPro, tier)

	require.NoError(t, pgSQL.SetUserTier(ctx, user, domain.TierEnterprise))
	tier, err = pgSQL.UserTier(ctx, user)
	require.NoError(t, err)
	require.Equal(t, domain.TierEnterprise, tier)
}
