package postgres_test

import (
	"context"
	"database/sql"
	"scanguard/pkg/domain"
	"scanguard/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_RunByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	project, run, _ := seedRun(t, pgSQL)

	got, err := pgSQL.RunByID(ctx, run.ID, false)
	require.NoError(t, err)
	require.Equal(t, project.ID, got.ProjectID)
	require.Equal(t, domain.RunStatusPending, got.Status)
	require.Equal(t, domain.RunModeURLOnly, got.Mode)
	require.Nil(t, got.Scores.Security)
	require.True(t, got.StartedAt.IsZero())

	missing, err := pgSQL.RunByID(ctx, domain.RunID(uuid.New()), false)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_RunByID_ForUpdateBlocksWriters(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, run, _ := seedRun(t, pgSQL)

	tx, err := pgSQL.Begin(ctx, storage.ReadCommitted)
	require.NoError(t, err)
	locked, err := tx.RunByID(ctx, run.ID, true)
	require.NoError(t, err)
	require.NotNil(t, locked)

	// a writer outside the locking transaction must wait for it to end
	done := make(chan *domain.ScanRun, 1)
	go func() {
		updated, _ := pgSQL.UpdateRun(ctx, run.ID,
			[]domain.RunStatus{domain.RunStatusPending},
			storage.RunUpdates{Status: domain.RunStatusRunning})
		done <- updated
	}()

	select {
	case <-done:
		t.Fatal("update went through a locked row")
	case <-time.After(300 * time.Millisecond):
	}

	_, err = tx.UpdateRun(ctx, run.ID,
		[]domain.RunStatus{domain.RunStatusPending},
		storage.RunUpdates{Status: domain.RunStatusCanceled})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// the waiting writer re-checks the guard and finds the run canceled
	require.Nil(t, <-done)
}

func TestPgSQL_UpdateRun(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, run, _ := seedRun(t, pgSQL)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("guard miss leaves the run untouched", func(t *testing.T) {
		updated, err := pgSQL.UpdateRun(ctx, run.ID,
			[]domain.RunStatus{domain.RunStatusRunning},
			storage.RunUpdates{Status: domain.RunStatusCompleted})
		require.NoError(t, err)
		require.Nil(t, updated)

		got, err := pgSQL.RunByID(ctx, run.ID, false)
		require.NoError(t, err)
		require.Equal(t, domain.RunStatusPending, got.Status)
	})

	t.Run("empty guard matches nothing", func(t *testing.T) {
		updated, err := pgSQL.UpdateRun(ctx, run.ID, nil, storage.RunUpdates{Status: domain.RunStatusRunning})
		require.NoError(t, err)
		require.Nil(t, updated)
	})

	t.Run("start", func(t *testing.T) {
		updated, err := pgSQL.UpdateRun(ctx, run.ID,
			[]domain.RunStatus{domain.RunStatusPending},
			storage.RunUpdates{Status: domain.RunStatusRunning, StartedAt: &now})
		require.NoError(t, err)
		require.Equal(t, domain.RunStatusRunning, updated.Status)
		require.True(t, now.Equal(updated.StartedAt))
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("complete with scores and error fields", func(t *testing.T) {
		sec := 82.5
		msg, summary := `{"k":"v"}`, "done"
		updated, err := pgSQL.UpdateRun(ctx, run.ID,
			[]domain.RunStatus{domain.RunStatusRunning},
			storage.RunUpdates{
				Status:       domain.RunStatusCompleted,
				EndedAt:      &now,
				Scores:       &domain.Scores{Security: &sec},
				ErrorMessage: &msg,
				ErrorSummary: &summary,
			})
		require.NoError(t, err)
		require.Equal(t, domain.RunStatusCompleted, updated.Status)
		require.NotNil(t, updated.Scores.Security)
		require.InDelta(t, 82.5, *updated.Scores.Security, 0.0001)
		require.Nil(t, updated.Scores.Reliability)
		require.Equal(t, msg, updated.ErrorMessage)
		require.Equal(t, summary, updated.ErrorSummary)

		var errMsg sql.NullString
		require.NoError(t, pgSQL.DB.QueryRowContext(ctx,
			`SELECT error_message FROM scan_runs WHERE id = $1`, uuid.UUID(run.ID)).Scan(&errMsg))
		require.True(t, errMsg.Valid)
	})
}
