package worker_test

import (
	"context"
	"scanguard/internal/worker"
	"scanguard/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDryRunner_Scores(t *testing.T) {
	r := worker.DryRunner{}

	for _, taskType := range []string{domain.TaskTypeFingerprint, domain.TaskTypeTLSCheck, domain.TaskTypeSoakTest} {
		res, err := r.Run(context.Background(), domain.ScanTask{Type: taskType})
		require.NoError(t, err)
		require.NotNil(t, res.Score, taskType)
		require.GreaterOrEqual(t, *res.Score, 60.0)
		require.LessOrEqual(t, *res.Score, 100.0)

		again, err := r.Run(context.Background(), domain.ScanTask{Type: taskType})
		require.NoError(t, err)
		require.Equal(t, *res.Score, *again.Score, "scores are stable per task type")
	}

	res, err := r.Run(context.Background(), domain.ScanTask{Type: domain.TaskTypeReportCompile})
	require.NoError(t, err)
	require.Nil(t, res.Score)
}

func TestDryRunner_StopsOnCancel(t *testing.T) {
	r := worker.DryRunner{Delay: time.Hour}
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(worker.ErrHalted)

	_, err := r.Run(ctx, domain.ScanTask{Type: domain.TaskTypeSoakTest})
	require.ErrorIs(t, err, worker.ErrHalted)
}
