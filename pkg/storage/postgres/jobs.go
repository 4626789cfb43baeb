package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// errNoJobClient is returned by AddJob on a PgSQL not created by New.
var errNoJobClient = errors.New("job client is not configured")

// newJobClient creates an insert-only River client. It has no queues or
// workers, so it never fetches jobs; executing them is the worker's business.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx, so it becomes visible only when the surrounding transaction
// commits; a run and the job executing it are stored together or not at all.
//
// The returned flag is false when the job's unique options matched an existing
// job and nothing was inserted.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, errNoJobClient
	}

	var (
		skipped bool
		err     error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, insertErr := p.jobs.InsertTx(ctx, tx, args, opts)
		if res != nil {
			skipped = res.UniqueSkippedAsDuplicate
		}
		err = insertErr
	} else {
		res, insertErr := p.jobs.Insert(ctx, args, opts)
		if res != nil {
			skipped = res.UniqueSkippedAsDuplicate
		}
		err = insertErr
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), mapError(err))
	}

	return !skipped, nil
}
