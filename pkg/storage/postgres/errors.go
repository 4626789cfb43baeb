package postgres

import (
	"errors"
	"fmt"
	"scanguard/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError tags postgres errors the callers need to react to with the matching
// storage sentinel, keeping the original error in the chain.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("%w: %w", storage.ErrSerialization, err)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", storage.ErrDuplicate, err)
	default:
		return err
	}
}
