package repository

import (
	"context"
	"errors"
	"fmt"

	"railway-booking/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the reservation path cares about.
const (
	pgCodeUniqueViolation  = "23505"
	pgCodeLockNotAvailable = "55P03"
	pgCodeQueryCanceled    = "57014"
	pgClassConnection      = "08"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}

// storageError classifies a database failure: lock timeouts, cancellations
// and connection drops are transient (the whole operation is safe to retry
// since nothing was committed); everything else is wrapped as-is.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.TransientStorage(op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := pgErr.Code
		if code == pgCodeLockNotAvailable || code == pgCodeQueryCanceled || (len(code) >= 2 && code[:2] == pgClassConnection) {
			return apperror.TransientStorage(op, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
