package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"solarys/internal/repositories"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
)

const foreignKeyViolation = "23503"

// translate maps storage errors onto the service sentinels.
func translate(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
	}
	return err
}
