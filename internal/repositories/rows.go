package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/metrics"
)

// ErrNotFound is returned when a statement keyed on an id matches no row.
var ErrNotFound = errors.New("record not found")

func queryAll[T any](ctx context.Context, db database.DBTX, table, query string, args ...any) ([]T, error) {
	defer observe("select", table, time.Now())

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func queryOne[T any](ctx context.Context, db database.DBTX, operation, table, query string, args ...any) (*T, error) {
	defer observe(operation, table, time.Now())

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func execAffectingOne(ctx context.Context, db database.DBTX, operation, table, query string, args ...any) error {
	defer observe(operation, table, time.Now())

	result, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func observe(operation, table string, start time.Time) {
	metrics.RecordDBQueryDuration(operation, table, time.Since(start))
}
