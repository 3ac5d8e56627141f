package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable is returned when no usable connection can be obtained.
var ErrUnavailable = errors.New("database unavailable")

// DBTX is the statement surface shared by connections and transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a connection held for the lifetime of a single request.
type Conn interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
}

type PoolProvider struct {
	pool *pgxpool.Pool
}

func NewPoolProvider(pool *pgxpool.Pool) *PoolProvider {
	return &PoolProvider{pool: pool}
}

func (p *PoolProvider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return conn, nil
}

func (p *PoolProvider) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// InTx runs fn inside a transaction on conn. The transaction is committed
// only when fn returns nil; every other path rolls back.
func InTx(ctx context.Context, conn Conn, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to start transaction: %v", ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
