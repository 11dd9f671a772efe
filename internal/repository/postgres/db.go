package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the trip repositories need. *sql.Tx
// satisfies it too, so a future batched import can run inside a transaction
// without touching the repositories.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
