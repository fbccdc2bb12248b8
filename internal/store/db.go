package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX abstracts the database access layer. It is implemented by both
// *pgxpool.Pool and pgx.Tx, allowing store code to run against a pooled
// connection or inside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner starts transactions. *pgxpool.Pool implements it by acquiring a
// connection from the pool for the duration of the transaction.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
