package tx

import (
	"context"
	"database/sql"
)

// Executor is what Postgres stores issue statements through: the
// transaction opened by SQLRunner, or the pool outside of one.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ctxKey struct{}

// WithTx attaches tx to ctx. A nil tx leaves ctx unchanged.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, tx)
}

// From returns the transaction attached to ctx, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return tx, ok
}

// InTx reports whether ctx carries a transaction. Stores use it to add row
// locks that only make sense inside one.
func InTx(ctx context.Context) bool {
	_, ok := From(ctx)
	return ok
}

// Exec picks the executor for ctx: its transaction when present, else db.
func Exec(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := From(ctx); ok {
		return tx
	}
	return db
}
