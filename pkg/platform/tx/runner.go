package tx

import (
	"context"
	"database/sql"
	"sync"
	"time"

	dErrors "benefitd/pkg/domain-errors"
)

// DefaultTimeout bounds a transaction when the caller's context has no deadline.
const DefaultTimeout = 5 * time.Second

// Runner applies fn as one atomic unit. Stores reached through the context
// passed to fn participate in the same unit.
type Runner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MutexRunner serializes every unit behind one lock. It backs in-memory
// stores, where a failed fn must not leave partial writes, so services
// validate everything before the first store mutation.
type MutexRunner struct {
	mu      sync.Mutex
	timeout time.Duration
}

func NewMutexRunner() *MutexRunner {
	return &MutexRunner{timeout: DefaultTimeout}
}

func (r *MutexRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	ctx, cancel := withDefaultTimeout(ctx, r.timeout)
	defer cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}

// SQLRunner opens a database transaction and exposes it to stores via WithTx.
type SQLRunner struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLRunner(db *sql.DB) *SQLRunner {
	return &SQLRunner{db: db, timeout: DefaultTimeout}
}

func (r *SQLRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	ctx, cancel := withDefaultTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to commit transaction")
	}
	return nil
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
