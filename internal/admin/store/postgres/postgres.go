package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"benefitd/internal/admin"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
	txcontext "benefitd/pkg/platform/tx"
)

// Store persists admins in the module_admins table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Find reads the admin. Inside a transaction the row is locked, which
// serializes every guarded mutation of the scope until commit.
func (s *Store) Find(ctx context.Context, scope admin.Scope) (domain.Principal, error) {
	query := `SELECT admin FROM module_admins WHERE scope = $1`
	if txcontext.InTx(ctx) {
		query += ` FOR UPDATE`
	}
	var p string
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, query, string(scope)).Scan(&p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("find admin: %w", err)
	}
	return domain.Principal(p), nil
}

func (s *Store) Save(ctx context.Context, scope admin.Scope, p domain.Principal) error {
	query := `
		INSERT INTO module_admins (scope, admin, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (scope) DO UPDATE SET
			admin = EXCLUDED.admin,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query, string(scope), p.String()); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	return nil
}

func (s *Store) Seed(ctx context.Context, scope admin.Scope, p domain.Principal) error {
	query := `
		INSERT INTO module_admins (scope, admin)
		VALUES ($1, $2)
		ON CONFLICT (scope) DO NOTHING
	`
	if _, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, query, string(scope), p.String()); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
