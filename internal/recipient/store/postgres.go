package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"benefitd/internal/recipient/models"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
	txcontext "benefitd/pkg/platform/tx"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// PostgresStore persists recipients and criteria.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, identity domain.Principal) (*models.Recipient, error) {
	var (
		r      models.Recipient
		id     string
		height int64
	)
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT identity, is_eligible, income_level, household_size, last_verified_at
		FROM recipients
		WHERE identity = $1
	`, identity.String()).Scan(&id, &r.IsEligible, &r.IncomeLevel, &r.HouseholdSize, &height)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find recipient: %w", err)
	}
	r.Identity = domain.Principal(id)
	r.LastVerifiedAt = domain.Height(height)
	return &r, nil
}

func (s *PostgresStore) Create(ctx context.Context, r *models.Recipient) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO recipients (identity, is_eligible, income_level, household_size, last_verified_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (identity) DO NOTHING
	`, r.Identity.String(), r.IsEligible, r.IncomeLevel, r.HouseholdSize, int64(r.LastVerifiedAt))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create recipient: %w", err)
	}
	return expectOneRow(res, sentinel.ErrAlreadyUsed)
}

func (s *PostgresStore) Update(ctx context.Context, r *models.Recipient) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		UPDATE recipients
		SET is_eligible = $2, income_level = $3, household_size = $4, last_verified_at = $5
		WHERE identity = $1
	`, r.Identity.String(), r.IsEligible, r.IncomeLevel, r.HouseholdSize, int64(r.LastVerifiedAt))
	if err != nil {
		return fmt.Errorf("update recipient: %w", err)
	}
	return expectOneRow(res, sentinel.ErrNotFound)
}

func (s *PostgresStore) Delete(ctx context.Context, identity domain.Principal) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `DELETE FROM recipients WHERE identity = $1`, identity.String())
	if err != nil {
		return fmt.Errorf("delete recipient: %w", err)
	}
	return expectOneRow(res, sentinel.ErrNotFound)
}

func (s *PostgresStore) LoadCriteria(ctx context.Context) (models.Criteria, error) {
	var c models.Criteria
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT income_threshold, household_multiplier
		FROM eligibility_criteria
		WHERE id = 1
	`).Scan(&c.IncomeThreshold, &c.HouseholdMultiplier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Criteria{}, sentinel.ErrNotFound
		}
		return models.Criteria{}, fmt.Errorf("load eligibility criteria: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) SaveCriteria(ctx context.Context, c models.Criteria) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO eligibility_criteria (id, income_threshold, household_multiplier)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			income_threshold = EXCLUDED.income_threshold,
			household_multiplier = EXCLUDED.household_multiplier
	`, c.IncomeThreshold, c.HouseholdMultiplier)
	if err != nil {
		return fmt.Errorf("save eligibility criteria: %w", err)
	}
	return nil
}

func (s *PostgresStore) SeedCriteria(ctx context.Context, c models.Criteria) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO eligibility_criteria (id, income_threshold, household_multiplier)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, c.IncomeThreshold, c.HouseholdMultiplier)
	if err != nil {
		return fmt.Errorf("seed eligibility criteria: %w", err)
	}
	return nil
}

func expectOneRow(res sql.Result, none error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return none
	}
	return nil
}
