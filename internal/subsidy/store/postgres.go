package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"benefitd/internal/subsidy/models"
	"benefitd/pkg/platform/sentinel"
	txcontext "benefitd/pkg/platform/tx"
)

// PostgresStore keeps the parameters in the single-row subsidy_parameters table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) (models.Parameters, error) {
	var p models.Parameters
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT base_subsidy, income_factor, household_bonus, max_subsidy
		FROM subsidy_parameters
		WHERE id = 1
	`).Scan(&p.BaseSubsidy, &p.IncomeFactor, &p.HouseholdBonus, &p.MaxSubsidy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Parameters{}, sentinel.ErrNotFound
		}
		return models.Parameters{}, fmt.Errorf("load subsidy parameters: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Save(ctx context.Context, p models.Parameters) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO subsidy_parameters (id, base_subsidy, income_factor, household_bonus, max_subsidy)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			base_subsidy = EXCLUDED.base_subsidy,
			income_factor = EXCLUDED.income_factor,
			household_bonus = EXCLUDED.household_bonus,
			max_subsidy = EXCLUDED.max_subsidy
	`, p.BaseSubsidy, p.IncomeFactor, p.HouseholdBonus, p.MaxSubsidy)
	if err != nil {
		return fmt.Errorf("save subsidy parameters: %w", err)
	}
	return nil
}

func (s *PostgresStore) Seed(ctx context.Context, p models.Parameters) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO subsidy_parameters (id, base_subsidy, income_factor, household_bonus, max_subsidy)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, p.BaseSubsidy, p.IncomeFactor, p.HouseholdBonus, p.MaxSubsidy)
	if err != nil {
		return fmt.Errorf("seed subsidy parameters: %w", err)
	}
	return nil
}
