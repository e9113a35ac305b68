package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"benefitd/internal/usage/models"
	"benefitd/pkg/domain"
	"benefitd/pkg/platform/sentinel"
	txcontext "benefitd/pkg/platform/tx"
)

const uniqueViolation = "23505"

// PostgresStore persists usage records keyed by (recipient, period).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, key models.Key) (models.Record, error) {
	var (
		r      models.Record
		height int64
	)
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT electricity, water, gas, recorded_at
		FROM usage_records
		WHERE recipient = $1 AND period = $2
	`, key.Recipient.String(), int64(key.Period)).Scan(&r.Electricity, &r.Water, &r.Gas, &height)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, sentinel.ErrNotFound
		}
		return models.Record{}, fmt.Errorf("find usage record: %w", err)
	}
	r.RecordedAt = domain.Height(height)
	return r, nil
}

func (s *PostgresStore) Create(ctx context.Context, key models.Key, r models.Record) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO usage_records (recipient, period, electricity, water, gas, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (recipient, period) DO NOTHING
	`, key.Recipient.String(), int64(key.Period), r.Electricity, r.Water, r.Gas, int64(r.RecordedAt))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create usage record: %w", err)
	}
	return expectOneRow(res, sentinel.ErrAlreadyUsed)
}

func (s *PostgresStore) Update(ctx context.Context, key models.Key, r models.Record) error {
	res, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		UPDATE usage_records
		SET electricity = $3, water = $4, gas = $5, recorded_at = $6
		WHERE recipient = $1 AND period = $2
	`, key.Recipient.String(), int64(key.Period), r.Electricity, r.Water, r.Gas, int64(r.RecordedAt))
	if err != nil {
		return fmt.Errorf("update usage record: %w", err)
	}
	return expectOneRow(res, sentinel.ErrNotFound)
}

func (s *PostgresStore) LoadThresholds(ctx context.Context) (models.Thresholds, error) {
	var t models.Thresholds
	err := txcontext.Exec(ctx, s.db).QueryRowContext(ctx, `
		SELECT electricity, water, gas FROM usage_thresholds WHERE id = 1
	`).Scan(&t.Electricity, &t.Water, &t.Gas)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Thresholds{}, sentinel.ErrNotFound
		}
		return models.Thresholds{}, fmt.Errorf("load usage thresholds: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) SaveThresholds(ctx context.Context, t models.Thresholds) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO usage_thresholds (id, electricity, water, gas)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			electricity = EXCLUDED.electricity,
			water = EXCLUDED.water,
			gas = EXCLUDED.gas
	`, t.Electricity, t.Water, t.Gas)
	if err != nil {
		return fmt.Errorf("save usage thresholds: %w", err)
	}
	return nil
}

func (s *PostgresStore) SeedThresholds(ctx context.Context, t models.Thresholds) error {
	_, err := txcontext.Exec(ctx, s.db).ExecContext(ctx, `
		INSERT INTO usage_thresholds (id, electricity, water, gas)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`, t.Electricity, t.Water, t.Gas)
	if err != nil {
		return fmt.Errorf("seed usage thresholds: %w", err)
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
