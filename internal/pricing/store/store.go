package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/pricing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectRuleColumns = `id, points_per_unit, unit_value, created_at, deleted_at`

func scanRule(s scanner) (*pricing.Rule, error) {
	var r pricing.Rule

	var unitValue string

	if err := s.Scan(&r.ID, &r.PointsPerUnit, &unitValue, &r.CreatedAt, &r.DeletedAt); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(unitValue)
	if err != nil {
		return nil, fmt.Errorf("parsing unit value: %w", err)
	}

	r.UnitValue = value

	return &r, nil
}

func (s *Store) CreateRule(ctx context.Context, rule *pricing.Rule) error {
	query := `
		INSERT INTO price_point_rules (points_per_unit, unit_value, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, rule.PointsPerUnit, rule.UnitValue.String()).
		Scan(&rule.ID, &rule.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	return nil
}

func (s *Store) LatestRule(ctx context.Context) (*pricing.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM price_point_rules
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`

	rule, err := scanRule(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricing.ErrNotFound
		}

		return nil, fmt.Errorf("fetching latest rule: %w", err)
	}

	return rule, nil
}

func (s *Store) GetRule(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM price_point_rules
		WHERE id = $1 AND deleted_at IS NULL`

	rule, err := scanRule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pricing.ErrNotFound
		}

		return nil, fmt.Errorf("getting rule: %w", err)
	}

	return rule, nil
}

func (s *Store) ListRules(ctx context.Context) ([]*pricing.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM price_point_rules
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE price_point_rules
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	return nil
}
