package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/tier"
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

const selectTierColumns = `
	id, name, description, threshold, display_order, active, created_at, updated_at, deleted_at
`

func scanTier(s scanner) (*tier.Tier, error) {
	var t tier.Tier

	if err := s.Scan(
		&t.ID, &t.Name, &t.Description, &t.Threshold, &t.DisplayOrder,
		&t.Active, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Store) CreateTier(ctx context.Context, t *tier.Tier) error {
	query := `
		INSERT INTO tiers (name, description, threshold, display_order, active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.Name, t.Description, t.Threshold, t.DisplayOrder, t.Active,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tier: %w", err)
	}

	return nil
}

func (s *Store) GetTier(ctx context.Context, id uuid.UUID) (*tier.Tier, error) {
	query := `SELECT ` + selectTierColumns + `
		FROM tiers
		WHERE id = $1 AND deleted_at IS NULL`

	t, err := scanTier(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tier.ErrNotFound
		}

		return nil, fmt.Errorf("getting tier: %w", err)
	}

	return t, nil
}

func (s *Store) GetTierByThreshold(ctx context.Context, threshold int64) (*tier.Tier, error) {
	query := `SELECT ` + selectTierColumns + `
		FROM tiers
		WHERE threshold = $1 AND deleted_at IS NULL
		ORDER BY id ASC
		LIMIT 1`

	t, err := scanTier(s.db.QueryRowContext(ctx, query, threshold))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tier.ErrNotFound
		}

		return nil, fmt.Errorf("getting tier by threshold: %w", err)
	}

	return t, nil
}

func (s *Store) listTiers(ctx context.Context, query string, args ...any) ([]*tier.Tier, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tiers: %w", err)
	}
	defer rows.Close()

	var tiers []*tier.Tier

	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tier: %w", err)
		}

		tiers = append(tiers, t)
	}

	return tiers, rows.Err()
}

func (s *Store) ListTiers(ctx context.Context) ([]*tier.Tier, error) {
	query := `SELECT ` + selectTierColumns + `
		FROM tiers
		WHERE deleted_at IS NULL
		ORDER BY display_order ASC`

	return s.listTiers(ctx, query)
}

func (s *Store) ListActiveTiers(ctx context.Context) ([]*tier.Tier, error) {
	query := `SELECT ` + selectTierColumns + `
		FROM tiers
		WHERE active AND deleted_at IS NULL
		ORDER BY threshold DESC`

	return s.listTiers(ctx, query)
}

func (s *Store) UpdateTier(ctx context.Context, t *tier.Tier) error {
	query := `
		UPDATE tiers
		SET name = $1, description = $2, threshold = $3, display_order = $4, active = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		t.Name, t.Description, t.Threshold, t.DisplayOrder, t.Active, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tier: %w", err)
	}

	return nil
}

func (s *Store) DeleteTier(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tiers
		SET deleted_at = NOW(), active = FALSE
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting tier: %w", err)
	}

	return nil
}

func (s *Store) CountTierCustomers(ctx context.Context, tierID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM customer_tiers WHERE tier_id = $1`, tierID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting tier customers: %w", err)
	}

	return count, nil
}

// AssignTier is idempotent: reconciliation may run twice for the same
// balance and the second insert is a no-op.
func (s *Store) AssignTier(ctx context.Context, tierID, customerID uuid.UUID) error {
	query := `
		INSERT INTO customer_tiers (tier_id, customer_id, assigned_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tier_id, customer_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, tierID, customerID)
	if err != nil {
		return fmt.Errorf("assigning tier: %w", err)
	}

	return nil
}

func (s *Store) RemoveTiersBelow(ctx context.Context, customerID uuid.UUID, threshold int64) error {
	query := `
		DELETE FROM customer_tiers ct
		USING tiers t
		WHERE ct.tier_id = t.id AND ct.customer_id = $1 AND t.threshold < $2
	`

	_, err := s.db.ExecContext(ctx, query, customerID, threshold)
	if err != nil {
		return fmt.Errorf("removing lower tiers: %w", err)
	}

	return nil
}

func (s *Store) ListCustomerTiers(ctx context.Context, customerID uuid.UUID) ([]*tier.Assignment, error) {
	query := `
		SELECT ct.id, ct.tier_id, ct.customer_id, ct.assigned_at,
		       t.id, t.name, t.description, t.threshold, t.display_order, t.active, t.created_at, t.updated_at, t.deleted_at
		FROM customer_tiers ct
		JOIN tiers t ON ct.tier_id = t.id
		WHERE ct.customer_id = $1
		ORDER BY t.threshold DESC
	`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer tiers: %w", err)
	}
	defer rows.Close()

	var assignments []*tier.Assignment

	for rows.Next() {
		var a tier.Assignment

		var t tier.Tier

		if err := rows.Scan(
			&a.ID, &a.TierID, &a.CustomerID, &a.AssignedAt,
			&t.ID, &t.Name, &t.Description, &t.Threshold, &t.DisplayOrder,
			&t.Active, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning customer tier: %w", err)
		}

		a.Tier = &t
		assignments = append(assignments, &a)
	}

	return assignments, rows.Err()
}
