package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brandloop/loyalty/internal/reward"
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const selectRewardColumns = `
	id, name, description, points_cost, active, created_at, updated_at, deleted_at
`

func scanReward(s scanner) (*reward.Reward, error) {
	var r reward.Reward

	if err := s.Scan(
		&r.ID, &r.Name, &r.Description, &r.PointsCost, &r.Active,
		&r.CreatedAt, &r.UpdatedAt, &r.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Store) CreateReward(ctx context.Context, r *reward.Reward) error {
	query := `
		INSERT INTO rewards (name, description, points_cost, active, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.Name, r.Description, r.PointsCost, r.Active,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return reward.ErrDuplicateName
		}

		return fmt.Errorf("creating reward: %w", err)
	}

	return nil
}

func (s *Store) GetReward(ctx context.Context, id uuid.UUID) (*reward.Reward, error) {
	query := `SELECT ` + selectRewardColumns + `
		FROM rewards
		WHERE id = $1 AND deleted_at IS NULL`

	r, err := scanReward(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reward.ErrNotFound
		}

		return nil, fmt.Errorf("getting reward: %w", err)
	}

	return r, nil
}

func (s *Store) GetRewardByName(ctx context.Context, name string) (*reward.Reward, error) {
	query := `SELECT ` + selectRewardColumns + `
		FROM rewards
		WHERE name = $1 AND deleted_at IS NULL`

	r, err := scanReward(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reward.ErrNotFound
		}

		return nil, fmt.Errorf("getting reward by name: %w", err)
	}

	return r, nil
}

func (s *Store) listRewards(ctx context.Context, query string, args ...any) ([]*reward.Reward, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*reward.Reward

	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reward: %w", err)
		}

		rewards = append(rewards, r)
	}

	return rewards, rows.Err()
}

func (s *Store) ListRewards(ctx context.Context) ([]*reward.Reward, error) {
	query := `SELECT ` + selectRewardColumns + `
		FROM rewards
		WHERE deleted_at IS NULL
		ORDER BY name ASC`

	return s.listRewards(ctx, query)
}

func (s *Store) ListTierRewards(ctx context.Context, tierID uuid.UUID) ([]*reward.Reward, error) {
	query := `SELECT ` + selectRewardColumns + `
		FROM rewards r
		JOIN tier_rewards tr ON tr.reward_id = r.id
		WHERE tr.tier_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.name ASC`

	return s.listRewards(ctx, query, tierID)
}

func (s *Store) UpdateReward(ctx context.Context, r *reward.Reward) error {
	query := `
		UPDATE rewards
		SET name = $1, description = $2, points_cost = $3, active = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		r.Name, r.Description, r.PointsCost, r.Active, r.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return reward.ErrDuplicateName
		}

		return fmt.Errorf("updating reward: %w", err)
	}

	return nil
}

func (s *Store) DeleteReward(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE rewards
		SET deleted_at = NOW(), active = FALSE
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting reward: %w", err)
	}

	return nil
}

// SetRewardTiers replaces the reward's tier linkage wholesale, the way the
// catalog editor submits it.
func (s *Store) SetRewardTiers(ctx context.Context, rewardID uuid.UUID, tierIDs []uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tier link tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tier_rewards WHERE reward_id = $1`, rewardID,
	); err != nil {
		return fmt.Errorf("clearing reward tiers: %w", err)
	}

	for _, tierID := range tierIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tier_rewards (tier_id, reward_id) VALUES ($1, $2)
			 ON CONFLICT (tier_id, reward_id) DO NOTHING`,
			tierID, rewardID,
		); err != nil {
			return fmt.Errorf("linking reward tier: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListRewardTiers(ctx context.Context, rewardID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier_id FROM tier_rewards WHERE reward_id = $1 ORDER BY tier_id`, rewardID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing reward tiers: %w", err)
	}
	defer rows.Close()

	var tierIDs []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning tier id: %w", err)
		}

		tierIDs = append(tierIDs, id)
	}

	return tierIDs, rows.Err()
}

func (s *Store) CreateRedemption(ctx context.Context, r *reward.Redemption) error {
	query := `
		INSERT INTO redemptions (id, reward_id, customer_id, entry_id, location_id, points_spent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.ID, r.RewardID, r.CustomerID, r.EntryID, r.LocationID, r.PointsSpent,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating redemption: %w", err)
	}

	return nil
}

func (s *Store) CountRewardRedemptions(ctx context.Context, rewardID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM redemptions WHERE reward_id = $1`, rewardID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting redemptions: %w", err)
	}

	return count, nil
}

func (s *Store) ListCustomerRedemptions(ctx context.Context, customerID uuid.UUID) ([]*reward.Redemption, error) {
	query := `
		SELECT id, reward_id, customer_id, entry_id, location_id, points_spent, created_at
		FROM redemptions
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []*reward.Redemption

	for rows.Next() {
		var r reward.Redemption
		if err := rows.Scan(
			&r.ID, &r.RewardID, &r.CustomerID, &r.EntryID,
			&r.LocationID, &r.PointsSpent, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning redemption: %w", err)
		}

		redemptions = append(redemptions, &r)
	}

	return redemptions, rows.Err()
}
