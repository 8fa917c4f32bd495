package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/challenge"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type scanner interface {
	Scan(dest ...any) error
}

const selectChallengeColumns = `
	id, name, description, type, required_amount, required_purchases, duration_days,
	customer_usage, channel, bonus_points, bonus_percent, start_at, end_at, active,
	created_at, updated_at, deleted_at
`

func scanChallenge(s scanner) (*challenge.Challenge, error) {
	var c challenge.Challenge

	var typeStr, channelStr, requiredAmount, bonusPercent string

	if err := s.Scan(
		&c.ID, &c.Name, &c.Description, &typeStr, &requiredAmount, &c.RequiredPurchases,
		&c.DurationDays, &c.CustomerUsage, &channelStr, &c.BonusPoints, &bonusPercent,
		&c.StartAt, &c.EndAt, &c.Active, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	c.Type = challenge.Type(typeStr)
	c.Channel = challenge.Channel(channelStr)

	amount, err := decimal.NewFromString(requiredAmount)
	if err != nil {
		return nil, fmt.Errorf("parsing required amount: %w", err)
	}

	c.RequiredAmount = amount

	percent, err := decimal.NewFromString(bonusPercent)
	if err != nil {
		return nil, fmt.Errorf("parsing bonus percent: %w", err)
	}

	c.BonusPercent = percent

	return &c, nil
}

func (s *Store) CreateChallenge(ctx context.Context, c *challenge.Challenge) error {
	query := `
		INSERT INTO challenges (name, description, type, required_amount, required_purchases, duration_days, customer_usage, channel, bonus_points, bonus_percent, start_at, end_at, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.Description,
		c.Type,
		c.RequiredAmount.String(),
		c.RequiredPurchases,
		c.DurationDays,
		c.CustomerUsage,
		c.Channel,
		c.BonusPoints,
		c.BonusPercent.String(),
		c.StartAt,
		c.EndAt,
		c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating challenge: %w", err)
	}

	return nil
}

func (s *Store) GetChallenge(ctx context.Context, id uuid.UUID) (*challenge.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + `
		FROM challenges
		WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanChallenge(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, challenge.ErrNotFound
		}

		return nil, fmt.Errorf("getting challenge: %w", err)
	}

	return c, nil
}

func (s *Store) listChallenges(ctx context.Context, query string, args ...any) ([]*challenge.Challenge, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*challenge.Challenge

	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning challenge: %w", err)
		}

		challenges = append(challenges, c)
	}

	return challenges, rows.Err()
}

func (s *Store) ListChallenges(ctx context.Context) ([]*challenge.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + `
		FROM challenges
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	return s.listChallenges(ctx, query)
}

// ListActiveChallenges returns active, non-deleted challenges whose window
// (when set) contains the given instant.
func (s *Store) ListActiveChallenges(ctx context.Context, at time.Time) ([]*challenge.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + `
		FROM challenges
		WHERE active AND deleted_at IS NULL
		  AND (start_at IS NULL OR start_at <= $1)
		  AND (end_at IS NULL OR end_at >= $1)
		ORDER BY created_at ASC`

	return s.listChallenges(ctx, query, at)
}

func (s *Store) ActiveChallengeByType(ctx context.Context, t challenge.Type) (*challenge.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + `
		FROM challenges
		WHERE type = $1 AND active AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`

	c, err := scanChallenge(s.db.QueryRowContext(ctx, query, t))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, challenge.ErrNotFound
		}

		return nil, fmt.Errorf("getting active challenge by type: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateChallenge(ctx context.Context, c *challenge.Challenge) error {
	query := `
		UPDATE challenges
		SET name = $1, description = $2, required_amount = $3, customer_usage = $4,
		    channel = $5, bonus_points = $6, start_at = $7, end_at = $8, active = $9,
		    updated_at = NOW()
		WHERE id = $10 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Description,
		c.RequiredAmount.String(),
		c.CustomerUsage,
		c.Channel,
		c.BonusPoints,
		c.StartAt,
		c.EndAt,
		c.Active,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating challenge: %w", err)
	}

	return nil
}

func (s *Store) DeleteChallenge(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE challenges
		SET deleted_at = NOW(), active = FALSE
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting challenge: %w", err)
	}

	return nil
}

const selectParticipantColumns = `
	id, challenge_id, customer_id, progress_count, completed, completed_at, created_at, updated_at
`

func scanParticipant(s scanner) (*challenge.Participant, error) {
	var p challenge.Participant

	var completed int16

	if err := s.Scan(
		&p.ID, &p.ChallengeID, &p.CustomerID, &p.ProgressCount, &completed,
		&p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Completed = completed == 1

	return &p, nil
}

func (s *Store) CreateParticipant(ctx context.Context, p *challenge.Participant) error {
	completed := 0
	if p.Completed {
		completed = 1
	}

	query := `
		INSERT INTO challenge_participants (challenge_id, customer_id, progress_count, completed, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.ChallengeID,
		p.CustomerID,
		p.ProgressCount,
		completed,
		p.CompletedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return challenge.ErrAlreadyEnrolled
		}

		return fmt.Errorf("creating participant: %w", err)
	}

	return nil
}

func (s *Store) GetParticipant(ctx context.Context, challengeID, customerID uuid.UUID) (*challenge.Participant, error) {
	query := `SELECT ` + selectParticipantColumns + `
		FROM challenge_participants
		WHERE challenge_id = $1 AND customer_id = $2`

	p, err := scanParticipant(s.db.QueryRowContext(ctx, query, challengeID, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, challenge.ErrParticipantNotFound
		}

		return nil, fmt.Errorf("getting participant: %w", err)
	}

	return p, nil
}

// IncrementProgress bumps progress by one, guarded by completed = 0 so a
// completed participant can never move again.
func (s *Store) IncrementProgress(ctx context.Context, challengeID, customerID uuid.UUID) (*challenge.Participant, error) {
	query := `
		UPDATE challenge_participants
		SET progress_count = progress_count + 1, updated_at = NOW()
		WHERE challenge_id = $1 AND customer_id = $2 AND completed = 0
		RETURNING ` + selectParticipantColumns

	p, err := scanParticipant(s.db.QueryRowContext(ctx, query, challengeID, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either not enrolled or already completed; look to tell apart.
			if _, getErr := s.GetParticipant(ctx, challengeID, customerID); getErr != nil {
				return nil, getErr
			}

			return nil, challenge.ErrAlreadyCompleted
		}

		return nil, fmt.Errorf("incrementing progress: %w", err)
	}

	return p, nil
}

// CompleteParticipant marks the participant completed and reports whether
// this call made the 0 -> 1 transition. The conditional update is what keeps
// the completion bonus single-shot under concurrent evaluation.
func (s *Store) CompleteParticipant(ctx context.Context, challengeID, customerID uuid.UUID) (bool, error) {
	query := `
		UPDATE challenge_participants
		SET completed = 1, completed_at = NOW(), updated_at = NOW()
		WHERE challenge_id = $1 AND customer_id = $2 AND completed = 0
	`

	res, err := s.db.ExecContext(ctx, query, challengeID, customerID)
	if err != nil {
		return false, fmt.Errorf("completing participant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("completing participant: %w", err)
	}

	return affected > 0, nil
}

func (s *Store) ListCustomerParticipants(ctx context.Context, customerID uuid.UUID) ([]*challenge.Participant, error) {
	query := `SELECT ` + selectParticipantColumns + `
		FROM challenge_participants
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	defer rows.Close()

	var participants []*challenge.Participant

	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}

		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func (s *Store) ChallengeStats(ctx context.Context, challengeID uuid.UUID) (*challenge.Stats, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE completed = 1)
		FROM challenge_participants
		WHERE challenge_id = $1
	`

	var stats challenge.Stats
	if err := s.db.QueryRowContext(ctx, query, challengeID).Scan(&stats.Participants, &stats.Completed); err != nil {
		return nil, fmt.Errorf("computing challenge stats: %w", err)
	}

	return &stats, nil
}
