package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/expiry"
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

const selectDefaultColumns = `id, name, expiry_days, active, created_at, updated_at, deleted_at`

func scanDefault(s scanner) (*expiry.Default, error) {
	var d expiry.Default

	if err := s.Scan(&d.ID, &d.Name, &d.ExpiryDays, &d.Active, &d.CreatedAt, &d.UpdatedAt, &d.DeletedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

// CreateDefault inserts the row; activating it deactivates every other row
// in the same transaction so at most one default is ever active.
func (s *Store) CreateDefault(ctx context.Context, def *expiry.Default) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer dbTx.Rollback()

	if def.Active {
		if _, err := dbTx.ExecContext(ctx, `UPDATE points_expiry_defaults SET active = FALSE WHERE active`); err != nil {
			return fmt.Errorf("deactivating defaults: %w", err)
		}
	}

	query := `
		INSERT INTO points_expiry_defaults (name, expiry_days, active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query, def.Name, def.ExpiryDays, def.Active).
		Scan(&def.ID, &def.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expiry default: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

func (s *Store) ActiveDefault(ctx context.Context) (*expiry.Default, error) {
	query := `SELECT ` + selectDefaultColumns + `
		FROM points_expiry_defaults
		WHERE active AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1`

	def, err := scanDefault(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expiry.ErrNotFound
		}

		return nil, fmt.Errorf("fetching active default: %w", err)
	}

	return def, nil
}

func (s *Store) GetDefault(ctx context.Context, id uuid.UUID) (*expiry.Default, error) {
	query := `SELECT ` + selectDefaultColumns + `
		FROM points_expiry_defaults
		WHERE id = $1 AND deleted_at IS NULL`

	def, err := scanDefault(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, expiry.ErrNotFound
		}

		return nil, fmt.Errorf("getting expiry default: %w", err)
	}

	return def, nil
}

func (s *Store) ListDefaults(ctx context.Context) ([]*expiry.Default, error) {
	query := `SELECT ` + selectDefaultColumns + `
		FROM points_expiry_defaults
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expiry defaults: %w", err)
	}
	defer rows.Close()

	var defs []*expiry.Default

	for rows.Next() {
		def, err := scanDefault(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expiry default: %w", err)
		}

		defs = append(defs, def)
	}

	return defs, rows.Err()
}

func (s *Store) UpdateDefault(ctx context.Context, def *expiry.Default) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer dbTx.Rollback()

	if def.Active {
		if _, err := dbTx.ExecContext(ctx, `UPDATE points_expiry_defaults SET active = FALSE WHERE active AND id <> $1`, def.ID); err != nil {
			return fmt.Errorf("deactivating defaults: %w", err)
		}
	}

	query := `
		UPDATE points_expiry_defaults
		SET name = $1, expiry_days = $2, active = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`

	if _, err := dbTx.ExecContext(ctx, query, def.Name, def.ExpiryDays, def.Active, def.ID); err != nil {
		return fmt.Errorf("updating expiry default: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

func (s *Store) DeleteDefault(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE points_expiry_defaults
		SET deleted_at = NOW(), active = FALSE
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expiry default: %w", err)
	}

	return nil
}
