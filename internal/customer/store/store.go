package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brandloop/loyalty/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCustomerColumns = `
	id, email, full_name, profile_completed, created_at, updated_at, deleted_at
`

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	if err := s.Scan(
		&c.ID, &c.Email, &c.FullName, &c.ProfileCompleted,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (email, full_name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, c.Email, c.FullName).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return customer.ErrDuplicateEmail
		}

		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers
		WHERE id = $1 AND deleted_at IS NULL`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return c, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers
		WHERE email = $1 AND deleted_at IS NULL`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer by email: %w", err)
	}

	return c, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT ` + selectCustomerColumns + `
		FROM customers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET email = $1, full_name = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, c.Email, c.FullName, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return customer.ErrDuplicateEmail
		}

		return fmt.Errorf("updating customer: %w", err)
	}

	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE customers
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}

func (s *Store) GetMeasurement(ctx context.Context, customerID uuid.UUID) (*customer.Measurement, error) {
	query := `
		SELECT customer_id, length, width, waist, hip, created_at, updated_at
		FROM customer_measurements
		WHERE customer_id = $1
	`

	var m customer.Measurement

	err := s.db.QueryRowContext(ctx, query, customerID).Scan(
		&m.CustomerID, &m.Length, &m.Width, &m.Waist, &m.Hip,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting measurement: %w", err)
	}

	return &m, nil
}

func (s *Store) UpsertMeasurement(ctx context.Context, m *customer.Measurement) error {
	query := `
		INSERT INTO customer_measurements (customer_id, length, width, waist, hip, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (customer_id) DO UPDATE
		SET length = EXCLUDED.length, width = EXCLUDED.width,
		    waist = EXCLUDED.waist, hip = EXCLUDED.hip, updated_at = NOW()
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		m.CustomerID, m.Length, m.Width, m.Waist, m.Hip,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting measurement: %w", err)
	}

	return nil
}

// MarkProfileCompleted flips profile_completed once. The WHERE clause makes
// the transition observable by exactly one caller when saves race.
func (s *Store) MarkProfileCompleted(ctx context.Context, customerID uuid.UUID) (bool, error) {
	query := `
		UPDATE customers
		SET profile_completed = TRUE, updated_at = NOW()
		WHERE id = $1 AND profile_completed = FALSE AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, customerID)
	if err != nil {
		return false, fmt.Errorf("marking profile completed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking profile completed: %w", err)
	}

	return affected > 0, nil
}
