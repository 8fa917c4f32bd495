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

	"github.com/brandloop/loyalty/internal/ledger"
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

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEntryColumns = `
	id, customer_id, points, type, reference_id, challenge_id, location_id,
	order_amount, note, expiry_date, created_at
`

func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	var typeStr string

	var refID, note, orderAmount sql.NullString

	if err := s.Scan(
		&e.ID, &e.CustomerID, &e.Points, &typeStr, &refID, &e.ChallengeID,
		&e.LocationID, &orderAmount, &note, &e.ExpiryDate, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.Type = ledger.EntryType(typeStr)
	e.ReferenceID = refID.String
	e.Note = note.String

	if orderAmount.Valid {
		amount, err := decimal.NewFromString(orderAmount.String)
		if err != nil {
			return nil, fmt.Errorf("parsing order amount: %w", err)
		}

		e.OrderAmount = &amount
	}

	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: d.String(), Valid: true}
}

const insertEntryQuery = `
	INSERT INTO ledger_entries (customer_id, points, type, reference_id, challenge_id, location_id, order_amount, note, expiry_date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	RETURNING id, created_at
`

func insertEntry(ctx context.Context, q interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, e *ledger.Entry,
) error {
	return q.QueryRowContext(ctx, insertEntryQuery,
		e.CustomerID,
		e.Points,
		e.Type,
		nullString(e.ReferenceID),
		e.ChallengeID,
		e.LocationID,
		nullDecimal(e.OrderAmount),
		nullString(e.Note),
		e.ExpiryDate,
	).Scan(&e.ID, &e.CreatedAt)
}

// CreateCredit inserts the entry and its expiry batch in one transaction.
// An entry without its batch, or the reverse, would break the balance
// invariant, so neither is ever visible alone.
func (s *Store) CreateCredit(ctx context.Context, entry *ledger.Entry, batch *ledger.Batch) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning credit tx: %w", err)
	}
	defer dbTx.Rollback()

	if err := insertEntry(ctx, dbTx, entry); err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicateReference
		}

		return fmt.Errorf("creating credit entry: %w", err)
	}

	batch.TransactionID = entry.ID

	batchQuery := `
		INSERT INTO expiry_batches (customer_id, transaction_id, points_allocated, points_remaining, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, batchQuery,
		batch.CustomerID,
		batch.TransactionID,
		batch.PointsAllocated,
		batch.PointsRemaining,
		batch.ExpiresAt,
	).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expiry batch: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing credit: %w", err)
	}

	return nil
}

func (s *Store) FindEntryByReference(ctx context.Context, referenceID string) (*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM ledger_entries WHERE reference_id = $1`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("finding entry by reference: %w", err)
	}

	return entry, nil
}

func (s *Store) ListEntries(ctx context.Context, customerID uuid.UUID) ([]*ledger.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM ledger_entries
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

const selectBatchColumns = `
	id, customer_id, transaction_id, points_allocated, points_remaining, expires_at, created_at
`

func scanBatch(s scanner) (*ledger.Batch, error) {
	var b ledger.Batch

	if err := s.Scan(
		&b.ID, &b.CustomerID, &b.TransactionID, &b.PointsAllocated,
		&b.PointsRemaining, &b.ExpiresAt, &b.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) ListBatches(ctx context.Context, customerID uuid.UUID) ([]*ledger.Batch, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM expiry_batches
		WHERE customer_id = $1
		ORDER BY expires_at ASC`

	rows, err := s.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}
	defer rows.Close()

	var batches []*ledger.Batch

	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}

		batches = append(batches, batch)
	}

	return batches, rows.Err()
}

func (s *Store) SumAvailable(ctx context.Context, customerID uuid.UUID, asOf time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(points_remaining), 0)
		FROM expiry_batches
		WHERE customer_id = $1 AND expires_at > $2
	`

	var sum int64
	if err := s.db.QueryRowContext(ctx, query, customerID, asOf).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing available points: %w", err)
	}

	return sum, nil
}

type debitTx struct {
	tx *sql.Tx
}

// BeginDebit opens a serializable transaction so a debit's
// read-plan-consume sequence cannot interleave with another debit for the
// same customer and overdraw the balance.
func (s *Store) BeginDebit(ctx context.Context, customerID uuid.UUID) (ledger.DebitTx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("beginning debit tx: %w", err)
	}

	return &debitTx{tx: dbTx}, nil
}

func (t *debitTx) Commit() error   { return t.tx.Commit() }
func (t *debitTx) Rollback() error { return t.tx.Rollback() }

func (t *debitTx) LockBatches(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*ledger.Batch, error) {
	query := `SELECT ` + selectBatchColumns + `
		FROM expiry_batches
		WHERE customer_id = $1 AND expires_at > $2 AND points_remaining > 0
		ORDER BY expires_at ASC
		FOR UPDATE`

	rows, err := t.tx.QueryContext(ctx, query, customerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("locking batches: %w", err)
	}
	defer rows.Close()

	var batches []*ledger.Batch

	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}

		batches = append(batches, batch)
	}

	return batches, rows.Err()
}

func (t *debitTx) ApplyConsumptions(ctx context.Context, consumptions []ledger.Consumption) error {
	query := `
		UPDATE expiry_batches
		SET points_remaining = points_remaining - $1
		WHERE id = $2 AND points_remaining >= $1
	`

	for _, c := range consumptions {
		res, err := t.tx.ExecContext(ctx, query, c.Points, c.BatchID)
		if err != nil {
			return fmt.Errorf("consuming batch %s: %w", c.BatchID, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("consuming batch %s: %w", c.BatchID, err)
		}

		if affected == 0 {
			return fmt.Errorf("batch %s changed underneath the debit: %w", c.BatchID, ledger.ErrInsufficientPoints)
		}
	}

	return nil
}

func (t *debitTx) CreateEntry(ctx context.Context, entry *ledger.Entry) error {
	if err := insertEntry(ctx, t.tx, entry); err != nil {
		if isUniqueViolation(err) {
			return ledger.ErrDuplicateReference
		}

		return fmt.Errorf("creating entry: %w", err)
	}

	return nil
}

// ExpireBatches zeroes expired batches and records a matching expiry entry
// for each. The conditional points_remaining > 0 guard makes the sweep
// idempotent and safe to run from several workers at once; SKIP LOCKED keeps
// it from stalling behind in-flight debits.
func (s *Store) ExpireBatches(ctx context.Context, asOf time.Time) (int, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning sweep tx: %w", err)
	}
	defer dbTx.Rollback()

	query := `SELECT ` + selectBatchColumns + `
		FROM expiry_batches
		WHERE expires_at <= $1 AND points_remaining > 0
		ORDER BY expires_at ASC
		FOR UPDATE SKIP LOCKED`

	rows, err := dbTx.QueryContext(ctx, query, asOf)
	if err != nil {
		return 0, fmt.Errorf("selecting expired batches: %w", err)
	}

	var batches []*ledger.Batch

	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			rows.Close()
			return 0, fmt.Errorf("scanning batch: %w", err)
		}

		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("iterating expired batches: %w", err)
	}

	rows.Close()

	zeroQuery := `
		UPDATE expiry_batches
		SET points_remaining = 0
		WHERE id = $1 AND points_remaining > 0
	`

	for _, batch := range batches {
		if _, err := dbTx.ExecContext(ctx, zeroQuery, batch.ID); err != nil {
			return 0, fmt.Errorf("zeroing batch %s: %w", batch.ID, err)
		}

		entry := &ledger.Entry{
			CustomerID: batch.CustomerID,
			Points:     -batch.PointsRemaining,
			Type:       ledger.TypeExpiry,
			Note:       fmt.Sprintf("Points expired from batch %s", batch.ID),
		}

		if err := insertEntry(ctx, dbTx, entry); err != nil {
			return 0, fmt.Errorf("recording expiry entry: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("committing sweep: %w", err)
	}

	return len(batches), nil
}
