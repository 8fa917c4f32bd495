package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateCredit(ctx context.Context, entry *Entry, batch *Batch) error
	FindEntryByReference(ctx context.Context, referenceID string) (*Entry, error)
	ListEntries(ctx context.Context, customerID uuid.UUID) ([]*Entry, error)
	ListBatches(ctx context.Context, customerID uuid.UUID) ([]*Batch, error)
	SumAvailable(ctx context.Context, customerID uuid.UUID, asOf time.Time) (int64, error)
	ExpireBatches(ctx context.Context, asOf time.Time) (int, error)

	BeginDebit(ctx context.Context, customerID uuid.UUID) (DebitTx, error)
}

// DebitTx is a single debit's transaction: batches are read under row locks
// so two concurrent debits cannot both observe sufficient balance.
type DebitTx interface {
	LockBatches(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]*Batch, error)
	ApplyConsumptions(ctx context.Context, consumptions []Consumption) error
	CreateEntry(ctx context.Context, entry *Entry) error
	Commit() error
	Rollback() error
}

// Consumption records how many points a debit takes from one batch.
type Consumption struct {
	BatchID uuid.UUID
	Points  int64
}

// ExpiryConfig supplies the default lifetime for newly credited points.
type ExpiryConfig interface {
	ActiveExpiryDays(ctx context.Context) (int, error)
}

type Service struct {
	repo   Repository
	expiry ExpiryConfig
}

func NewService(repo Repository, expiry ExpiryConfig) *Service {
	return &Service{repo: repo, expiry: expiry}
}

type CreditParams struct {
	CustomerID  uuid.UUID
	Points      int64
	Type        EntryType
	ReferenceID string
	ChallengeID *uuid.UUID
	LocationID  *uuid.UUID
	OrderAmount *decimal.Decimal
	Note        string
	ExpiryDays  int // 0 means use the configured default
}

// Credit records a point credit and its expiry batch atomically. A non-empty
// ReferenceID that was already recorded fails with ErrDuplicateReference.
func (s *Service) Credit(ctx context.Context, params CreditParams) (*Entry, error) {
	if params.Points <= 0 {
		return nil, fmt.Errorf("credit of %d points: %w", params.Points, ErrInvalidAmount)
	}

	expiryDays := params.ExpiryDays
	if expiryDays == 0 {
		days, err := s.expiry.ActiveExpiryDays(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving expiry default: %w", err)
		}

		expiryDays = days
	}

	expiryDate := time.Now().AddDate(0, 0, expiryDays)

	entry := &Entry{
		CustomerID:  params.CustomerID,
		Points:      params.Points,
		Type:        params.Type,
		ReferenceID: params.ReferenceID,
		ChallengeID: params.ChallengeID,
		LocationID:  params.LocationID,
		OrderAmount: params.OrderAmount,
		Note:        params.Note,
		ExpiryDate:  &expiryDate,
	}

	batch := &Batch{
		CustomerID:      params.CustomerID,
		PointsAllocated: params.Points,
		PointsRemaining: params.Points,
		ExpiresAt:       expiryDate,
	}

	if err := s.repo.CreateCredit(ctx, entry, batch); err != nil {
		return nil, err
	}

	return entry, nil
}

type DebitParams struct {
	CustomerID  uuid.UUID
	Points      int64
	Type        EntryType
	ReferenceID string
	LocationID  *uuid.UUID
	Note        string
}

// Debit spends points, consuming expiry batches earliest-expiring first.
// The whole operation is all-or-nothing: if the customer's available balance
// is below the requested amount it fails with ErrInsufficientPoints and no
// batch is touched.
func (s *Service) Debit(ctx context.Context, params DebitParams) (*Entry, error) {
	if params.Points <= 0 {
		return nil, fmt.Errorf("debit of %d points: %w", params.Points, ErrInvalidAmount)
	}

	tx, err := s.repo.BeginDebit(ctx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("beginning debit: %w", err)
	}
	defer tx.Rollback()

	batches, err := tx.LockBatches(ctx, params.CustomerID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("locking batches: %w", err)
	}

	consumptions, err := planConsumption(batches, params.Points)
	if err != nil {
		return nil, err
	}

	if err := tx.ApplyConsumptions(ctx, consumptions); err != nil {
		return nil, fmt.Errorf("consuming batches: %w", err)
	}

	entry := &Entry{
		CustomerID:  params.CustomerID,
		Points:      -params.Points,
		Type:        params.Type,
		ReferenceID: params.ReferenceID,
		LocationID:  params.LocationID,
		Note:        params.Note,
	}

	if err := tx.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating debit entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing debit: %w", err)
	}

	return entry, nil
}

// planConsumption distributes a debit across batches in FIFO order by expiry.
// Batches are expected sorted by ExpiresAt ascending, as LockBatches returns
// them.
func planConsumption(batches []*Batch, points int64) ([]Consumption, error) {
	var available int64
	for _, b := range batches {
		available += b.PointsRemaining
	}

	if available < points {
		return nil, fmt.Errorf("debit of %d with %d available: %w", points, available, ErrInsufficientPoints)
	}

	var consumptions []Consumption

	remaining := points
	for _, b := range batches {
		if remaining == 0 {
			break
		}

		take := b.PointsRemaining
		if take > remaining {
			take = remaining
		}

		if take == 0 {
			continue
		}

		consumptions = append(consumptions, Consumption{BatchID: b.ID, Points: take})
		remaining -= take
	}

	return consumptions, nil
}

// AvailablePoints is the sum of unconsumed points across batches that have
// not yet expired. It is derived from batches, never from a cached counter.
func (s *Service) AvailablePoints(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return s.repo.SumAvailable(ctx, customerID, time.Now())
}

// FindByReference looks up the entry recorded for an external reference.
func (s *Service) FindByReference(ctx context.Context, referenceID string) (*Entry, error) {
	return s.repo.FindEntryByReference(ctx, referenceID)
}

// History lists a customer's ledger entries, newest first.
func (s *Service) History(ctx context.Context, customerID uuid.UUID) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, customerID)
}

// Batches lists a customer's expiry batches for audit.
func (s *Service) Batches(ctx context.Context, customerID uuid.UUID) ([]*Batch, error) {
	return s.repo.ListBatches(ctx, customerID)
}

// ExpireBatches zeroes every batch that expired on or before asOf, recording
// an expiry entry for the forfeited remainder. It is idempotent: a batch
// already at zero is skipped, so overlapping sweeps are harmless.
func (s *Service) ExpireBatches(ctx context.Context, asOf time.Time) (int, error) {
	return s.repo.ExpireBatches(ctx, asOf)
}
