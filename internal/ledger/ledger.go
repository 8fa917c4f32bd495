package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies what a ledger entry was earned or spent on.
type EntryType string

const (
	TypeSignup          EntryType = "signup"
	TypeProfileComplete EntryType = "profile_complete"
	TypeQRPurchase      EntryType = "qr_purchase"
	TypeShopifyOrder    EntryType = "shopify_order"
	TypeChallenge       EntryType = "challenge"
	TypeManualCredit    EntryType = "manual_credit"
	TypeManualDeduct    EntryType = "manual_deduct"
	TypeRedeem          EntryType = "redeem"
	TypeExpiry          EntryType = "expiry"
)

var (
	// ErrDuplicateReference means the reference ID was already recorded.
	// Callers treat this as "already processed", not as a retryable failure.
	ErrDuplicateReference = errors.New("reference already recorded")

	// ErrInsufficientPoints means a debit exceeded the available balance.
	// Nothing is written when this is returned.
	ErrInsufficientPoints = errors.New("insufficient points")

	ErrNotFound      = errors.New("entry not found")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Entry is an immutable record of a single point credit or debit.
// Positive points are credits, negative points are debits. Entries are the
// system of record and are never updated or deleted.
type Entry struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Points      int64
	Type        EntryType
	ReferenceID string // external idempotency key, empty when absent
	ChallengeID *uuid.UUID
	LocationID  *uuid.UUID
	OrderAmount *decimal.Decimal
	Note        string
	ExpiryDate  *time.Time
	CreatedAt   time.Time
}

// Batch tracks how much of one credit is still usable. PointsRemaining only
// ever decreases: debits consume it FIFO by expiry date and the sweep forces
// it to zero once the batch has expired. Batches are kept for audit.
type Batch struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	TransactionID   uuid.UUID
	PointsAllocated int64
	PointsRemaining int64
	ExpiresAt       time.Time
	CreatedAt       time.Time
}

// Expired reports whether the batch no longer counts toward the balance.
func (b *Batch) Expired(asOf time.Time) bool {
	return !b.ExpiresAt.After(asOf)
}
