package reward

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("reward not found")
	ErrRedemptionNotFound = errors.New("redemption not found")

	ErrDuplicateName = errors.New("a reward with this name already exists")

	// ErrRewardInactive refuses redemption of a deactivated reward.
	ErrRewardInactive = errors.New("reward is not active")

	// ErrRewardHasRedemptions refuses deletion once the reward has been
	// redeemed; the catalog entry backs those records. Deactivate instead.
	ErrRewardHasRedemptions = errors.New("reward has redemptions")

	// ErrTierRequired means the reward is gated behind tiers the customer
	// does not hold.
	ErrTierRequired = errors.New("reward requires a tier the customer does not hold")
)

// Reward is a catalog item customers spend points on. A reward linked to
// one or more tiers can only be redeemed by customers holding one of them;
// an unlinked reward is open to everyone.
type Reward struct {
	ID          uuid.UUID
	Name        string
	Description string
	PointsCost  int64
	Active      bool
	TierIDs     []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Redemption records one customer claiming one reward. EntryID points at
// the ledger debit that paid for it; it is nil for zero-cost rewards.
type Redemption struct {
	ID          uuid.UUID
	RewardID    uuid.UUID
	CustomerID  uuid.UUID
	EntryID     *uuid.UUID
	LocationID  *uuid.UUID
	PointsSpent int64
	CreatedAt   time.Time
}
