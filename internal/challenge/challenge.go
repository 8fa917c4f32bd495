package challenge

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the closed set of challenge variants. Evaluation dispatches on it
// exhaustively, so adding a variant means updating the predicates below.
type Type string

const (
	TypeProfileBased  Type = "profile_based"
	TypePurchaseBased Type = "purchase_based"
	TypeTimeBased     Type = "time_based"
	TypeChannelBased  Type = "channel_based"
)

// Channel is the sales channel an order came through.
type Channel string

const (
	ChannelAny     Channel = "any"
	ChannelOnline  Channel = "online"
	ChannelInStore Channel = "in_store"
)

var (
	ErrNotFound            = errors.New("challenge not found")
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadyEnrolled is backed by the (challenge_id, customer_id) unique
	// constraint; a concurrent enrollment loser gets this, not a failure.
	ErrAlreadyEnrolled = errors.New("customer already enrolled in challenge")

	// ErrAlreadyCompleted means the participant is in the terminal state.
	ErrAlreadyCompleted = errors.New("challenge already completed")
)

// Challenge is a rule that grants a one-time bonus credit once a customer
// satisfies it CustomerUsage times.
type Challenge struct {
	ID                uuid.UUID
	Name              string
	Description       string
	Type              Type
	RequiredAmount    decimal.Decimal
	RequiredPurchases int
	DurationDays      *int
	CustomerUsage     int
	Channel           Channel
	BonusPoints       int64
	BonusPercent      decimal.Decimal
	StartAt           *time.Time
	EndAt             *time.Time
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	DeletedAt         *time.Time
}

// Participant tracks one customer's progress through one challenge:
// Active (Completed=false) until ProgressCount reaches CustomerUsage, then
// Completed, which is terminal.
type Participant struct {
	ID            uuid.UUID
	ChallengeID   uuid.UUID
	CustomerID    uuid.UUID
	ProgressCount int
	Completed     bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Event is a purchase signal fed to the progression engine.
type Event struct {
	OrderAmount decimal.Decimal
	Channel     Channel
	OccurredAt  time.Time
}

// InWindow reports whether t falls inside the challenge's own start/end
// window. A missing bound is open.
func (c *Challenge) InWindow(t time.Time) bool {
	if c.StartAt != nil && t.Before(*c.StartAt) {
		return false
	}

	if c.EndAt != nil && t.After(*c.EndAt) {
		return false
	}

	return true
}

func (c *Challenge) channelMatches(ch Channel) bool {
	return c.Channel == ChannelAny || c.Channel == ch
}

// EnrollsOn reports whether an order event enrolls a not-yet-participating
// customer. Profile-based challenges never enroll from order events; they
// have a dedicated profile-completion trigger.
func (c *Challenge) EnrollsOn(ev Event) bool {
	switch c.Type {
	case TypePurchaseBased, TypeChannelBased:
		return ev.OrderAmount.GreaterThanOrEqual(c.RequiredAmount)
	case TypeTimeBased:
		return c.InWindow(ev.OccurredAt) && ev.OrderAmount.GreaterThanOrEqual(c.RequiredAmount)
	case TypeProfileBased:
		return false
	}

	return false
}

// ProgressesOn reports whether an order event advances an active
// participant.
func (c *Challenge) ProgressesOn(ev Event) bool {
	switch c.Type {
	case TypePurchaseBased:
		return ev.OrderAmount.GreaterThanOrEqual(c.RequiredAmount)
	case TypeTimeBased:
		return c.InWindow(ev.OccurredAt) && ev.OrderAmount.GreaterThanOrEqual(c.RequiredAmount)
	case TypeChannelBased:
		return c.channelMatches(ev.Channel)
	case TypeProfileBased:
		return false
	}

	return false
}
