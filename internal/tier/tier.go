package tier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("tier not found")

	// ErrDuplicateThreshold keeps thresholds distinct by construction.
	ErrDuplicateThreshold = errors.New("a tier with this threshold already exists")

	// ErrTierInUse refuses deletion while customers still hold the tier.
	ErrTierInUse = errors.New("tier has assigned customers")
)

// Tier is a threshold-based membership level.
type Tier struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Threshold    int64
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

// Assignment links a customer to a tier they currently hold.
type Assignment struct {
	ID         uuid.UUID
	TierID     uuid.UUID
	CustomerID uuid.UUID
	AssignedAt time.Time
	Tier       *Tier
}

// Resolve picks the tier with the greatest threshold not exceeding points.
// Returns nil when no tier qualifies. Thresholds are distinct by
// construction; if duplicates slip in anyway, the lowest id wins so the
// choice stays deterministic.
func Resolve(tiers []*Tier, points int64) *Tier {
	var best *Tier

	for _, t := range tiers {
		if !t.Active || t.Threshold > points {
			continue
		}

		switch {
		case best == nil:
			best = t
		case t.Threshold > best.Threshold:
			best = t
		case t.Threshold == best.Threshold && t.ID.String() < best.ID.String():
			best = t
		}
	}

	return best
}
