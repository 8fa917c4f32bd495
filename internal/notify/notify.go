// Package notify delivers customer-facing notifications about loyalty
// activity. Delivery is best effort: callers fire and forget, and a failing
// dispatcher must never fail the operation that triggered it.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPointsCredited     Kind = "points_credited"
	KindPointsDebited      Kind = "points_debited"
	KindChallengeCompleted Kind = "challenge_completed"
	KindTierAssigned       Kind = "tier_assigned"
	KindProfileCompleted   Kind = "profile_completed"
)

type Notification struct {
	Kind       Kind
	CustomerID uuid.UUID
	Points     int64
	TierName   string
	Challenge  string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification)
}

// LogDispatcher writes notifications to the structured log. It stands in for
// a push or email channel; swapping it out is a wiring change in main.
type LogDispatcher struct {
	log *slog.Logger
}

func NewLogDispatcher(log *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Dispatch(_ context.Context, n Notification) {
	d.log.Info("notification",
		"kind", string(n.Kind),
		"customerId", n.CustomerID,
		"points", n.Points,
		"tier", n.TierName,
		"challenge", n.Challenge,
	)
}

// Noop drops every notification. Useful in tests and the sweeper.
type Noop struct{}

func (Noop) Dispatch(context.Context, Notification) {}
