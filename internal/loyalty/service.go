// Package loyalty orchestrates the point-earning flows: it is the only
// place that strings the ledger, pricing, challenge, and tier services
// together, so each of those stays ignorant of the others.
package loyalty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/notify"
	"github.com/brandloop/loyalty/internal/tier"
)

var (
	// ErrAlreadyProcessed marks a replayed order reference. The first
	// processing already credited the points.
	ErrAlreadyProcessed = errors.New("order already processed")

	ErrMissingReference = errors.New("order reference is required")
)

//go:generate mockgen -source=service.go -destination=collaborators_mock.go -package=loyalty
type Ledger interface {
	Credit(ctx context.Context, params ledger.CreditParams) (*ledger.Entry, error)
	Debit(ctx context.Context, params ledger.DebitParams) (*ledger.Entry, error)
	AvailablePoints(ctx context.Context, customerID uuid.UUID) (int64, error)
	FindByReference(ctx context.Context, referenceID string) (*ledger.Entry, error)
}

type Pricing interface {
	CalculatePoints(ctx context.Context, amount decimal.Decimal) (int64, error)
}

type Challenges interface {
	Evaluate(ctx context.Context, customerID uuid.UUID, ev challenge.Event) error
	EnrollProfileBased(ctx context.Context, customerID uuid.UUID) (*challenge.Challenge, error)
}

type Tiers interface {
	Reconcile(ctx context.Context, customerID uuid.UUID, points int64) (*tier.Tier, error)
}

type Service struct {
	ledger     Ledger
	pricing    Pricing
	challenges Challenges
	tiers      Tiers
	notifier   notify.Dispatcher
	log        *slog.Logger
}

func NewService(l Ledger, p Pricing, c Challenges, t Tiers, n notify.Dispatcher, log *slog.Logger) *Service {
	return &Service{
		ledger:     l,
		pricing:    p,
		challenges: c,
		tiers:      t,
		notifier:   n,
		log:        log,
	}
}

type OrderParams struct {
	CustomerID  uuid.UUID
	ReferenceID string
	Amount      decimal.Decimal
	EntryType   ledger.EntryType
	Channel     challenge.Channel
	LocationID  *uuid.UUID
	OccurredAt  time.Time
}

type OrderResult struct {
	Entry   *ledger.Entry
	Points  int64
	Balance int64
	Tier    *tier.Tier
}

// ProcessOrder runs the full earning pipeline for one order: duplicate
// check, point calculation, ledger credit, challenge evaluation, and tier
// reconciliation. The credit is the transactional core; challenge and tier
// failures after it are logged and absorbed, never rolled back, so a replay
// of the same reference cannot double-credit while retrying them.
func (s *Service) ProcessOrder(ctx context.Context, params OrderParams) (*OrderResult, error) {
	if params.ReferenceID == "" {
		return nil, ErrMissingReference
	}

	if _, err := s.ledger.FindByReference(ctx, params.ReferenceID); err == nil {
		return nil, ErrAlreadyProcessed
	} else if !errors.Is(err, ledger.ErrNotFound) {
		return nil, fmt.Errorf("checking order reference: %w", err)
	}

	points, err := s.pricing.CalculatePoints(ctx, params.Amount)
	if err != nil {
		return nil, fmt.Errorf("calculating points: %w", err)
	}

	result := &OrderResult{Points: points}

	if points > 0 {
		entry, err := s.ledger.Credit(ctx, ledger.CreditParams{
			CustomerID:  params.CustomerID,
			Points:      points,
			Type:        params.EntryType,
			ReferenceID: params.ReferenceID,
			LocationID:  params.LocationID,
			OrderAmount: &params.Amount,
		})
		if err != nil {
			if errors.Is(err, ledger.ErrDuplicateReference) {
				return nil, ErrAlreadyProcessed
			}

			return nil, fmt.Errorf("crediting order points: %w", err)
		}

		result.Entry = entry
	}

	// A zero-point order writes no entry, so the reference leaves no
	// idempotency record. Challenge evaluation has to stay behind the
	// entry: otherwise replaying the reference would progress challenges
	// again.
	if result.Entry != nil {
		occurredAt := params.OccurredAt
		if occurredAt.IsZero() {
			occurredAt = time.Now()
		}

		if err := s.challenges.Evaluate(ctx, params.CustomerID, challenge.Event{
			OrderAmount: params.Amount,
			Channel:     params.Channel,
			OccurredAt:  occurredAt,
		}); err != nil {
			s.log.Error("challenge evaluation failed",
				"customerId", params.CustomerID, "reference", params.ReferenceID, "error", err)
		}
	}

	result.Balance, result.Tier = s.reconcile(ctx, params.CustomerID)

	if points > 0 {
		s.notifier.Dispatch(ctx, notify.Notification{
			Kind:       notify.KindPointsCredited,
			CustomerID: params.CustomerID,
			Points:     points,
		})
	}

	return result, nil
}

type ManualCreditParams struct {
	CustomerID  uuid.UUID
	Points      int64
	ReferenceID string
	Note        string
	ExpiryDays  int
}

func (s *Service) CreditPoints(ctx context.Context, params ManualCreditParams) (*OrderResult, error) {
	entry, err := s.ledger.Credit(ctx, ledger.CreditParams{
		CustomerID:  params.CustomerID,
		Points:      params.Points,
		Type:        ledger.TypeManualCredit,
		ReferenceID: params.ReferenceID,
		Note:        params.Note,
		ExpiryDays:  params.ExpiryDays,
	})
	if err != nil {
		return nil, err
	}

	result := &OrderResult{Entry: entry, Points: params.Points}
	result.Balance, result.Tier = s.reconcile(ctx, params.CustomerID)

	s.notifier.Dispatch(ctx, notify.Notification{
		Kind:       notify.KindPointsCredited,
		CustomerID: params.CustomerID,
		Points:     params.Points,
	})

	return result, nil
}

type ManualDebitParams struct {
	CustomerID  uuid.UUID
	Points      int64
	ReferenceID string
	Note        string
	Redeem      bool
}

func (s *Service) DebitPoints(ctx context.Context, params ManualDebitParams) (*OrderResult, error) {
	entryType := ledger.TypeManualDeduct
	if params.Redeem {
		entryType = ledger.TypeRedeem
	}

	entry, err := s.ledger.Debit(ctx, ledger.DebitParams{
		CustomerID:  params.CustomerID,
		Points:      params.Points,
		Type:        entryType,
		ReferenceID: params.ReferenceID,
		Note:        params.Note,
	})
	if err != nil {
		return nil, err
	}

	result := &OrderResult{Entry: entry, Points: -params.Points}
	result.Balance, result.Tier = s.reconcile(ctx, params.CustomerID)

	s.notifier.Dispatch(ctx, notify.Notification{
		Kind:       notify.KindPointsDebited,
		CustomerID: params.CustomerID,
		Points:     params.Points,
	})

	return result, nil
}

// ProfileCompleted fires when a customer finishes their measurement profile.
// Enrollment and the bonus credit are both single-shot: the enrollment row is
// unique per challenge and customer, and the credit reference is derived from
// the customer id, so replays and races settle into no-ops.
func (s *Service) ProfileCompleted(ctx context.Context, customerID uuid.UUID) (*ledger.Entry, error) {
	c, err := s.challenges.EnrollProfileBased(ctx, customerID)
	if err != nil {
		if errors.Is(err, challenge.ErrAlreadyEnrolled) || errors.Is(err, challenge.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("enrolling profile challenge: %w", err)
	}

	// Multi-use profile challenges finish later through the progression
	// engine; only the single-shot variant pays out here.
	if c.CustomerUsage != 1 || c.BonusPoints <= 0 {
		return nil, nil
	}

	entry, err := s.ledger.Credit(ctx, ledger.CreditParams{
		CustomerID:  customerID,
		Points:      c.BonusPoints,
		Type:        ledger.TypeProfileComplete,
		ReferenceID: "PROFILE:" + customerID.String(),
		ChallengeID: &c.ID,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateReference) {
			return nil, nil
		}

		return nil, fmt.Errorf("crediting profile bonus: %w", err)
	}

	s.reconcile(ctx, customerID)

	s.notifier.Dispatch(ctx, notify.Notification{
		Kind:       notify.KindProfileCompleted,
		CustomerID: customerID,
		Points:     c.BonusPoints,
		Challenge:  c.Name,
	})

	return entry, nil
}

// reconcile refreshes the customer's tier from their current balance. Tier
// placement is derived state, so failures here are logged and absorbed; the
// next earning event repairs it.
func (s *Service) reconcile(ctx context.Context, customerID uuid.UUID) (int64, *tier.Tier) {
	balance, err := s.ledger.AvailablePoints(ctx, customerID)
	if err != nil {
		s.log.Error("reading balance for tier reconciliation",
			"customerId", customerID, "error", err)

		return 0, nil
	}

	target, err := s.tiers.Reconcile(ctx, customerID, balance)
	if err != nil {
		s.log.Error("tier reconciliation failed",
			"customerId", customerID, "error", err)

		return balance, nil
	}

	return balance, target
}
