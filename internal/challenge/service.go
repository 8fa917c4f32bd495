package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=challenge
type Repository interface {
	CreateChallenge(ctx context.Context, c *Challenge) error
	GetChallenge(ctx context.Context, id uuid.UUID) (*Challenge, error)
	ListChallenges(ctx context.Context) ([]*Challenge, error)
	ListActiveChallenges(ctx context.Context, at time.Time) ([]*Challenge, error)
	ActiveChallengeByType(ctx context.Context, t Type) (*Challenge, error)
	UpdateChallenge(ctx context.Context, c *Challenge) error
	DeleteChallenge(ctx context.Context, id uuid.UUID) error

	CreateParticipant(ctx context.Context, p *Participant) error
	GetParticipant(ctx context.Context, challengeID, customerID uuid.UUID) (*Participant, error)
	IncrementProgress(ctx context.Context, challengeID, customerID uuid.UUID) (*Participant, error)
	CompleteParticipant(ctx context.Context, challengeID, customerID uuid.UUID) (bool, error)
	ListCustomerParticipants(ctx context.Context, customerID uuid.UUID) ([]*Participant, error)
	ChallengeStats(ctx context.Context, challengeID uuid.UUID) (*Stats, error)
}

// Ledger is the one callback the engine makes into the points ledger:
// crediting a completion bonus. It never re-triggers order processing.
type Ledger interface {
	Credit(ctx context.Context, params ledger.CreditParams) (*ledger.Entry, error)
}

// Stats summarizes participation in one challenge.
type Stats struct {
	Participants int
	Completed    int
}

type Service struct {
	repo   Repository
	ledger Ledger
}

func NewService(repo Repository, l Ledger) *Service {
	return &Service{repo: repo, ledger: l}
}

// Evaluate feeds one purchase event through every active challenge: enrolling
// the customer where the enrollment condition holds, advancing progress where
// the progress condition holds, and crediting the bonus on completion.
// Challenges the customer already completed are untouched.
func (s *Service) Evaluate(ctx context.Context, customerID uuid.UUID, ev Event) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	challenges, err := s.repo.ListActiveChallenges(ctx, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("listing active challenges: %w", err)
	}

	for _, c := range challenges {
		if err := s.evaluateOne(ctx, c, customerID, ev); err != nil {
			return fmt.Errorf("evaluating challenge %s: %w", c.ID, err)
		}
	}

	return nil
}

func (s *Service) evaluateOne(ctx context.Context, c *Challenge, customerID uuid.UUID, ev Event) error {
	participant, err := s.repo.GetParticipant(ctx, c.ID, customerID)
	if err != nil && !errors.Is(err, ErrParticipantNotFound) {
		return err
	}

	if participant == nil {
		if !c.EnrollsOn(ev) {
			return nil
		}

		participant = &Participant{ChallengeID: c.ID, CustomerID: customerID}

		if err := s.repo.CreateParticipant(ctx, participant); err != nil {
			// A concurrent evaluation won the enrollment; carry on with
			// the existing row.
			if !errors.Is(err, ErrAlreadyEnrolled) {
				return err
			}

			participant, err = s.repo.GetParticipant(ctx, c.ID, customerID)
			if err != nil {
				return err
			}
		}
	}

	if participant.Completed {
		return nil
	}

	if !c.ProgressesOn(ev) {
		return nil
	}

	return s.advance(ctx, c, customerID)
}

// advance increments progress and, when the target is reached, completes the
// participant and credits the bonus. CompleteParticipant reports whether this
// call made the transition, so the bonus is credited exactly once even under
// concurrent evaluation.
func (s *Service) advance(ctx context.Context, c *Challenge, customerID uuid.UUID) error {
	updated, err := s.repo.IncrementProgress(ctx, c.ID, customerID)
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil
		}

		return err
	}

	if updated.ProgressCount < c.CustomerUsage {
		return nil
	}

	transitioned, err := s.repo.CompleteParticipant(ctx, c.ID, customerID)
	if err != nil {
		return err
	}

	if !transitioned || c.BonusPoints <= 0 {
		return nil
	}

	_, err = s.ledger.Credit(ctx, ledger.CreditParams{
		CustomerID:  customerID,
		Points:      c.BonusPoints,
		Type:        ledger.TypeChallenge,
		ChallengeID: &c.ID,
		Note:        fmt.Sprintf("Bonus for completing challenge %q", c.Name),
	})
	if err != nil {
		return fmt.Errorf("crediting challenge bonus: %w", err)
	}

	slog.Info("challenge completed",
		"challenge_id", c.ID,
		"customer_id", customerID,
		"bonus_points", c.BonusPoints)

	return nil
}

// Enroll adds a customer to a challenge with zero progress. The unique
// participant constraint makes concurrent attempts resolve to one winner;
// the loser sees ErrAlreadyEnrolled.
func (s *Service) Enroll(ctx context.Context, challengeID, customerID uuid.UUID) (*Participant, error) {
	if _, err := s.repo.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	}

	participant := &Participant{ChallengeID: challengeID, CustomerID: customerID}
	if err := s.repo.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

// EnrollProfileBased enrolls a customer into the active profile-based
// challenge after they complete their profile. The participant is pre-seeded
// with one progress tick, and marked completed immediately when the
// challenge is single-shot. It returns the challenge so the caller can
// credit the profile bonus.
func (s *Service) EnrollProfileBased(ctx context.Context, customerID uuid.UUID) (*Challenge, error) {
	c, err := s.repo.ActiveChallengeByType(ctx, TypeProfileBased)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	participant := &Participant{
		ChallengeID:   c.ID,
		CustomerID:    customerID,
		ProgressCount: 1,
	}

	if c.CustomerUsage == 1 {
		participant.Completed = true
		participant.CompletedAt = &now
	}

	if err := s.repo.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return c, nil
}

// UpdateProgress advances an enrolled customer by one qualifying event,
// completing the challenge and crediting the bonus when the target is hit.
func (s *Service) UpdateProgress(ctx context.Context, challengeID, customerID uuid.UUID) (*Participant, error) {
	c, err := s.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetParticipant(ctx, challengeID, customerID)
	if err != nil {
		return nil, err
	}

	if p.Completed {
		return nil, ErrAlreadyCompleted
	}

	if err := s.advance(ctx, c, customerID); err != nil {
		return nil, err
	}

	return s.repo.GetParticipant(ctx, challengeID, customerID)
}

type CreateParams struct {
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
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Challenge, error) {
	if params.CustomerUsage <= 0 {
		params.CustomerUsage = 1
	}

	if params.Channel == "" {
		params.Channel = ChannelAny
	}

	c := &Challenge{
		Name:              params.Name,
		Description:       params.Description,
		Type:              params.Type,
		RequiredAmount:    params.RequiredAmount,
		RequiredPurchases: params.RequiredPurchases,
		DurationDays:      params.DurationDays,
		CustomerUsage:     params.CustomerUsage,
		Channel:           params.Channel,
		BonusPoints:       params.BonusPoints,
		BonusPercent:      params.BonusPercent,
		StartAt:           params.StartAt,
		EndAt:             params.EndAt,
		Active:            params.Active,
	}

	if err := s.repo.CreateChallenge(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type UpdateParams struct {
	Name           *string
	Description    *string
	RequiredAmount *decimal.Decimal
	CustomerUsage  *int
	Channel        *Channel
	BonusPoints    *int64
	StartAt        *time.Time
	EndAt          *time.Time
	Active         *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Challenge, error) {
	c, err := s.repo.GetChallenge(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		c.Name = *params.Name
	}

	if params.Description != nil {
		c.Description = *params.Description
	}

	if params.RequiredAmount != nil {
		c.RequiredAmount = *params.RequiredAmount
	}

	if params.CustomerUsage != nil {
		c.CustomerUsage = *params.CustomerUsage
	}

	if params.Channel != nil {
		c.Channel = *params.Channel
	}

	if params.BonusPoints != nil {
		c.BonusPoints = *params.BonusPoints
	}

	if params.StartAt != nil {
		c.StartAt = params.StartAt
	}

	if params.EndAt != nil {
		c.EndAt = params.EndAt
	}

	if params.Active != nil {
		c.Active = *params.Active
	}

	if err := s.repo.UpdateChallenge(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Challenge, error) {
	return s.repo.GetChallenge(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Challenge, error) {
	return s.repo.ListChallenges(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]*Challenge, error) {
	return s.repo.ListActiveChallenges(ctx, time.Now())
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetChallenge(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteChallenge(ctx, id)
}

func (s *Service) CustomerParticipants(ctx context.Context, customerID uuid.UUID) ([]*Participant, error) {
	return s.repo.ListCustomerParticipants(ctx, customerID)
}

func (s *Service) Stats(ctx context.Context, challengeID uuid.UUID) (*Stats, error) {
	if _, err := s.repo.GetChallenge(ctx, challengeID); err != nil {
		return nil, err
	}

	return s.repo.ChallengeStats(ctx, challengeID)
}
