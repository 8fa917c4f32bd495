package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/tier"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reward
type Repository interface {
	CreateReward(ctx context.Context, r *Reward) error
	GetReward(ctx context.Context, id uuid.UUID) (*Reward, error)
	GetRewardByName(ctx context.Context, name string) (*Reward, error)
	ListRewards(ctx context.Context) ([]*Reward, error)
	ListTierRewards(ctx context.Context, tierID uuid.UUID) ([]*Reward, error)
	UpdateReward(ctx context.Context, r *Reward) error
	DeleteReward(ctx context.Context, id uuid.UUID) error

	SetRewardTiers(ctx context.Context, rewardID uuid.UUID, tierIDs []uuid.UUID) error
	ListRewardTiers(ctx context.Context, rewardID uuid.UUID) ([]uuid.UUID, error)

	CreateRedemption(ctx context.Context, r *Redemption) error
	CountRewardRedemptions(ctx context.Context, rewardID uuid.UUID) (int, error)
	ListCustomerRedemptions(ctx context.Context, customerID uuid.UUID) ([]*Redemption, error)
}

// Ledger is the slice of the points ledger redemption needs: the debit that
// pays for a reward.
type Ledger interface {
	Debit(ctx context.Context, params ledger.DebitParams) (*ledger.Entry, error)
}

// Tiers answers which tiers a customer currently holds, for gated rewards.
type Tiers interface {
	CustomerTiers(ctx context.Context, customerID uuid.UUID) ([]*tier.Assignment, error)
}

type Service struct {
	repo   Repository
	ledger Ledger
	tiers  Tiers
}

func NewService(repo Repository, l Ledger, t Tiers) *Service {
	return &Service{repo: repo, ledger: l, tiers: t}
}

type CreateParams struct {
	Name        string
	Description string
	PointsCost  int64
	Active      bool
	TierIDs     []uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Reward, error) {
	if params.PointsCost < 0 {
		return nil, fmt.Errorf("points cost %d: %w", params.PointsCost, ledger.ErrInvalidAmount)
	}

	if _, err := s.repo.GetRewardByName(ctx, params.Name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking reward name: %w", err)
	}

	r := &Reward{
		Name:        params.Name,
		Description: params.Description,
		PointsCost:  params.PointsCost,
		Active:      params.Active,
		TierIDs:     params.TierIDs,
	}

	if err := s.repo.CreateReward(ctx, r); err != nil {
		return nil, err
	}

	if len(params.TierIDs) > 0 {
		if err := s.repo.SetRewardTiers(ctx, r.ID, params.TierIDs); err != nil {
			return nil, fmt.Errorf("linking reward tiers: %w", err)
		}
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Reward, error) {
	r, err := s.repo.GetReward(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.TierIDs, err = s.repo.ListRewardTiers(ctx, id); err != nil {
		return nil, fmt.Errorf("listing reward tiers: %w", err)
	}

	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*Reward, error) {
	return s.repo.ListRewards(ctx)
}

// TierRewards lists the catalog a tier unlocks.
func (s *Service) TierRewards(ctx context.Context, tierID uuid.UUID) ([]*Reward, error) {
	return s.repo.ListTierRewards(ctx, tierID)
}

type UpdateParams struct {
	Name        *string
	Description *string
	PointsCost  *int64
	Active      *bool
	TierIDs     []uuid.UUID
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Reward, error) {
	r, err := s.repo.GetReward(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil && *params.Name != r.Name {
		if existing, err := s.repo.GetRewardByName(ctx, *params.Name); err == nil && existing.ID != id {
			return nil, ErrDuplicateName
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("checking reward name: %w", err)
		}

		r.Name = *params.Name
	}

	if params.Description != nil {
		r.Description = *params.Description
	}

	if params.PointsCost != nil {
		if *params.PointsCost < 0 {
			return nil, fmt.Errorf("points cost %d: %w", *params.PointsCost, ledger.ErrInvalidAmount)
		}

		r.PointsCost = *params.PointsCost
	}

	if params.Active != nil {
		r.Active = *params.Active
	}

	if err := s.repo.UpdateReward(ctx, r); err != nil {
		return nil, err
	}

	// A nil slice leaves the linkage alone; an empty one clears it.
	if params.TierIDs != nil {
		if err := s.repo.SetRewardTiers(ctx, id, params.TierIDs); err != nil {
			return nil, fmt.Errorf("linking reward tiers: %w", err)
		}

		r.TierIDs = params.TierIDs
	} else if r.TierIDs, err = s.repo.ListRewardTiers(ctx, id); err != nil {
		return nil, fmt.Errorf("listing reward tiers: %w", err)
	}

	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetReward(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountRewardRedemptions(ctx, id)
	if err != nil {
		return fmt.Errorf("counting redemptions: %w", err)
	}

	if count > 0 {
		return ErrRewardHasRedemptions
	}

	return s.repo.DeleteReward(ctx, id)
}

type RedeemParams struct {
	RewardID   uuid.UUID
	CustomerID uuid.UUID
	LocationID *uuid.UUID
}

// Redeem claims a reward for a customer: tier gate, ledger debit for the
// cost, then the redemption record. The debit goes first so the balance
// stays authoritative; the record carries the debit entry for audit.
func (s *Service) Redeem(ctx context.Context, params RedeemParams) (*Redemption, error) {
	r, err := s.repo.GetReward(ctx, params.RewardID)
	if err != nil {
		return nil, err
	}

	if !r.Active {
		return nil, ErrRewardInactive
	}

	gates, err := s.repo.ListRewardTiers(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("listing reward tiers: %w", err)
	}

	if len(gates) > 0 {
		held, err := s.tiers.CustomerTiers(ctx, params.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("listing customer tiers: %w", err)
		}

		if !holdsAny(held, gates) {
			return nil, ErrTierRequired
		}
	}

	red := &Redemption{
		ID:          uuid.New(),
		RewardID:    r.ID,
		CustomerID:  params.CustomerID,
		LocationID:  params.LocationID,
		PointsSpent: r.PointsCost,
	}

	if r.PointsCost > 0 {
		entry, err := s.ledger.Debit(ctx, ledger.DebitParams{
			CustomerID:  params.CustomerID,
			Points:      r.PointsCost,
			Type:        ledger.TypeRedeem,
			ReferenceID: "REDEMPTION:" + red.ID.String(),
			LocationID:  params.LocationID,
			Note:        fmt.Sprintf("Redeemed reward %q", r.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("debiting reward cost: %w", err)
		}

		red.EntryID = &entry.ID
	}

	if err := s.repo.CreateRedemption(ctx, red); err != nil {
		return nil, fmt.Errorf("recording redemption: %w", err)
	}

	return red, nil
}

func (s *Service) CustomerRedemptions(ctx context.Context, customerID uuid.UUID) ([]*Redemption, error) {
	return s.repo.ListCustomerRedemptions(ctx, customerID)
}

func holdsAny(held []*tier.Assignment, gates []uuid.UUID) bool {
	for _, a := range held {
		for _, g := range gates {
			if a.TierID == g {
				return true
			}
		}
	}

	return false
}
