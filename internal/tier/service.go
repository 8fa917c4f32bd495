package tier

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tier
type Repository interface {
	CreateTier(ctx context.Context, t *Tier) error
	GetTier(ctx context.Context, id uuid.UUID) (*Tier, error)
	GetTierByThreshold(ctx context.Context, threshold int64) (*Tier, error)
	ListTiers(ctx context.Context) ([]*Tier, error)
	ListActiveTiers(ctx context.Context) ([]*Tier, error)
	UpdateTier(ctx context.Context, t *Tier) error
	DeleteTier(ctx context.Context, id uuid.UUID) error
	CountTierCustomers(ctx context.Context, tierID uuid.UUID) (int, error)

	AssignTier(ctx context.Context, tierID, customerID uuid.UUID) error
	RemoveTiersBelow(ctx context.Context, customerID uuid.UUID, threshold int64) error
	ListCustomerTiers(ctx context.Context, customerID uuid.UUID) ([]*Assignment, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Reconcile brings a customer's tier assignments in line with their
// available points: the target tier is assigned if missing and every
// strictly lower tier is removed. Tiers at or above the target are never
// touched, so two overlapping reconciliations cannot flap a customer
// downward. A nil target leaves everything as is.
func (s *Service) Reconcile(ctx context.Context, customerID uuid.UUID, points int64) (*Tier, error) {
	tiers, err := s.repo.ListActiveTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active tiers: %w", err)
	}

	target := Resolve(tiers, points)
	if target == nil {
		return nil, nil
	}

	if err := s.repo.AssignTier(ctx, target.ID, customerID); err != nil {
		return nil, fmt.Errorf("assigning tier: %w", err)
	}

	if err := s.repo.RemoveTiersBelow(ctx, customerID, target.Threshold); err != nil {
		return nil, fmt.Errorf("removing lower tiers: %w", err)
	}

	return target, nil
}

// ResolveForPoints returns the tier the given balance qualifies for without
// changing any assignment.
func (s *Service) ResolveForPoints(ctx context.Context, points int64) (*Tier, error) {
	tiers, err := s.repo.ListActiveTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active tiers: %w", err)
	}

	return Resolve(tiers, points), nil
}

type CreateParams struct {
	Name         string
	Description  string
	Threshold    int64
	DisplayOrder int
	Active       bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Tier, error) {
	existing, err := s.repo.GetTierByThreshold(ctx, params.Threshold)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, ErrDuplicateThreshold
	}

	t := &Tier{
		Name:         params.Name,
		Description:  params.Description,
		Threshold:    params.Threshold,
		DisplayOrder: params.DisplayOrder,
		Active:       params.Active,
	}

	if err := s.repo.CreateTier(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

type UpdateParams struct {
	Name         *string
	Description  *string
	Threshold    *int64
	DisplayOrder *int
	Active       *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Tier, error) {
	t, err := s.repo.GetTier(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Threshold != nil && *params.Threshold != t.Threshold {
		existing, err := s.repo.GetTierByThreshold(ctx, *params.Threshold)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateThreshold
		}

		t.Threshold = *params.Threshold
	}

	if params.Name != nil {
		t.Name = *params.Name
	}

	if params.Description != nil {
		t.Description = *params.Description
	}

	if params.DisplayOrder != nil {
		t.DisplayOrder = *params.DisplayOrder
	}

	if params.Active != nil {
		t.Active = *params.Active
	}

	if err := s.repo.UpdateTier(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Tier, error) {
	return s.repo.GetTier(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Tier, error) {
	return s.repo.ListTiers(ctx)
}

// Delete soft-deletes a tier, refusing while customers still hold it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetTier(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountTierCustomers(ctx, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrTierInUse
	}

	return s.repo.DeleteTier(ctx, id)
}

func (s *Service) CustomerTiers(ctx context.Context, customerID uuid.UUID) ([]*Assignment, error) {
	return s.repo.ListCustomerTiers(ctx, customerID)
}
