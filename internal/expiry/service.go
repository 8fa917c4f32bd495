package expiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expiry
type Repository interface {
	CreateDefault(ctx context.Context, def *Default) error
	ActiveDefault(ctx context.Context) (*Default, error)
	GetDefault(ctx context.Context, id uuid.UUID) (*Default, error)
	ListDefaults(ctx context.Context) ([]*Default, error)
	UpdateDefault(ctx context.Context, def *Default) error
	DeleteDefault(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ActiveExpiryDays returns the configured point lifetime, falling back to
// DefaultExpiryDays when nothing is configured. Missing configuration is a
// documented default, never an error.
func (s *Service) ActiveExpiryDays(ctx context.Context) (int, error) {
	def, err := s.repo.ActiveDefault(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DefaultExpiryDays, nil
		}

		return 0, fmt.Errorf("fetching active expiry default: %w", err)
	}

	return def.ExpiryDays, nil
}

func (s *Service) Create(ctx context.Context, name string, expiryDays int, active bool) (*Default, error) {
	def := &Default{
		Name:       name,
		ExpiryDays: expiryDays,
		Active:     active,
	}

	if err := s.repo.CreateDefault(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

type UpdateParams struct {
	Name       *string
	ExpiryDays *int
	Active     *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Default, error) {
	def, err := s.repo.GetDefault(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		def.Name = *params.Name
	}

	if params.ExpiryDays != nil {
		def.ExpiryDays = *params.ExpiryDays
	}

	if params.Active != nil {
		def.Active = *params.Active
	}

	if err := s.repo.UpdateDefault(ctx, def); err != nil {
		return nil, err
	}

	return def, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Default, error) {
	return s.repo.GetDefault(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Default, error) {
	return s.repo.ListDefaults(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetDefault(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteDefault(ctx, id)
}
