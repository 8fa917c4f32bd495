package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error

	GetMeasurement(ctx context.Context, customerID uuid.UUID) (*Measurement, error)
	UpsertMeasurement(ctx context.Context, m *Measurement) error

	// MarkProfileCompleted flips the flag and reports whether this call made
	// the transition, so the profile bonus fires at most once even when two
	// saves race.
	MarkProfileCompleted(ctx context.Context, customerID uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email    string
	FullName string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	c := &Customer{
		Email:    params.Email,
		FullName: params.FullName,
	}

	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.GetCustomerByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

type UpdateParams struct {
	Email    *string
	FullName *string
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Customer, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Email != nil {
		c.Email = *params.Email
	}

	if params.FullName != nil {
		c.FullName = *params.FullName
	}

	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

type MeasurementParams struct {
	Length *decimal.Decimal
	Width  *decimal.Decimal
	Waist  *decimal.Decimal
	Hip    *decimal.Decimal
}

// SaveMeasurement merges the provided fields into the customer's measurement
// record. The second return value reports whether this save completed the
// profile, which happens exactly once per customer.
func (s *Service) SaveMeasurement(ctx context.Context, customerID uuid.UUID, params MeasurementParams) (*Measurement, bool, error) {
	if _, err := s.repo.GetCustomer(ctx, customerID); err != nil {
		return nil, false, err
	}

	m, err := s.repo.GetMeasurement(ctx, customerID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, false, fmt.Errorf("getting measurement: %w", err)
		}

		m = &Measurement{CustomerID: customerID}
	}

	if params.Length != nil {
		m.Length = params.Length
	}

	if params.Width != nil {
		m.Width = params.Width
	}

	if params.Waist != nil {
		m.Waist = params.Waist
	}

	if params.Hip != nil {
		m.Hip = params.Hip
	}

	if err := s.repo.UpsertMeasurement(ctx, m); err != nil {
		return nil, false, fmt.Errorf("saving measurement: %w", err)
	}

	if !m.Complete() {
		return m, false, nil
	}

	completed, err := s.repo.MarkProfileCompleted(ctx, customerID)
	if err != nil {
		return nil, false, fmt.Errorf("marking profile completed: %w", err)
	}

	return m, completed, nil
}

func (s *Service) Measurement(ctx context.Context, customerID uuid.UUID) (*Measurement, error) {
	return s.repo.GetMeasurement(ctx, customerID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetCustomer(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteCustomer(ctx, id)
}
