package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pricing
type Repository interface {
	CreateRule(ctx context.Context, rule *Rule) error
	LatestRule(ctx context.Context) (*Rule, error)
	GetRule(ctx context.Context, id uuid.UUID) (*Rule, error)
	ListRules(ctx context.Context) ([]*Rule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CalculatePoints converts an order amount into points using the latest
// rule. With no rule configured the amount itself is floored to points, so a
// missing configuration is never fatal.
func (s *Service) CalculatePoints(ctx context.Context, amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("order amount %s: %w", amount, ErrInvalidAmount)
	}

	rule, err := s.repo.LatestRule(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return amount.Floor().IntPart(), nil
		}

		return 0, fmt.Errorf("fetching latest rule: %w", err)
	}

	points := amount.
		Div(rule.UnitValue).
		Mul(decimal.NewFromInt(rule.PointsPerUnit)).
		Floor().
		IntPart()

	return points, nil
}

func (s *Service) CreateRule(ctx context.Context, pointsPerUnit int64, unitValue decimal.Decimal) (*Rule, error) {
	if pointsPerUnit <= 0 || !unitValue.IsPositive() {
		return nil, ErrInvalidRule
	}

	rule := &Rule{
		PointsPerUnit: pointsPerUnit,
		UnitValue:     unitValue,
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

func (s *Service) GetRule(ctx context.Context, id uuid.UUID) (*Rule, error) {
	return s.repo.GetRule(ctx, id)
}

func (s *Service) ListRules(ctx context.Context) ([]*Rule, error) {
	return s.repo.ListRules(ctx)
}

func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetRule(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteRule(ctx, id)
}
