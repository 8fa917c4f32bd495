package pricing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/pricing"
)

func TestService_CalculatePoints(t *testing.T) {
	type testCase struct {
		name       string
		amount     decimal.Decimal
		setupMock  func(m *pricing.MockRepository)
		wantPoints int64
		wantErr    error
	}

	tests := []testCase{
		{
			name:   "RuleApplied",
			amount: decimal.NewFromInt(250),
			setupMock: func(m *pricing.MockRepository) {
				m.EXPECT().LatestRule(gomock.Any()).Return(&pricing.Rule{
					PointsPerUnit: 1,
					UnitValue:     decimal.NewFromInt(10),
				}, nil)
			},
			wantPoints: 25,
		},
		{
			name:   "FractionalResultFloored",
			amount: decimal.NewFromFloat(99.99),
			setupMock: func(m *pricing.MockRepository) {
				m.EXPECT().LatestRule(gomock.Any()).Return(&pricing.Rule{
					PointsPerUnit: 3,
					UnitValue:     decimal.NewFromInt(10),
				}, nil)
			},
			wantPoints: 29, // 99.99 / 10 * 3 = 29.997
		},
		{
			name:   "NoRuleFallsBackToFloorOfAmount",
			amount: decimal.NewFromFloat(42.75),
			setupMock: func(m *pricing.MockRepository) {
				m.EXPECT().LatestRule(gomock.Any()).Return(nil, pricing.ErrNotFound)
			},
			wantPoints: 42,
		},
		{
			name:      "NegativeAmount",
			amount:    decimal.NewFromInt(-1),
			setupMock: func(*pricing.MockRepository) {},
			wantErr:   pricing.ErrInvalidAmount,
		},
		{
			name:   "ZeroAmount",
			amount: decimal.Zero,
			setupMock: func(m *pricing.MockRepository) {
				m.EXPECT().LatestRule(gomock.Any()).Return(&pricing.Rule{
					PointsPerUnit: 1,
					UnitValue:     decimal.NewFromInt(10),
				}, nil)
			},
			wantPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pricing.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := pricing.NewService(repo)
			points, err := svc.CalculatePoints(context.Background(), tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints, points)
		})
	}
}

func TestService_CreateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pricing.NewMockRepository(ctrl)
	repo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(nil)

	svc := pricing.NewService(repo)

	rule, err := svc.CreateRule(context.Background(), 2, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rule.PointsPerUnit)

	_, err = svc.CreateRule(context.Background(), 0, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, pricing.ErrInvalidRule)

	_, err = svc.CreateRule(context.Background(), 1, decimal.Zero)
	assert.ErrorIs(t, err, pricing.ErrInvalidRule)
}
