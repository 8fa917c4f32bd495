package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/ledger"
)

func TestService_Credit(t *testing.T) {
	customerID := uuid.New()

	type testCase struct {
		name      string
		params    ledger.CreditParams
		setupMock func(repo *ledger.MockRepository, cfg *ledger.MockExpiryConfig)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: ledger.CreditParams{
				CustomerID:  customerID,
				Points:      25,
				Type:        ledger.TypeQRPurchase,
				ReferenceID: "ORD-1",
			},
			setupMock: func(repo *ledger.MockRepository, cfg *ledger.MockExpiryConfig) {
				cfg.EXPECT().ActiveExpiryDays(gomock.Any()).Return(365, nil)
				repo.EXPECT().
					CreateCredit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Entry, b *ledger.Batch) error {
						assert.Equal(t, int64(25), e.Points)
						assert.Equal(t, ledger.TypeQRPurchase, e.Type)
						assert.Equal(t, "ORD-1", e.ReferenceID)
						require.NotNil(t, e.ExpiryDate)
						assert.Equal(t, int64(25), b.PointsAllocated)
						assert.Equal(t, int64(25), b.PointsRemaining)
						assert.Equal(t, *e.ExpiryDate, b.ExpiresAt)

						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ExplicitExpiryDaysSkipConfig",
			params: ledger.CreditParams{
				CustomerID: customerID,
				Points:     10,
				Type:       ledger.TypeChallenge,
				ExpiryDays: 30,
			},
			setupMock: func(repo *ledger.MockRepository, cfg *ledger.MockExpiryConfig) {
				repo.EXPECT().
					CreateCredit(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Entry, _ *ledger.Batch) error {
						require.NotNil(t, e.ExpiryDate)
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *e.ExpiryDate, time.Minute)
						return nil
					})
			},
		},
		{
			name: "ZeroPoints",
			params: ledger.CreditParams{
				CustomerID: customerID,
				Points:     0,
				Type:       ledger.TypeManualCredit,
			},
			setupMock: func(*ledger.MockRepository, *ledger.MockExpiryConfig) {},
			wantErr:   ledger.ErrInvalidAmount,
		},
		{
			name: "NegativePoints",
			params: ledger.CreditParams{
				CustomerID: customerID,
				Points:     -5,
				Type:       ledger.TypeManualCredit,
			},
			setupMock: func(*ledger.MockRepository, *ledger.MockExpiryConfig) {},
			wantErr:   ledger.ErrInvalidAmount,
		},
		{
			name: "DuplicateReference",
			params: ledger.CreditParams{
				CustomerID:  customerID,
				Points:      25,
				Type:        ledger.TypeQRPurchase,
				ReferenceID: "ORD-1",
			},
			setupMock: func(repo *ledger.MockRepository, cfg *ledger.MockExpiryConfig) {
				cfg.EXPECT().ActiveExpiryDays(gomock.Any()).Return(365, nil)
				repo.EXPECT().
					CreateCredit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(ledger.ErrDuplicateReference)
			},
			wantErr: ledger.ErrDuplicateReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			cfg := ledger.NewMockExpiryConfig(ctrl)
			tt.setupMock(repo, cfg)

			svc := ledger.NewService(repo, cfg)
			entry, err := svc.Credit(context.Background(), tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, entry)
		})
	}
}

func TestService_Debit_FIFO(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	now := time.Now()

	early := &ledger.Batch{ID: uuid.New(), CustomerID: customerID, PointsAllocated: 20, PointsRemaining: 10, ExpiresAt: now.AddDate(0, 0, 10)}
	late := &ledger.Batch{ID: uuid.New(), CustomerID: customerID, PointsAllocated: 30, PointsRemaining: 30, ExpiresAt: now.AddDate(0, 0, 90)}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockDebitTx(ctrl)

	repo.EXPECT().BeginDebit(gomock.Any(), customerID).Return(tx, nil)
	tx.EXPECT().LockBatches(gomock.Any(), customerID, gomock.Any()).Return([]*ledger.Batch{early, late}, nil)
	tx.EXPECT().ApplyConsumptions(gomock.Any(), []ledger.Consumption{
		{BatchID: early.ID, Points: 10},
		{BatchID: late.ID, Points: 15},
	}).Return(nil)
	tx.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			assert.Equal(t, int64(-25), e.Points)
			assert.Equal(t, ledger.TypeRedeem, e.Type)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	entry, err := svc.Debit(context.Background(), ledger.DebitParams{
		CustomerID: customerID,
		Points:     25,
		Type:       ledger.TypeRedeem,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-25), entry.Points)
}

func TestService_Debit_Insufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockDebitTx(ctrl)

	repo.EXPECT().BeginDebit(gomock.Any(), customerID).Return(tx, nil)
	tx.EXPECT().LockBatches(gomock.Any(), customerID, gomock.Any()).Return([]*ledger.Batch{
		{ID: uuid.New(), PointsRemaining: 5, ExpiresAt: time.Now().AddDate(0, 0, 30)},
	}, nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	entry, err := svc.Debit(context.Background(), ledger.DebitParams{
		CustomerID: customerID,
		Points:     10,
		Type:       ledger.TypeRedeem,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInsufficientPoints)
	assert.Nil(t, entry)
}

func TestService_Debit_ExactBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	batch := &ledger.Batch{ID: uuid.New(), PointsRemaining: 10, ExpiresAt: time.Now().AddDate(0, 0, 30)}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockDebitTx(ctrl)

	repo.EXPECT().BeginDebit(gomock.Any(), customerID).Return(tx, nil)
	tx.EXPECT().LockBatches(gomock.Any(), customerID, gomock.Any()).Return([]*ledger.Batch{batch}, nil)
	tx.EXPECT().ApplyConsumptions(gomock.Any(), []ledger.Consumption{
		{BatchID: batch.ID, Points: 10},
	}).Return(nil)
	tx.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	_, err := svc.Debit(context.Background(), ledger.DebitParams{
		CustomerID: customerID,
		Points:     10,
		Type:       ledger.TypeManualDeduct,
	})
	require.NoError(t, err)
}

func TestService_Debit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl), ledger.NewMockExpiryConfig(ctrl))

	_, err := svc.Debit(context.Background(), ledger.DebitParams{
		CustomerID: uuid.New(),
		Points:     0,
		Type:       ledger.TypeRedeem,
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestService_Debit_ConsumeErrorRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	batch := &ledger.Batch{ID: uuid.New(), PointsRemaining: 50, ExpiresAt: time.Now().AddDate(0, 0, 30)}

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockDebitTx(ctrl)

	repo.EXPECT().BeginDebit(gomock.Any(), customerID).Return(tx, nil)
	tx.EXPECT().LockBatches(gomock.Any(), customerID, gomock.Any()).Return([]*ledger.Batch{batch}, nil)
	tx.EXPECT().ApplyConsumptions(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	_, err := svc.Debit(context.Background(), ledger.DebitParams{
		CustomerID: customerID,
		Points:     10,
		Type:       ledger.TypeRedeem,
	})
	assert.Error(t, err)
}

func TestService_AvailablePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().SumAvailable(gomock.Any(), customerID, gomock.Any()).Return(int64(42), nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	points, err := svc.AvailablePoints(context.Background(), customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), points)
}

func TestService_ExpireBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Now()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().ExpireBatches(gomock.Any(), asOf).Return(3, nil)

	svc := ledger.NewService(repo, ledger.NewMockExpiryConfig(ctrl))
	swept, err := svc.ExpireBatches(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 3, swept)
}
