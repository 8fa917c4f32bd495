package loyalty

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/notify"
	"github.com/brandloop/loyalty/internal/tier"
)

type fixture struct {
	ledger     *MockLedger
	pricing    *MockPricing
	challenges *MockChallenges
	tiers      *MockTiers
	svc        *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		ledger:     NewMockLedger(ctrl),
		pricing:    NewMockPricing(ctrl),
		challenges: NewMockChallenges(ctrl),
		tiers:      NewMockTiers(ctrl),
	}

	f.svc = NewService(f.ledger, f.pricing, f.challenges, f.tiers,
		notify.Noop{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return f
}

func TestProcessOrder(t *testing.T) {
	customerID := uuid.New()
	amount := decimal.RequireFromString("250")

	t.Run("full pipeline", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1001").
			Return(nil, ledger.ErrNotFound)
		f.pricing.EXPECT().CalculatePoints(gomock.Any(), amount).Return(int64(25), nil)
		f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params ledger.CreditParams) (*ledger.Entry, error) {
				assert.Equal(t, customerID, params.CustomerID)
				assert.Equal(t, int64(25), params.Points)
				assert.Equal(t, ledger.TypeQRPurchase, params.Type)
				assert.Equal(t, "ORD-1001", params.ReferenceID)
				require.NotNil(t, params.OrderAmount)
				assert.True(t, amount.Equal(*params.OrderAmount))

				return &ledger.Entry{ID: uuid.New(), Points: 25}, nil
			})
		f.challenges.EXPECT().Evaluate(gomock.Any(), customerID, gomock.Any()).DoAndReturn(
			func(_ any, _ uuid.UUID, ev challenge.Event) error {
				assert.True(t, amount.Equal(ev.OrderAmount))
				assert.Equal(t, challenge.ChannelInStore, ev.Channel)

				return nil
			})
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(125), nil)

		silver := &tier.Tier{ID: uuid.New(), Name: "Silver", Threshold: 100}
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(125)).Return(silver, nil)

		result, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1001",
			Amount:      amount,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
			OccurredAt:  time.Now(),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(25), result.Points)
		assert.Equal(t, int64(125), result.Balance)
		assert.Equal(t, silver, result.Tier)
		require.NotNil(t, result.Entry)
	})

	t.Run("replayed reference", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1001").
			Return(&ledger.Entry{ID: uuid.New()}, nil)

		_, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1001",
			Amount:      amount,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
		})

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("duplicate race at credit time", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1001").
			Return(nil, ledger.ErrNotFound)
		f.pricing.EXPECT().CalculatePoints(gomock.Any(), amount).Return(int64(25), nil)
		f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).
			Return(nil, ledger.ErrDuplicateReference)

		_, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1001",
			Amount:      amount,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
		})

		assert.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("missing reference", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID: customerID,
			Amount:     amount,
		})

		assert.ErrorIs(t, err, ErrMissingReference)
	})

	t.Run("challenge failure does not fail the order", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1002").
			Return(nil, ledger.ErrNotFound)
		f.pricing.EXPECT().CalculatePoints(gomock.Any(), amount).Return(int64(25), nil)
		f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).
			Return(&ledger.Entry{ID: uuid.New(), Points: 25}, nil)
		f.challenges.EXPECT().Evaluate(gomock.Any(), customerID, gomock.Any()).
			Return(assert.AnError)
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(25), nil)
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(25)).Return(nil, nil)

		result, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1002",
			Amount:      amount,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
		})
		require.NoError(t, err)

		assert.NotNil(t, result.Entry)
	})

	t.Run("zero points skips the credit and the evaluation", func(t *testing.T) {
		f := newFixture(t)

		small := decimal.RequireFromString("0.50")

		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1003").
			Return(nil, ledger.ErrNotFound)
		f.pricing.EXPECT().CalculatePoints(gomock.Any(), small).Return(int64(0), nil)
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(0), nil)
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(0)).Return(nil, nil)

		result, err := f.svc.ProcessOrder(context.Background(), OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1003",
			Amount:      small,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
		})
		require.NoError(t, err)

		assert.Nil(t, result.Entry)
		assert.Zero(t, result.Points)
	})

	t.Run("replayed zero-point reference never re-runs challenges", func(t *testing.T) {
		f := newFixture(t)

		small := decimal.RequireFromString("0.50")

		// No entry is ever written for a zero-point order, so both passes
		// miss the reference lookup. Neither may touch the challenge engine.
		f.ledger.EXPECT().FindByReference(gomock.Any(), "ORD-1004").
			Return(nil, ledger.ErrNotFound).Times(2)
		f.pricing.EXPECT().CalculatePoints(gomock.Any(), small).Return(int64(0), nil).Times(2)
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(0), nil).Times(2)
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(0)).Return(nil, nil).Times(2)

		params := OrderParams{
			CustomerID:  customerID,
			ReferenceID: "ORD-1004",
			Amount:      small,
			EntryType:   ledger.TypeQRPurchase,
			Channel:     challenge.ChannelInStore,
		}

		_, err := f.svc.ProcessOrder(context.Background(), params)
		require.NoError(t, err)

		_, err = f.svc.ProcessOrder(context.Background(), params)
		require.NoError(t, err)
	})
}

func TestCreditPoints(t *testing.T) {
	customerID := uuid.New()

	f := newFixture(t)

	f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, params ledger.CreditParams) (*ledger.Entry, error) {
			assert.Equal(t, ledger.TypeManualCredit, params.Type)
			assert.Equal(t, int64(100), params.Points)
			assert.Equal(t, 30, params.ExpiryDays)

			return &ledger.Entry{ID: uuid.New(), Points: 100}, nil
		})
	f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(100), nil)
	f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(100)).Return(nil, nil)

	result, err := f.svc.CreditPoints(context.Background(), ManualCreditParams{
		CustomerID: customerID,
		Points:     100,
		Note:       "goodwill",
		ExpiryDays: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.Balance)
}

func TestDebitPoints(t *testing.T) {
	customerID := uuid.New()

	t.Run("redeem uses the redeem entry type", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params ledger.DebitParams) (*ledger.Entry, error) {
				assert.Equal(t, ledger.TypeRedeem, params.Type)

				return &ledger.Entry{ID: uuid.New(), Points: -50}, nil
			})
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(50), nil)
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(50)).Return(nil, nil)

		_, err := f.svc.DebitPoints(context.Background(), ManualDebitParams{
			CustomerID: customerID,
			Points:     50,
			Redeem:     true,
		})

		require.NoError(t, err)
	})

	t.Run("insufficient balance propagates", func(t *testing.T) {
		f := newFixture(t)

		f.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).
			Return(nil, ledger.ErrInsufficientPoints)

		_, err := f.svc.DebitPoints(context.Background(), ManualDebitParams{
			CustomerID: customerID,
			Points:     500,
		})

		assert.ErrorIs(t, err, ledger.ErrInsufficientPoints)
	})
}

func TestProfileCompleted(t *testing.T) {
	customerID := uuid.New()

	profileChallenge := &challenge.Challenge{
		ID:            uuid.New(),
		Name:          "Complete your profile",
		Type:          challenge.TypeProfileBased,
		CustomerUsage: 1,
		BonusPoints:   50,
	}

	t.Run("credits the bonus once", func(t *testing.T) {
		f := newFixture(t)

		f.challenges.EXPECT().EnrollProfileBased(gomock.Any(), customerID).
			Return(profileChallenge, nil)
		f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params ledger.CreditParams) (*ledger.Entry, error) {
				assert.Equal(t, ledger.TypeProfileComplete, params.Type)
				assert.Equal(t, int64(50), params.Points)
				assert.Equal(t, "PROFILE:"+customerID.String(), params.ReferenceID)
				require.NotNil(t, params.ChallengeID)
				assert.Equal(t, profileChallenge.ID, *params.ChallengeID)

				return &ledger.Entry{ID: uuid.New(), Points: 50}, nil
			})
		f.ledger.EXPECT().AvailablePoints(gomock.Any(), customerID).Return(int64(50), nil)
		f.tiers.EXPECT().Reconcile(gomock.Any(), customerID, int64(50)).Return(nil, nil)

		entry, err := f.svc.ProfileCompleted(context.Background(), customerID)
		require.NoError(t, err)

		assert.NotNil(t, entry)
	})

	t.Run("already enrolled is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.challenges.EXPECT().EnrollProfileBased(gomock.Any(), customerID).
			Return(nil, challenge.ErrAlreadyEnrolled)

		entry, err := f.svc.ProfileCompleted(context.Background(), customerID)
		require.NoError(t, err)

		assert.Nil(t, entry)
	})

	t.Run("no active profile challenge is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.challenges.EXPECT().EnrollProfileBased(gomock.Any(), customerID).
			Return(nil, challenge.ErrNotFound)

		entry, err := f.svc.ProfileCompleted(context.Background(), customerID)
		require.NoError(t, err)

		assert.Nil(t, entry)
	})

	t.Run("duplicate bonus reference settles into a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.challenges.EXPECT().EnrollProfileBased(gomock.Any(), customerID).
			Return(profileChallenge, nil)
		f.ledger.EXPECT().Credit(gomock.Any(), gomock.Any()).
			Return(nil, ledger.ErrDuplicateReference)

		entry, err := f.svc.ProfileCompleted(context.Background(), customerID)
		require.NoError(t, err)

		assert.Nil(t, entry)
	})

	t.Run("multi-use profile challenge defers the bonus", func(t *testing.T) {
		f := newFixture(t)

		multi := &challenge.Challenge{
			ID:            uuid.New(),
			Type:          challenge.TypeProfileBased,
			CustomerUsage: 3,
			BonusPoints:   50,
		}

		f.challenges.EXPECT().EnrollProfileBased(gomock.Any(), customerID).
			Return(multi, nil)

		entry, err := f.svc.ProfileCompleted(context.Background(), customerID)
		require.NoError(t, err)

		assert.Nil(t, entry)
	})
}
