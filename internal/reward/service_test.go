package reward

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/tier"
)

type fixture struct {
	repo   *MockRepository
	ledger *MockLedger
	tiers  *MockTiers
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:   NewMockRepository(ctrl),
		ledger: NewMockLedger(ctrl),
		tiers:  NewMockTiers(ctrl),
	}
	f.svc = NewService(f.repo, f.ledger, f.tiers)

	return f
}

func freeEspresso(cost int64) *Reward {
	return &Reward{
		ID:         uuid.New(),
		Name:       "Free Espresso",
		PointsCost: cost,
		Active:     true,
	}
}

func TestRedeem(t *testing.T) {
	customerID := uuid.New()

	t.Run("debits the cost and records the entry", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)
		entryID := uuid.New()

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ListRewardTiers(gomock.Any(), r.ID).Return(nil, nil)
		f.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params ledger.DebitParams) (*ledger.Entry, error) {
				assert.Equal(t, customerID, params.CustomerID)
				assert.Equal(t, int64(200), params.Points)
				assert.Equal(t, ledger.TypeRedeem, params.Type)
				assert.Contains(t, params.ReferenceID, "REDEMPTION:")
				return &ledger.Entry{ID: entryID, Points: -200}, nil
			})
		f.repo.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, red *Redemption) error {
				assert.Equal(t, r.ID, red.RewardID)
				assert.Equal(t, int64(200), red.PointsSpent)
				require.NotNil(t, red.EntryID)
				assert.Equal(t, entryID, *red.EntryID)
				return nil
			})

		red, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})
		require.NoError(t, err)

		assert.Equal(t, customerID, red.CustomerID)
	})

	t.Run("insufficient balance leaves no record", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ListRewardTiers(gomock.Any(), r.ID).Return(nil, nil)
		f.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).
			Return(nil, ledger.ErrInsufficientPoints)

		_, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})

		assert.ErrorIs(t, err, ledger.ErrInsufficientPoints)
	})

	t.Run("gated reward needs a linked tier", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)
		goldID := uuid.New()

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ListRewardTiers(gomock.Any(), r.ID).Return([]uuid.UUID{goldID}, nil)
		f.tiers.EXPECT().CustomerTiers(gomock.Any(), customerID).
			Return([]*tier.Assignment{{TierID: uuid.New(), CustomerID: customerID}}, nil)

		_, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})

		assert.ErrorIs(t, err, ErrTierRequired)
	})

	t.Run("holding the gate tier unlocks the reward", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)
		goldID := uuid.New()

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ListRewardTiers(gomock.Any(), r.ID).Return([]uuid.UUID{goldID}, nil)
		f.tiers.EXPECT().CustomerTiers(gomock.Any(), customerID).
			Return([]*tier.Assignment{{TierID: goldID, CustomerID: customerID}}, nil)
		f.ledger.EXPECT().Debit(gomock.Any(), gomock.Any()).
			Return(&ledger.Entry{ID: uuid.New(), Points: -200}, nil)
		f.repo.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})

		require.NoError(t, err)
	})

	t.Run("zero-cost reward skips the debit", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(0)

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().ListRewardTiers(gomock.Any(), r.ID).Return(nil, nil)
		f.repo.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).Return(nil)

		red, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})
		require.NoError(t, err)

		assert.Nil(t, red.EntryID)
		assert.Zero(t, red.PointsSpent)
	})

	t.Run("inactive reward", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)
		r.Active = false

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)

		_, err := f.svc.Redeem(context.Background(), RedeemParams{
			RewardID:   r.ID,
			CustomerID: customerID,
		})

		assert.ErrorIs(t, err, ErrRewardInactive)
	})
}

func TestCreate(t *testing.T) {
	t.Run("creates and links tiers", func(t *testing.T) {
		f := newFixture(t)

		goldID := uuid.New()

		f.repo.EXPECT().GetRewardByName(gomock.Any(), "Free Espresso").Return(nil, ErrNotFound)
		f.repo.EXPECT().CreateReward(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *Reward) error {
				r.ID = uuid.New()
				return nil
			})
		f.repo.EXPECT().SetRewardTiers(gomock.Any(), gomock.Any(), []uuid.UUID{goldID}).Return(nil)

		r, err := f.svc.Create(context.Background(), CreateParams{
			Name:       "Free Espresso",
			PointsCost: 200,
			Active:     true,
			TierIDs:    []uuid.UUID{goldID},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(200), r.PointsCost)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetRewardByName(gomock.Any(), "Free Espresso").
			Return(freeEspresso(200), nil)

		_, err := f.svc.Create(context.Background(), CreateParams{Name: "Free Espresso"})

		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("negative cost", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), CreateParams{
			Name:       "Free Espresso",
			PointsCost: -1,
		})

		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})
}

func TestDelete(t *testing.T) {
	t.Run("refuses once redeemed", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().CountRewardRedemptions(gomock.Any(), r.ID).Return(3, nil)

		err := f.svc.Delete(context.Background(), r.ID)

		assert.ErrorIs(t, err, ErrRewardHasRedemptions)
	})

	t.Run("soft deletes an unredeemed reward", func(t *testing.T) {
		f := newFixture(t)

		r := freeEspresso(200)

		f.repo.EXPECT().GetReward(gomock.Any(), r.ID).Return(r, nil)
		f.repo.EXPECT().CountRewardRedemptions(gomock.Any(), r.ID).Return(0, nil)
		f.repo.EXPECT().DeleteReward(gomock.Any(), r.ID).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), r.ID))
	})
}
