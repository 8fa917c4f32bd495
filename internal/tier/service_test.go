package tier

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func activeTier(name string, threshold int64) *Tier {
	return &Tier{
		ID:        uuid.New(),
		Name:      name,
		Threshold: threshold,
		Active:    true,
	}
}

func TestResolve(t *testing.T) {
	bronze := activeTier("Bronze", 0)
	silver := activeTier("Silver", 100)
	gold := activeTier("Gold", 500)
	platinum := activeTier("Platinum", 1000)

	tiers := []*Tier{platinum, gold, silver, bronze}

	tests := []struct {
		name   string
		tiers  []*Tier
		points int64
		want   *Tier
	}{
		{
			name:   "between thresholds picks the lower",
			tiers:  tiers,
			points: 750,
			want:   gold,
		},
		{
			name:   "one below a threshold does not qualify",
			tiers:  tiers,
			points: 999,
			want:   gold,
		},
		{
			name:   "exact threshold qualifies",
			tiers:  tiers,
			points: 1000,
			want:   platinum,
		},
		{
			name:   "zero balance lands on the zero threshold",
			tiers:  tiers,
			points: 0,
			want:   bronze,
		},
		{
			name:   "no tier qualifies",
			tiers:  []*Tier{silver, gold},
			points: 50,
			want:   nil,
		},
		{
			name:   "inactive tiers are skipped",
			tiers:  []*Tier{{ID: uuid.New(), Threshold: 500, Active: false}, silver},
			points: 750,
			want:   silver,
		},
		{
			name:   "no tiers",
			tiers:  nil,
			points: 750,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.tiers, tt.points)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDuplicateThresholdIsDeterministic(t *testing.T) {
	a := activeTier("A", 500)
	b := activeTier("B", 500)

	want := a
	if b.ID.String() < a.ID.String() {
		want = b
	}

	assert.Equal(t, want, Resolve([]*Tier{a, b}, 600))
	assert.Equal(t, want, Resolve([]*Tier{b, a}, 600))
}

func TestReconcile(t *testing.T) {
	customerID := uuid.New()

	silver := activeTier("Silver", 100)
	gold := activeTier("Gold", 500)

	t.Run("assigns target and removes lower tiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().ListActiveTiers(gomock.Any()).Return([]*Tier{gold, silver}, nil)
		repo.EXPECT().AssignTier(gomock.Any(), gold.ID, customerID).Return(nil)
		repo.EXPECT().RemoveTiersBelow(gomock.Any(), customerID, gold.Threshold).Return(nil)

		got, err := NewService(repo).Reconcile(context.Background(), customerID, 750)
		require.NoError(t, err)

		assert.Equal(t, gold, got)
	})

	t.Run("no qualifying tier leaves assignments alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().ListActiveTiers(gomock.Any()).Return([]*Tier{gold, silver}, nil)

		got, err := NewService(repo).Reconcile(context.Background(), customerID, 50)
		require.NoError(t, err)

		assert.Nil(t, got)
	})

	t.Run("assign failure stops before removal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().ListActiveTiers(gomock.Any()).Return([]*Tier{silver}, nil)
		repo.EXPECT().AssignTier(gomock.Any(), silver.ID, customerID).Return(assert.AnError)

		_, err := NewService(repo).Reconcile(context.Background(), customerID, 200)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCreate(t *testing.T) {
	t.Run("creates when threshold is free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetTierByThreshold(gomock.Any(), int64(500)).Return(nil, ErrNotFound)
		repo.EXPECT().CreateTier(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, created *Tier) error {
				created.ID = uuid.New()
				return nil
			})

		got, err := NewService(repo).Create(context.Background(), CreateParams{
			Name:      "Gold",
			Threshold: 500,
			Active:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, "Gold", got.Name)
		assert.Equal(t, int64(500), got.Threshold)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("refuses duplicate threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetTierByThreshold(gomock.Any(), int64(500)).Return(activeTier("Gold", 500), nil)

		_, err := NewService(repo).Create(context.Background(), CreateParams{Name: "Other", Threshold: 500})

		assert.ErrorIs(t, err, ErrDuplicateThreshold)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("threshold change checks for collisions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		existing := activeTier("Silver", 100)
		other := activeTier("Gold", 500)

		repo.EXPECT().GetTier(gomock.Any(), existing.ID).Return(existing, nil)
		repo.EXPECT().GetTierByThreshold(gomock.Any(), int64(500)).Return(other, nil)

		threshold := int64(500)

		_, err := NewService(repo).Update(context.Background(), existing.ID, UpdateParams{Threshold: &threshold})

		assert.ErrorIs(t, err, ErrDuplicateThreshold)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		existing := activeTier("Silver", 100)
		existing.Description = "original"

		repo.EXPECT().GetTier(gomock.Any(), existing.ID).Return(existing, nil)
		repo.EXPECT().UpdateTier(gomock.Any(), gomock.Any()).Return(nil)

		name := "Sterling"

		got, err := NewService(repo).Update(context.Background(), existing.ID, UpdateParams{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Sterling", got.Name)
		assert.Equal(t, "original", got.Description)
		assert.Equal(t, int64(100), got.Threshold)
	})
}

func TestDelete(t *testing.T) {
	tierID := uuid.New()

	t.Run("deletes an unused tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetTier(gomock.Any(), tierID).Return(activeTier("Gold", 500), nil)
		repo.EXPECT().CountTierCustomers(gomock.Any(), tierID).Return(0, nil)
		repo.EXPECT().DeleteTier(gomock.Any(), tierID).Return(nil)

		assert.NoError(t, NewService(repo).Delete(context.Background(), tierID))
	})

	t.Run("refuses while customers hold the tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetTier(gomock.Any(), tierID).Return(activeTier("Gold", 500), nil)
		repo.EXPECT().CountTierCustomers(gomock.Any(), tierID).Return(3, nil)

		assert.ErrorIs(t, NewService(repo).Delete(context.Background(), tierID), ErrTierInUse)
	})

	t.Run("missing tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetTier(gomock.Any(), tierID).Return(nil, ErrNotFound)

		assert.ErrorIs(t, NewService(repo).Delete(context.Background(), tierID), ErrNotFound)
	})
}
