package customer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSaveMeasurement(t *testing.T) {
	customerID := uuid.New()

	t.Run("final field completes the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetCustomer(gomock.Any(), customerID).
			Return(&Customer{ID: customerID}, nil)
		repo.EXPECT().GetMeasurement(gomock.Any(), customerID).
			Return(&Measurement{
				CustomerID: customerID,
				Length:     dec("71"),
				Width:      dec("52"),
				Waist:      dec("84"),
			}, nil)
		repo.EXPECT().UpsertMeasurement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, m *Measurement) error {
				assert.True(t, m.Complete())
				return nil
			})
		repo.EXPECT().MarkProfileCompleted(gomock.Any(), customerID).Return(true, nil)

		m, completed, err := NewService(repo).SaveMeasurement(context.Background(), customerID, MeasurementParams{
			Hip: dec("96"),
		})
		require.NoError(t, err)

		assert.True(t, completed)
		assert.True(t, decimal.RequireFromString("96").Equal(*m.Hip))
		assert.True(t, decimal.RequireFromString("71").Equal(*m.Length))
	})

	t.Run("partial save does not complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetCustomer(gomock.Any(), customerID).
			Return(&Customer{ID: customerID}, nil)
		repo.EXPECT().GetMeasurement(gomock.Any(), customerID).
			Return(nil, ErrNotFound)
		repo.EXPECT().UpsertMeasurement(gomock.Any(), gomock.Any()).Return(nil)

		m, completed, err := NewService(repo).SaveMeasurement(context.Background(), customerID, MeasurementParams{
			Length: dec("71"),
			Width:  dec("52"),
		})
		require.NoError(t, err)

		assert.False(t, completed)
		assert.False(t, m.Complete())
		assert.Nil(t, m.Waist)
	})

	t.Run("already completed profile does not transition again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetCustomer(gomock.Any(), customerID).
			Return(&Customer{ID: customerID, ProfileCompleted: true}, nil)
		repo.EXPECT().GetMeasurement(gomock.Any(), customerID).
			Return(&Measurement{
				CustomerID: customerID,
				Length:     dec("71"),
				Width:      dec("52"),
				Waist:      dec("84"),
				Hip:        dec("96"),
			}, nil)
		repo.EXPECT().UpsertMeasurement(gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().MarkProfileCompleted(gomock.Any(), customerID).Return(false, nil)

		_, completed, err := NewService(repo).SaveMeasurement(context.Background(), customerID, MeasurementParams{
			Waist: dec("85"),
		})
		require.NoError(t, err)

		assert.False(t, completed)
	})

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().GetCustomer(gomock.Any(), customerID).Return(nil, ErrNotFound)

		_, _, err := NewService(repo).SaveMeasurement(context.Background(), customerID, MeasurementParams{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreate(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, c *Customer) error {
				c.ID = uuid.New()
				return nil
			})

		got, err := NewService(repo).Create(context.Background(), CreateParams{
			Email:    "ana@example.com",
			FullName: "Ana Lind",
		})
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", got.Email)
		assert.False(t, got.ProfileCompleted)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		existing := &Customer{ID: uuid.New(), Email: "ana@example.com", FullName: "Ana Lind"}

		repo.EXPECT().GetCustomer(gomock.Any(), existing.ID).Return(existing, nil)
		repo.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any()).Return(nil)

		name := "Ana Lindqvist"

		got, err := NewService(repo).Update(context.Background(), existing.ID, UpdateParams{FullName: &name})
		require.NoError(t, err)

		assert.Equal(t, "Ana Lindqvist", got.FullName)
		assert.Equal(t, "ana@example.com", got.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepository(ctrl)

		repo.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(ErrDuplicateEmail)

		_, err := NewService(repo).Create(context.Background(), CreateParams{Email: "ana@example.com"})

		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}
