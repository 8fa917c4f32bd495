package expiry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/expiry"
)

func TestService_ActiveExpiryDays(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *expiry.MockRepository)
		wantDays  int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "ConfiguredValue",
			setupMock: func(m *expiry.MockRepository) {
				m.EXPECT().ActiveDefault(gomock.Any()).Return(&expiry.Default{ExpiryDays: 180, Active: true}, nil)
			},
			wantDays: 180,
		},
		{
			name: "NoConfigurationFallsBack",
			setupMock: func(m *expiry.MockRepository) {
				m.EXPECT().ActiveDefault(gomock.Any()).Return(nil, expiry.ErrNotFound)
			},
			wantDays: expiry.DefaultExpiryDays,
		},
		{
			name: "StorageError",
			setupMock: func(m *expiry.MockRepository) {
				m.EXPECT().ActiveDefault(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expiry.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := expiry.NewService(repo)
			days, err := svc.ActiveExpiryDays(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &expiry.Default{Name: "standard", ExpiryDays: 365}

	repo := expiry.NewMockRepository(ctrl)
	repo.EXPECT().GetDefault(gomock.Any(), gomock.Any()).Return(existing, nil)
	repo.EXPECT().UpdateDefault(gomock.Any(), existing).Return(nil)

	days := 90
	active := true

	svc := expiry.NewService(repo)
	updated, err := svc.Update(context.Background(), existing.ID, expiry.UpdateParams{
		ExpiryDays: &days,
		Active:     &active,
	})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.ExpiryDays)
	assert.True(t, updated.Active)
	assert.Equal(t, "standard", updated.Name)
}
