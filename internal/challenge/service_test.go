package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
)

func purchaseChallenge(usage int, bonus int64) *challenge.Challenge {
	return &challenge.Challenge{
		ID:             uuid.New(),
		Name:           "Big Spender",
		Type:           challenge.TypePurchaseBased,
		RequiredAmount: decimal.NewFromInt(100),
		CustomerUsage:  usage,
		Channel:        challenge.ChannelAny,
		BonusPoints:    bonus,
		Active:         true,
	}
}

func TestChallenge_EnrollsOn(t *testing.T) {
	now := time.Now()
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	type testCase struct {
		name      string
		challenge *challenge.Challenge
		event     challenge.Event
		want      bool
	}

	tests := []testCase{
		{
			name:      "PurchaseMeetsAmount",
			challenge: purchaseChallenge(1, 50),
			event:     challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: now},
			want:      true,
		},
		{
			name:      "PurchaseBelowAmount",
			challenge: purchaseChallenge(1, 50),
			event:     challenge.Event{OrderAmount: decimal.NewFromInt(99), OccurredAt: now},
			want:      false,
		},
		{
			name: "ChannelMeetsAmount",
			challenge: &challenge.Challenge{
				Type:           challenge.TypeChannelBased,
				RequiredAmount: decimal.NewFromInt(10),
				Channel:        challenge.ChannelOnline,
			},
			event: challenge.Event{OrderAmount: decimal.NewFromInt(20), Channel: challenge.ChannelOnline, OccurredAt: now},
			want:  true,
		},
		{
			name: "TimeBasedInsideWindow",
			challenge: &challenge.Challenge{
				Type:           challenge.TypeTimeBased,
				RequiredAmount: decimal.NewFromInt(50),
				StartAt:        &start,
				EndAt:          &end,
			},
			event: challenge.Event{OrderAmount: decimal.NewFromInt(60), OccurredAt: now},
			want:  true,
		},
		{
			name: "TimeBasedOutsideWindow",
			challenge: &challenge.Challenge{
				Type:           challenge.TypeTimeBased,
				RequiredAmount: decimal.NewFromInt(50),
				StartAt:        &start,
				EndAt:          &end,
			},
			event: challenge.Event{OrderAmount: decimal.NewFromInt(60), OccurredAt: end.Add(time.Minute)},
			want:  false,
		},
		{
			name: "ProfileBasedNeverEnrollsFromOrders",
			challenge: &challenge.Challenge{
				Type: challenge.TypeProfileBased,
			},
			event: challenge.Event{OrderAmount: decimal.NewFromInt(1000), OccurredAt: now},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.challenge.EnrollsOn(tt.event))
		})
	}
}

func TestChallenge_ProgressesOn_ChannelMatch(t *testing.T) {
	c := &challenge.Challenge{Type: challenge.TypeChannelBased, Channel: challenge.ChannelOnline}

	assert.True(t, c.ProgressesOn(challenge.Event{Channel: challenge.ChannelOnline}))
	assert.False(t, c.ProgressesOn(challenge.Event{Channel: challenge.ChannelInStore}))

	c.Channel = challenge.ChannelAny
	assert.True(t, c.ProgressesOn(challenge.Event{Channel: challenge.ChannelInStore}))
}

func TestService_Evaluate_EnrollProgressComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(1, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)
	led := challenge.NewMockLedger(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), ev.OccurredAt).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).Return(nil, challenge.ErrParticipantNotFound)
	repo.EXPECT().
		CreateParticipant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *challenge.Participant) error {
			assert.Equal(t, c.ID, p.ChallengeID)
			assert.Equal(t, 0, p.ProgressCount)
			assert.False(t, p.Completed)
			return nil
		})
	repo.EXPECT().IncrementProgress(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 1}, nil)
	repo.EXPECT().CompleteParticipant(gomock.Any(), c.ID, customerID).Return(true, nil)
	led.EXPECT().
		Credit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ledger.CreditParams) (*ledger.Entry, error) {
			assert.Equal(t, customerID, params.CustomerID)
			assert.Equal(t, int64(50), params.Points)
			assert.Equal(t, ledger.TypeChallenge, params.Type)
			require.NotNil(t, params.ChallengeID)
			assert.Equal(t, c.ID, *params.ChallengeID)
			return &ledger.Entry{}, nil
		})

	svc := challenge.NewService(repo, led)
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Evaluate_ProgressWithoutCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(3, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)
	led := challenge.NewMockLedger(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), gomock.Any()).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 1}, nil)
	repo.EXPECT().IncrementProgress(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 2}, nil)

	// No CompleteParticipant and no Credit: target not reached.
	svc := challenge.NewService(repo, led)
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Evaluate_CompletedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(1, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)
	led := challenge.NewMockLedger(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), gomock.Any()).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 1, Completed: true}, nil)

	svc := challenge.NewService(repo, led)
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Evaluate_BelowAmountDoesNotEnroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(1, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(10), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), gomock.Any()).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).Return(nil, challenge.ErrParticipantNotFound)

	svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Evaluate_EnrollmentRaceLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(5, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), gomock.Any()).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).Return(nil, challenge.ErrParticipantNotFound)
	repo.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).Return(challenge.ErrAlreadyEnrolled)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 1}, nil)
	repo.EXPECT().IncrementProgress(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 2}, nil)

	svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Evaluate_CompletionRaceCreditsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(2, 50)
	ev := challenge.Event{OrderAmount: decimal.NewFromInt(150), OccurredAt: time.Now()}

	repo := challenge.NewMockRepository(ctrl)
	led := challenge.NewMockLedger(ctrl)

	repo.EXPECT().ListActiveChallenges(gomock.Any(), gomock.Any()).Return([]*challenge.Challenge{c}, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 1}, nil)
	repo.EXPECT().IncrementProgress(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 2}, nil)
	// Another evaluation completed the participant first: no credit here.
	repo.EXPECT().CompleteParticipant(gomock.Any(), c.ID, customerID).Return(false, nil)

	svc := challenge.NewService(repo, led)
	require.NoError(t, svc.Evaluate(context.Background(), customerID, ev))
}

func TestService_Enroll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerID := uuid.New()
	c := purchaseChallenge(1, 10)

	repo := challenge.NewMockRepository(ctrl)
	repo.EXPECT().GetChallenge(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().CreateParticipant(gomock.Any(), gomock.Any()).Return(challenge.ErrAlreadyEnrolled)

	svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
	_, err := svc.Enroll(context.Background(), c.ID, customerID)
	assert.ErrorIs(t, err, challenge.ErrAlreadyEnrolled)
}

func TestService_EnrollProfileBased(t *testing.T) {
	type testCase struct {
		name          string
		customerUsage int
		wantCompleted bool
	}

	tests := []testCase{
		{name: "SingleShotPreSeededCompleted", customerUsage: 1, wantCompleted: true},
		{name: "MultiUseStartsActive", customerUsage: 3, wantCompleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerID := uuid.New()
			c := &challenge.Challenge{
				ID:            uuid.New(),
				Type:          challenge.TypeProfileBased,
				CustomerUsage: tt.customerUsage,
				BonusPoints:   100,
				Active:        true,
			}

			repo := challenge.NewMockRepository(ctrl)
			repo.EXPECT().ActiveChallengeByType(gomock.Any(), challenge.TypeProfileBased).Return(c, nil)
			repo.EXPECT().
				CreateParticipant(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *challenge.Participant) error {
					assert.Equal(t, 1, p.ProgressCount)
					assert.Equal(t, tt.wantCompleted, p.Completed)
					return nil
				})

			svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
			got, err := svc.EnrollProfileBased(context.Background(), customerID)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestService_UpdateProgress_NotEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := purchaseChallenge(2, 10)
	customerID := uuid.New()

	repo := challenge.NewMockRepository(ctrl)
	repo.EXPECT().GetChallenge(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).Return(nil, challenge.ErrParticipantNotFound)

	svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
	_, err := svc.UpdateProgress(context.Background(), c.ID, customerID)
	assert.ErrorIs(t, err, challenge.ErrParticipantNotFound)
}

func TestService_UpdateProgress_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := purchaseChallenge(2, 10)
	customerID := uuid.New()

	repo := challenge.NewMockRepository(ctrl)
	repo.EXPECT().GetChallenge(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().GetParticipant(gomock.Any(), c.ID, customerID).
		Return(&challenge.Participant{ChallengeID: c.ID, CustomerID: customerID, ProgressCount: 2, Completed: true}, nil)

	svc := challenge.NewService(repo, challenge.NewMockLedger(ctrl))
	_, err := svc.UpdateProgress(context.Background(), c.ID, customerID)
	assert.ErrorIs(t, err, challenge.ErrAlreadyCompleted)
}
