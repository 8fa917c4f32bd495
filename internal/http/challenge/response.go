package challenge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/challenge"
)

type challengeResponse struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Type              challenge.Type    `json:"type"`
	RequiredAmount    decimal.Decimal   `json:"required_amount"`
	RequiredPurchases int               `json:"required_purchases,omitempty"`
	DurationDays      *int              `json:"duration_days,omitempty"`
	CustomerUsage     int               `json:"customer_usage"`
	Channel           challenge.Channel `json:"channel"`
	BonusPoints       int64             `json:"bonus_points"`
	BonusPercent      decimal.Decimal   `json:"bonus_percent"`
	StartAt           *time.Time        `json:"start_at,omitempty"`
	EndAt             *time.Time        `json:"end_at,omitempty"`
	Active            bool              `json:"active"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(c *challenge.Challenge) challengeResponse {
	return challengeResponse{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		Type:              c.Type,
		RequiredAmount:    c.RequiredAmount,
		RequiredPurchases: c.RequiredPurchases,
		DurationDays:      c.DurationDays,
		CustomerUsage:     c.CustomerUsage,
		Channel:           c.Channel,
		BonusPoints:       c.BonusPoints,
		BonusPercent:      c.BonusPercent,
		StartAt:           c.StartAt,
		EndAt:             c.EndAt,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toResponseList(challenges []*challenge.Challenge) []challengeResponse {
	resp := make([]challengeResponse, len(challenges))
	for i, c := range challenges {
		resp[i] = toResponse(c)
	}

	return resp
}

type participantResponse struct {
	ID            uuid.UUID  `json:"id"`
	ChallengeID   uuid.UUID  `json:"challenge_id"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	ProgressCount int        `json:"progress_count"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toParticipantResponse(p *challenge.Participant) participantResponse {
	return participantResponse{
		ID:            p.ID,
		ChallengeID:   p.ChallengeID,
		CustomerID:    p.CustomerID,
		ProgressCount: p.ProgressCount,
		Completed:     p.Completed,
		CompletedAt:   p.CompletedAt,
		CreatedAt:     p.CreatedAt,
	}
}

func toParticipantResponseList(participants []*challenge.Participant) []participantResponse {
	resp := make([]participantResponse, len(participants))
	for i, p := range participants {
		resp[i] = toParticipantResponse(p)
	}

	return resp
}

type statsResponse struct {
	Participants int `json:"participants"`
	Completed    int `json:"completed"`
}
