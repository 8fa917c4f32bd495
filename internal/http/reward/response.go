package reward

import (
	"time"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/reward"
)

type rewardResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	PointsCost  int64       `json:"points_cost"`
	Active      bool        `json:"active"`
	TierIDs     []uuid.UUID `json:"tier_ids,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

func toResponse(r *reward.Reward) rewardResponse {
	return rewardResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		PointsCost:  r.PointsCost,
		Active:      r.Active,
		TierIDs:     r.TierIDs,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toResponseList(rewards []*reward.Reward) []rewardResponse {
	resp := make([]rewardResponse, len(rewards))
	for i, r := range rewards {
		resp[i] = toResponse(r)
	}

	return resp
}

type redemptionResponse struct {
	ID          uuid.UUID  `json:"id"`
	RewardID    uuid.UUID  `json:"reward_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	EntryID     *uuid.UUID `json:"entry_id,omitempty"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	PointsSpent int64      `json:"points_spent"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toRedemptionResponse(r *reward.Redemption) redemptionResponse {
	return redemptionResponse{
		ID:          r.ID,
		RewardID:    r.RewardID,
		CustomerID:  r.CustomerID,
		EntryID:     r.EntryID,
		LocationID:  r.LocationID,
		PointsSpent: r.PointsSpent,
		CreatedAt:   r.CreatedAt,
	}
}

func toRedemptionList(redemptions []*reward.Redemption) []redemptionResponse {
	resp := make([]redemptionResponse, len(redemptions))
	for i, r := range redemptions {
		resp[i] = toRedemptionResponse(r)
	}

	return resp
}
