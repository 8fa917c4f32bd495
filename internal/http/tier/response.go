package tier

import (
	"time"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/tier"
)

type tierResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Threshold    int64      `json:"threshold"`
	DisplayOrder int        `json:"display_order"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func toResponse(t *tier.Tier) tierResponse {
	return tierResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Threshold:    t.Threshold,
		DisplayOrder: t.DisplayOrder,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toResponseList(tiers []*tier.Tier) []tierResponse {
	resp := make([]tierResponse, len(tiers))
	for i, t := range tiers {
		resp[i] = toResponse(t)
	}

	return resp
}

type assignmentResponse struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	AssignedAt time.Time     `json:"assigned_at"`
	Tier       *tierResponse `json:"tier,omitempty"`
}

func toAssignmentList(assignments []*tier.Assignment) []assignmentResponse {
	resp := make([]assignmentResponse, len(assignments))

	for i, a := range assignments {
		resp[i] = assignmentResponse{
			ID:         a.ID,
			CustomerID: a.CustomerID,
			AssignedAt: a.AssignedAt,
		}

		if a.Tier != nil {
			t := toResponse(a.Tier)
			resp[i].Tier = &t
		}
	}

	return resp
}
