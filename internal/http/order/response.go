package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/loyalty"
)

type orderResultResponse struct {
	EntryID   *uuid.UUID `json:"entry_id,omitempty"`
	Points    int64      `json:"points"`
	Balance   int64      `json:"balance"`
	Tier      *string    `json:"tier,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func toResponse(result *loyalty.OrderResult) orderResultResponse {
	resp := orderResultResponse{
		Points:  result.Points,
		Balance: result.Balance,
	}

	if result.Entry != nil {
		resp.EntryID = &result.Entry.ID
		resp.CreatedAt = &result.Entry.CreatedAt
	}

	if result.Tier != nil {
		resp.Tier = &result.Tier.Name
	}

	return resp
}
