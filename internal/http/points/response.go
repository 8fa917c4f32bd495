package points

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/loyalty"
)

type mutationResponse struct {
	EntryID uuid.UUID `json:"entry_id"`
	Points  int64     `json:"points"`
	Balance int64     `json:"balance"`
	Tier    *string   `json:"tier,omitempty"`
}

func toMutationResponse(result *loyalty.OrderResult) mutationResponse {
	resp := mutationResponse{
		Points:  result.Points,
		Balance: result.Balance,
	}

	if result.Entry != nil {
		resp.EntryID = result.Entry.ID
	}

	if result.Tier != nil {
		resp.Tier = &result.Tier.Name
	}

	return resp
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type entryResponse struct {
	ID          uuid.UUID        `json:"id"`
	CustomerID  uuid.UUID        `json:"customer_id"`
	Points      int64            `json:"points"`
	Type        ledger.EntryType `json:"type"`
	ReferenceID string           `json:"reference_id,omitempty"`
	ChallengeID *uuid.UUID       `json:"challenge_id,omitempty"`
	LocationID  *uuid.UUID       `json:"location_id,omitempty"`
	OrderAmount *decimal.Decimal `json:"order_amount,omitempty"`
	Note        string           `json:"note,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toEntryList(entries []*ledger.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{
			ID:          e.ID,
			CustomerID:  e.CustomerID,
			Points:      e.Points,
			Type:        e.Type,
			ReferenceID: e.ReferenceID,
			ChallengeID: e.ChallengeID,
			LocationID:  e.LocationID,
			OrderAmount: e.OrderAmount,
			Note:        e.Note,
			ExpiryDate:  e.ExpiryDate,
			CreatedAt:   e.CreatedAt,
		}
	}

	return resp
}

type batchResponse struct {
	ID              uuid.UUID `json:"id"`
	PointsAllocated int64     `json:"points_allocated"`
	PointsRemaining int64     `json:"points_remaining"`
	ExpiresAt       time.Time `json:"expires_at"`
	CreatedAt       time.Time `json:"created_at"`
}

func toBatchList(batches []*ledger.Batch) []batchResponse {
	resp := make([]batchResponse, len(batches))
	for i, b := range batches {
		resp[i] = batchResponse{
			ID:              b.ID,
			PointsAllocated: b.PointsAllocated,
			PointsRemaining: b.PointsRemaining,
			ExpiresAt:       b.ExpiresAt,
			CreatedAt:       b.CreatedAt,
		}
	}

	return resp
}
