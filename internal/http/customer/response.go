package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/customer"
)

type customerResponse struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	FullName         string     `json:"full_name,omitempty"`
	ProfileCompleted bool       `json:"profile_completed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func toResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:               c.ID,
		Email:            c.Email,
		FullName:         c.FullName,
		ProfileCompleted: c.ProfileCompleted,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toResponseList(customers []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	return resp
}

type measurementResponse struct {
	CustomerID       uuid.UUID        `json:"customer_id"`
	Length           *decimal.Decimal `json:"length,omitempty"`
	Width            *decimal.Decimal `json:"width,omitempty"`
	Waist            *decimal.Decimal `json:"waist,omitempty"`
	Hip              *decimal.Decimal `json:"hip,omitempty"`
	ProfileCompleted bool             `json:"profile_completed"`
}

func toMeasurementResponse(m *customer.Measurement, completed bool) measurementResponse {
	return measurementResponse{
		CustomerID:       m.CustomerID,
		Length:           m.Length,
		Width:            m.Width,
		Waist:            m.Waist,
		Hip:              m.Hip,
		ProfileCompleted: completed,
	}
}
