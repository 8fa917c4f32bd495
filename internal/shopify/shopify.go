// Package shopify pulls orders from the Shopify admin API and feeds
// fulfilled ones into the loyalty pipeline.
package shopify

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("shopify order not found")

	// ErrNotFulfilled means the order exists but has not shipped yet; no
	// points are credited and the caller may retry after fulfillment.
	ErrNotFulfilled = errors.New("shopify order not fulfilled")
)

const fulfillmentFulfilled = "fulfilled"

// Order is the slice of the admin API order payload we act on.
type Order struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	Currency          string          `json:"currency"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Fulfilled reports whether the order has shipped and is eligible to earn
// points.
func (o *Order) Fulfilled() bool {
	return o.FulfillmentStatus == fulfillmentFulfilled
}
