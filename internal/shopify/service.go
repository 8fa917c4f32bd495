package shopify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/loyalty"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=shopify
type OrderSource interface {
	GetOrderByNumber(ctx context.Context, number string) (*Order, error)
}

type Processor interface {
	ProcessOrder(ctx context.Context, params loyalty.OrderParams) (*loyalty.OrderResult, error)
}

type Service struct {
	source    OrderSource
	processor Processor
}

func NewService(source OrderSource, processor Processor) *Service {
	return &Service{source: source, processor: processor}
}

// ReferenceID is the ledger idempotency key for a Shopify order. It is
// derived from the immutable numeric id, not the display name, so renamed
// orders cannot earn twice.
func ReferenceID(orderID int64) string {
	return "SHOPIFY:" + strconv.FormatInt(orderID, 10)
}

// ProcessOrder fetches an order by number and credits points for it if it
// has been fulfilled. Unfulfilled orders fail with ErrNotFulfilled and leave
// no trace, so the same number can be submitted again after shipping.
func (s *Service) ProcessOrder(ctx context.Context, customerID uuid.UUID, orderNumber string) (*loyalty.OrderResult, error) {
	order, err := s.source.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("fetching shopify order %q: %w", orderNumber, err)
	}

	if !order.Fulfilled() {
		return nil, ErrNotFulfilled
	}

	return s.processor.ProcessOrder(ctx, loyalty.OrderParams{
		CustomerID:  customerID,
		ReferenceID: ReferenceID(order.ID),
		Amount:      order.TotalPrice,
		EntryType:   ledger.TypeShopifyOrder,
		Channel:     challenge.ChannelOnline,
		OccurredAt:  order.CreatedAt,
	})
}
