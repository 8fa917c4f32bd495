package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/loyalty"
)

func TestProcessOrder(t *testing.T) {
	customerID := uuid.New()
	placedAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	fulfilled := &Order{
		ID:                5512345,
		Name:              "#1001",
		TotalPrice:        decimal.RequireFromString("250.00"),
		FulfillmentStatus: "fulfilled",
		CreatedAt:         placedAt,
	}

	t.Run("fulfilled order earns points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockOrderSource(ctrl)
		processor := NewMockProcessor(ctrl)

		source.EXPECT().GetOrderByNumber(gomock.Any(), "1001").Return(fulfilled, nil)
		processor.EXPECT().ProcessOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params loyalty.OrderParams) (*loyalty.OrderResult, error) {
				assert.Equal(t, customerID, params.CustomerID)
				assert.Equal(t, "SHOPIFY:5512345", params.ReferenceID)
				assert.Equal(t, ledger.TypeShopifyOrder, params.EntryType)
				assert.Equal(t, challenge.ChannelOnline, params.Channel)
				assert.Equal(t, placedAt, params.OccurredAt)
				assert.True(t, fulfilled.TotalPrice.Equal(params.Amount))

				return &loyalty.OrderResult{Points: 25}, nil
			})

		result, err := NewService(source, processor).ProcessOrder(context.Background(), customerID, "1001")
		require.NoError(t, err)

		assert.Equal(t, int64(25), result.Points)
	})

	t.Run("unfulfilled order earns nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockOrderSource(ctrl)
		processor := NewMockProcessor(ctrl)

		source.EXPECT().GetOrderByNumber(gomock.Any(), "1002").Return(&Order{
			ID:                5512346,
			FulfillmentStatus: "partial",
		}, nil)

		_, err := NewService(source, processor).ProcessOrder(context.Background(), customerID, "1002")

		assert.ErrorIs(t, err, ErrNotFulfilled)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockOrderSource(ctrl)
		processor := NewMockProcessor(ctrl)

		source.EXPECT().GetOrderByNumber(gomock.Any(), "9999").Return(nil, ErrOrderNotFound)

		_, err := NewService(source, processor).ProcessOrder(context.Background(), customerID, "9999")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestClientGetOrderByNumber(t *testing.T) {
	t.Run("decodes the order payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "token-123", r.Header.Get("X-Shopify-Access-Token"))
			assert.Equal(t, "#1001", r.URL.Query().Get("name"))
			assert.Equal(t, "any", r.URL.Query().Get("status"))

			json.NewEncoder(w).Encode(map[string]any{
				"orders": []map[string]any{{
					"id":                 5512345,
					"name":               "#1001",
					"email":              "ana@example.com",
					"total_price":        "250.00",
					"currency":           "EUR",
					"fulfillment_status": "fulfilled",
					"created_at":         "2025-03-14T10:00:00Z",
				}},
			})
		}))
		defer srv.Close()

		client := NewClient("", "token-123")
		client.baseURL = srv.URL

		order, err := client.GetOrderByNumber(context.Background(), "1001")
		require.NoError(t, err)

		assert.Equal(t, int64(5512345), order.ID)
		assert.True(t, order.Fulfilled())
		assert.True(t, decimal.RequireFromString("250.00").Equal(order.TotalPrice))
	})

	t.Run("empty result is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"orders":[]}`))
		}))
		defer srv.Close()

		client := NewClient("", "token-123")
		client.baseURL = srv.URL

		_, err := client.GetOrderByNumber(context.Background(), "1001")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("ambiguous result is refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"orders":[{"id":1},{"id":2}]}`))
		}))
		defer srv.Close()

		client := NewClient("", "token-123")
		client.baseURL = srv.URL

		_, err := client.GetOrderByNumber(context.Background(), "1001")

		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "ambiguous"))
	})
}
