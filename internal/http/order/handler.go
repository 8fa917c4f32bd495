package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/challenge"
	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/loyalty"
	"github.com/brandloop/loyalty/internal/shopify"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	orders  *loyalty.Service
	shopify *shopify.Service
}

func NewHandler(orders *loyalty.Service, shopifySvc *shopify.Service) *Handler {
	return &Handler{orders: orders, shopify: shopifySvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.process)
	r.Post("/shopify", h.processShopify)
}

type processOrderRequest struct {
	CustomerID  uuid.UUID       `json:"customer_id" validate:"required"`
	ReferenceID string          `json:"reference_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	LocationID  *uuid.UUID      `json:"location_id,omitempty"`
}

// process credits points for an in-store purchase, typically scanned from a
// receipt QR code.
func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	var req processOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.orders.ProcessOrder(r.Context(), loyalty.OrderParams{
		CustomerID:  req.CustomerID,
		ReferenceID: req.ReferenceID,
		Amount:      req.Amount,
		EntryType:   ledger.TypeQRPurchase,
		Channel:     challenge.ChannelInStore,
		LocationID:  req.LocationID,
	})
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type processShopifyRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" validate:"required"`
	OrderNumber string    `json:"order_number" validate:"required"`
}

func (h *Handler) processShopify(w http.ResponseWriter, r *http.Request) {
	var req processShopifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.shopify.ProcessOrder(r.Context(), req.CustomerID, req.OrderNumber)
	if err != nil {
		switch {
		case errors.Is(err, shopify.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, shopify.ErrNotFulfilled):
			http.Error(w, "order not fulfilled yet", http.StatusConflict)
		default:
			writeOrderError(w, err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loyalty.ErrAlreadyProcessed):
		http.Error(w, "order already processed", http.StatusConflict)
	case errors.Is(err, loyalty.ErrMissingReference), errors.Is(err, ledger.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("processing order", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
