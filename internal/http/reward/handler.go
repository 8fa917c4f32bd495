package reward

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/reward"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	svc *reward.Service
}

func NewHandler(svc *reward.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/redeem", h.redeem)
	r.Get("/tiers/{tierId}", h.tierRewards)
	r.Get("/customers/{customerId}/redemptions", h.customerRedemptions)
}

type createRewardRequest struct {
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	PointsCost  int64       `json:"points_cost" validate:"gte=0"`
	Active      bool        `json:"active"`
	TierIDs     []uuid.UUID `json:"tier_ids"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rw, err := h.svc.Create(r.Context(), reward.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Active:      req.Active,
		TierIDs:     req.TierIDs,
	})
	if err != nil {
		writeRewardError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rw)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("listing rewards", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(rewards)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rw, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeRewardError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rw)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRewardRequest struct {
	Name        *string     `json:"name,omitempty"`
	Description *string     `json:"description,omitempty"`
	PointsCost  *int64      `json:"points_cost,omitempty" validate:"omitempty,gte=0"`
	Active      *bool       `json:"active,omitempty"`
	TierIDs     []uuid.UUID `json:"tier_ids,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rw, err := h.svc.Update(r.Context(), id, reward.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		PointsCost:  req.PointsCost,
		Active:      req.Active,
		TierIDs:     req.TierIDs,
	})
	if err != nil {
		writeRewardError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rw)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeRewardError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type redeemRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" validate:"required"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	red, err := h.svc.Redeem(r.Context(), reward.RedeemParams{
		RewardID:   id,
		CustomerID: req.CustomerID,
		LocationID: req.LocationID,
	})
	if err != nil {
		writeRewardError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toRedemptionResponse(red)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) tierRewards(w http.ResponseWriter, r *http.Request) {
	tierID, err := uuid.Parse(chi.URLParam(r, "tierId"))
	if err != nil {
		http.Error(w, "invalid tier id", http.StatusBadRequest)
		return
	}

	rewards, err := h.svc.TierRewards(r.Context(), tierID)
	if err != nil {
		slog.Error("listing tier rewards", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(rewards)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) customerRedemptions(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	redemptions, err := h.svc.CustomerRedemptions(r.Context(), customerID)
	if err != nil {
		slog.Error("listing redemptions", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRedemptionList(redemptions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeRewardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reward.ErrNotFound):
		http.Error(w, "reward not found", http.StatusNotFound)
	case errors.Is(err, reward.ErrDuplicateName),
		errors.Is(err, reward.ErrRewardHasRedemptions),
		errors.Is(err, reward.ErrRewardInactive),
		errors.Is(err, ledger.ErrInsufficientPoints):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, reward.ErrTierRequired):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ledger.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("reward operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
