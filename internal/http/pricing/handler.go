package pricing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/pricing"
)

type Handler struct {
	svc *pricing.Service
}

func NewHandler(svc *pricing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Get("/calculate", h.calculate)
}

type ruleResponse struct {
	ID            uuid.UUID       `json:"id"`
	PointsPerUnit int64           `json:"points_per_unit"`
	UnitValue     decimal.Decimal `json:"unit_value"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponse(rule *pricing.Rule) ruleResponse {
	return ruleResponse{
		ID:            rule.ID,
		PointsPerUnit: rule.PointsPerUnit,
		UnitValue:     rule.UnitValue,
		CreatedAt:     rule.CreatedAt,
	}
}

type createRuleRequest struct {
	PointsPerUnit int64           `json:"points_per_unit"`
	UnitValue     decimal.Decimal `json:"unit_value"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.CreateRule(r.Context(), req.PointsPerUnit, req.UnitValue)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRule) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("creating price point rule", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.ListRules(r.Context())
	if err != nil {
		slog.Error("listing price point rules", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = toResponse(rule)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rule, err := h.svc.GetRule(r.Context(), id)
	if err != nil {
		if errors.Is(err, pricing.ErrNotFound) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteRule(r.Context(), id); err != nil {
		if errors.Is(err, pricing.ErrNotFound) {
			http.Error(w, "rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type calculateResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Points int64           `json:"points"`
}

// calculate previews the point value of an amount without writing anything.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	points, err := h.svc.CalculatePoints(r.Context(), amount)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("calculating points", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(calculateResponse{Amount: amount, Points: points}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
