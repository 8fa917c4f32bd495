package challenge

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brandloop/loyalty/internal/challenge"
)

type Handler struct {
	svc *challenge.Service
}

func NewHandler(svc *challenge.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/stats", h.stats)
	r.Post("/{id}/enroll", h.enroll)
	r.Post("/{id}/progress", h.progress)
	r.Get("/customers/{customerId}", h.customerChallenges)
}

type createChallengeRequest struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Type              challenge.Type    `json:"type"`
	RequiredAmount    decimal.Decimal   `json:"required_amount"`
	RequiredPurchases int               `json:"required_purchases"`
	DurationDays      *int              `json:"duration_days,omitempty"`
	CustomerUsage     int               `json:"customer_usage"`
	Channel           challenge.Channel `json:"channel"`
	BonusPoints       int64             `json:"bonus_points"`
	BonusPercent      decimal.Decimal   `json:"bonus_percent"`
	StartAt           *time.Time        `json:"start_at,omitempty"`
	EndAt             *time.Time        `json:"end_at,omitempty"`
	Active            bool              `json:"active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), challenge.CreateParams{
		Name:              req.Name,
		Description:       req.Description,
		Type:              req.Type,
		RequiredAmount:    req.RequiredAmount,
		RequiredPurchases: req.RequiredPurchases,
		DurationDays:      req.DurationDays,
		CustomerUsage:     req.CustomerUsage,
		Channel:           req.Channel,
		BonusPoints:       req.BonusPoints,
		BonusPercent:      req.BonusPercent,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
		Active:            req.Active,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		challenges []*challenge.Challenge
		err        error
	)

	if r.URL.Query().Get("active") == "true" {
		challenges, err = h.svc.ListActive(r.Context())
	} else {
		challenges, err = h.svc.List(r.Context())
	}

	if err != nil {
		slog.Error("listing challenges", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(challenges)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateChallengeRequest struct {
	Name           *string            `json:"name,omitempty"`
	Description    *string            `json:"description,omitempty"`
	RequiredAmount *decimal.Decimal   `json:"required_amount,omitempty"`
	CustomerUsage  *int               `json:"customer_usage,omitempty"`
	Channel        *challenge.Channel `json:"channel,omitempty"`
	BonusPoints    *int64             `json:"bonus_points,omitempty"`
	StartAt        *time.Time         `json:"start_at,omitempty"`
	EndAt          *time.Time         `json:"end_at,omitempty"`
	Active         *bool              `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), id, challenge.UpdateParams{
		Name:           req.Name,
		Description:    req.Description,
		RequiredAmount: req.RequiredAmount,
		CustomerUsage:  req.CustomerUsage,
		Channel:        req.Channel,
		BonusPoints:    req.BonusPoints,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		Active:         req.Active,
	})
	if err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
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
		if errors.Is(err, challenge.ErrNotFound) {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	stats, err := h.svc.Stats(r.Context(), id)
	if err != nil {
		if errors.Is(err, challenge.ErrNotFound) {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(statsResponse{
		Participants: stats.Participants,
		Completed:    stats.Completed,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type enrollRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

func (h *Handler) enroll(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Enroll(r.Context(), id, req.CustomerID)
	if err != nil {
		writeParticipantError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toParticipantResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type progressRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.UpdateProgress(r.Context(), id, req.CustomerID)
	if err != nil {
		writeParticipantError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toParticipantResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) customerChallenges(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	participants, err := h.svc.CustomerParticipants(r.Context(), customerID)
	if err != nil {
		slog.Error("listing customer challenges", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toParticipantResponseList(participants)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeParticipantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, challenge.ErrNotFound), errors.Is(err, challenge.ErrParticipantNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, challenge.ErrAlreadyEnrolled), errors.Is(err, challenge.ErrAlreadyCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		slog.Error("challenge operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
