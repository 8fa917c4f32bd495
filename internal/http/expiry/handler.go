package expiry

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/expiry"
)

type Handler struct {
	svc *expiry.Service
}

func NewHandler(svc *expiry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/active", h.active)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type defaultResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ExpiryDays int        `json:"expiry_days"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toResponse(d *expiry.Default) defaultResponse {
	return defaultResponse{
		ID:         d.ID,
		Name:       d.Name,
		ExpiryDays: d.ExpiryDays,
		Active:     d.Active,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type createDefaultRequest struct {
	Name       string `json:"name"`
	ExpiryDays int    `json:"expiry_days"`
	Active     bool   `json:"active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDefaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.ExpiryDays <= 0 {
		http.Error(w, "expiry_days must be positive", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), req.Name, req.ExpiryDays, req.Active)
	if err != nil {
		slog.Error("creating expiry default", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("listing expiry defaults", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]defaultResponse, len(defaults))
	for i, d := range defaults {
		resp[i] = toResponse(d)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type activeResponse struct {
	ExpiryDays int `json:"expiry_days"`
}

// active reports the lifetime newly credited points currently get. Falls
// back to the built-in default when no configuration row is active.
func (h *Handler) active(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.ActiveExpiryDays(r.Context())
	if err != nil {
		slog.Error("reading active expiry days", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(activeResponse{ExpiryDays: days}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateDefaultRequest struct {
	Name       *string `json:"name,omitempty"`
	ExpiryDays *int    `json:"expiry_days,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateDefaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Update(r.Context(), id, expiry.UpdateParams{
		Name:       req.Name,
		ExpiryDays: req.ExpiryDays,
		Active:     req.Active,
	})
	if err != nil {
		if errors.Is(err, expiry.ErrNotFound) {
			http.Error(w, "expiry default not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
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
		if errors.Is(err, expiry.ErrNotFound) {
			http.Error(w, "expiry default not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
