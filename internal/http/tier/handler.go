package tier

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/tier"
)

type Handler struct {
	svc *tier.Service
}

func NewHandler(svc *tier.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/customers/{customerId}", h.customerTiers)
	r.Get("/resolve", h.resolve)
}

type createTierRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Threshold    int64  `json:"threshold"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), tier.CreateParams{
		Name:         req.Name,
		Description:  req.Description,
		Threshold:    req.Threshold,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		if errors.Is(err, tier.ErrDuplicateThreshold) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		slog.Error("creating tier", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("listing tiers", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tiers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tier.ErrNotFound) {
			http.Error(w, "tier not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTierRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Threshold    *int64  `json:"threshold,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Active       *bool   `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Update(r.Context(), id, tier.UpdateParams{
		Name:         req.Name,
		Description:  req.Description,
		Threshold:    req.Threshold,
		DisplayOrder: req.DisplayOrder,
		Active:       req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, tier.ErrNotFound):
			http.Error(w, "tier not found", http.StatusNotFound)
		case errors.Is(err, tier.ErrDuplicateThreshold):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
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
		switch {
		case errors.Is(err, tier.ErrNotFound):
			http.Error(w, "tier not found", http.StatusNotFound)
		case errors.Is(err, tier.ErrTierInUse):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) customerTiers(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	assignments, err := h.svc.CustomerTiers(r.Context(), customerID)
	if err != nil {
		slog.Error("listing customer tiers", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toAssignmentList(assignments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// resolve answers "which tier does this balance earn" without touching any
// assignment. Points come from the query string.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	points, err := strconv.ParseInt(r.URL.Query().Get("points"), 10, 64)
	if err != nil {
		http.Error(w, "invalid points", http.StatusBadRequest)
		return
	}

	t, err := h.svc.ResolveForPoints(r.Context(), points)
	if err != nil {
		slog.Error("resolving tier", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if t == nil {
		w.Write([]byte("null"))
		return
	}

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
