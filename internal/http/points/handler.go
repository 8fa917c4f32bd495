package points

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/brandloop/loyalty/internal/ledger"
	"github.com/brandloop/loyalty/internal/loyalty"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	accounts *loyalty.Service
	ledger   *ledger.Service
}

func NewHandler(accounts *loyalty.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{accounts: accounts, ledger: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/credit", h.credit)
	r.Post("/debit", h.debit)
	r.Get("/customers/{customerId}/balance", h.balance)
	r.Get("/customers/{customerId}/history", h.history)
	r.Get("/customers/{customerId}/batches", h.batches)
}

type creditRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" validate:"required"`
	Points      int64     `json:"points" validate:"required,gt=0"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Note        string    `json:"note,omitempty"`
	ExpiryDays  int       `json:"expiry_days,omitempty" validate:"gte=0"`
}

func (h *Handler) credit(w http.ResponseWriter, r *http.Request) {
	var req creditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.accounts.CreditPoints(r.Context(), loyalty.ManualCreditParams{
		CustomerID:  req.CustomerID,
		Points:      req.Points,
		ReferenceID: req.ReferenceID,
		Note:        req.Note,
		ExpiryDays:  req.ExpiryDays,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toMutationResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type debitRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" validate:"required"`
	Points      int64     `json:"points" validate:"required,gt=0"`
	ReferenceID string    `json:"reference_id,omitempty"`
	Note        string    `json:"note,omitempty"`
	Redeem      bool      `json:"redeem,omitempty"`
}

func (h *Handler) debit(w http.ResponseWriter, r *http.Request) {
	var req debitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.accounts.DebitPoints(r.Context(), loyalty.ManualDebitParams{
		CustomerID:  req.CustomerID,
		Points:      req.Points,
		ReferenceID: req.ReferenceID,
		Note:        req.Note,
		Redeem:      req.Redeem,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toMutationResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	balance, err := h.ledger.AvailablePoints(r.Context(), customerID)
	if err != nil {
		slog.Error("reading balance", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(balanceResponse{Balance: balance}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	entries, err := h.ledger.History(r.Context(), customerID)
	if err != nil {
		slog.Error("reading history", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) batches(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerId"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	batches, err := h.ledger.Batches(r.Context(), customerID)
	if err != nil {
		slog.Error("reading batches", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBatchList(batches)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInsufficientPoints):
		http.Error(w, "insufficient points", http.StatusConflict)
	case errors.Is(err, ledger.ErrDuplicateReference):
		http.Error(w, "reference already used", http.StatusConflict)
	case errors.Is(err, ledger.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("ledger operation failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
