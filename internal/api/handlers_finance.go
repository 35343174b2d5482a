package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

type FinanceHandler struct {
	svc *services.FinanceService
}

func NewFinanceHandler(svc *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// CreateTransaction POST /api/users/{userId}/transactions
func (h *FinanceHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateTransaction(r.Context(), &model.Transaction{
		OwnerID:     userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListTransactions GET /api/users/{userId}/transactions
func (h *FinanceHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListTransactions(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"transactions": txs, "count": len(txs)})
}

// UpdateTransaction PATCH /api/users/{userId}/transactions/{txId}
func (h *FinanceHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.UpdateTransaction(r.Context(), vars["userId"], vars["txId"], req.Type, req.Amount, req.Description); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTransaction DELETE /api/users/{userId}/transactions/{txId}
func (h *FinanceHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteTransaction(r.Context(), vars["userId"], vars["txId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSummary GET /api/users/{userId}/finance/summary
func (h *FinanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, sum)
}
