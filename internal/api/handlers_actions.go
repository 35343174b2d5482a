package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

type ActionHandler struct {
	svc *services.ActionService
}

func NewActionHandler(svc *services.ActionService) *ActionHandler { return &ActionHandler{svc: svc} }

// CreateAction POST /api/users/{userId}/actions
func (h *ActionHandler) CreateAction(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateAction(r.Context(), &model.WeeklyAction{OwnerID: userID, Text: req.Text})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListActions GET /api/users/{userId}/actions
func (h *ActionHandler) ListActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.svc.ListActions(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"actions": actions, "count": len(actions)})
}

// UpdateAction PATCH /api/users/{userId}/actions/{actionId}
func (h *ActionHandler) UpdateAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Text      *string `json:"text,omitempty"`
		Completed *bool   `json:"completed,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Text == nil && req.Completed == nil {
		respond.WriteBadRequest(w, "nothing to update")
		return
	}
	if req.Text != nil {
		if err := h.svc.UpdateActionText(r.Context(), vars["userId"], vars["actionId"], *req.Text); err != nil {
			respond.WriteServiceError(w, err)
			return
		}
	}
	if req.Completed != nil {
		if err := h.svc.SetActionCompleted(r.Context(), vars["userId"], vars["actionId"], *req.Completed); err != nil {
			respond.WriteServiceError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAction DELETE /api/users/{userId}/actions/{actionId}
func (h *ActionHandler) DeleteAction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteAction(r.Context(), vars["userId"], vars["actionId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
