package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

type RoadmapHandler struct {
	svc *services.RoadmapService
}

func NewRoadmapHandler(svc *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

// CreateItem POST /api/users/{userId}/roadmap
func (h *RoadmapHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateItem(r.Context(), &model.RoadmapItem{OwnerID: userID, Text: req.Text})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListItems GET /api/users/{userId}/roadmap
func (h *RoadmapHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

// UpdateItem PATCH /api/users/{userId}/roadmap/{itemId}
//
// Accepts text and completed independently; absent fields are untouched.
func (h *RoadmapHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
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
		if err := h.svc.UpdateItemText(r.Context(), vars["userId"], vars["itemId"], *req.Text); err != nil {
			respond.WriteServiceError(w, err)
			return
		}
	}
	if req.Completed != nil {
		if err := h.svc.SetItemCompleted(r.Context(), vars["userId"], vars["itemId"], *req.Completed); err != nil {
			respond.WriteServiceError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteItem DELETE /api/users/{userId}/roadmap/{itemId}
func (h *RoadmapHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteItem(r.Context(), vars["userId"], vars["itemId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
