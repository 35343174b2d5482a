package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

type BrandHandler struct {
	svc *services.BrandService
}

func NewBrandHandler(svc *services.BrandService) *BrandHandler { return &BrandHandler{svc: svc} }

// CreateNote POST /api/users/{userId}/brand-notes
func (h *BrandHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateNote(r.Context(), &model.BrandNote{OwnerID: userID, Text: req.Text})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListNotes GET /api/users/{userId}/brand-notes
func (h *BrandHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"notes": notes, "count": len(notes)})
}

// UpdateNote PATCH /api/users/{userId}/brand-notes/{noteId}
func (h *BrandHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.UpdateNoteText(r.Context(), vars["userId"], vars["noteId"], req.Text); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNote DELETE /api/users/{userId}/brand-notes/{noteId}
func (h *BrandHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteNote(r.Context(), vars["userId"], vars["noteId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
