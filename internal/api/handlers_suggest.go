package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

type SuggestionHandler struct {
	svc *services.SuggestionService
}

func NewSuggestionHandler(svc *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

// GetSuggestion POST /api/users/{userId}/suggestions
func (h *SuggestionHandler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Section string `json:"section"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.SuggestFor(r.Context(), userID, req.Section)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"section":    req.Section,
		"suggestion": out,
	})
}
