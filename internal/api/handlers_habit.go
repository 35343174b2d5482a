package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

// HabitHandler is the HTTP transport for daily habits and their streaks.
type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler { return &HabitHandler{svc: svc} }

// CreateHabit POST /api/users/{userId}/habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateHabit(r.Context(), &model.Habit{OwnerID: userID, Text: req.Text})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListHabits GET /api/users/{userId}/habits
//
// The list is reconciled against the current day before it is returned.
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	habits, err := h.svc.ListHabits(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"habits": habits, "count": len(habits)})
}

// GetHabit GET /api/users/{userId}/habits/{habitId}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	habit, err := h.svc.GetHabit(r.Context(), vars["userId"], vars["habitId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, habit)
}

// UpdateHabit PATCH /api/users/{userId}/habits/{habitId}
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.UpdateHabitText(r.Context(), vars["userId"], vars["habitId"], req.Text); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleHabit POST /api/users/{userId}/habits/{habitId}/toggle
//
// Flips the done-today flag and returns the habit with its recomputed streak.
func (h *HabitHandler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	habit, err := h.svc.ToggleDone(r.Context(), vars["userId"], vars["habitId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, habit)
}

// ReconcileHabits POST /api/users/{userId}/habits/reconcile
//
// Forces a reconciliation pass for the user. The same correction runs at
// midnight and before every list; this endpoint exists for clients that want
// fresh streaks without fetching the list.
func (h *HabitHandler) ReconcileHabits(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := h.svc.Reconcile(r.Context(), userID); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteHabit DELETE /api/users/{userId}/habits/{habitId}
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteHabit(r.Context(), vars["userId"], vars["habitId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
