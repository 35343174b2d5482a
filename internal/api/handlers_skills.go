package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/services"
)

// SkillHandler covers skills and their practice-hour logs.
type SkillHandler struct {
	svc *services.SkillService
}

func NewSkillHandler(svc *services.SkillService) *SkillHandler { return &SkillHandler{svc: svc} }

// CreateSkill POST /api/users/{userId}/skills
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateSkill(r.Context(), &model.Skill{OwnerID: userID, Name: req.Name})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListSkills GET /api/users/{userId}/skills
//
// Includes per-skill hour totals alongside the skill list.
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	skills, err := h.svc.ListSkills(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	totals, err := h.svc.HoursBySkill(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"skills": skills,
		"count":  len(skills),
		"hours":  totals,
	})
}

// RenameSkill PATCH /api/users/{userId}/skills/{skillId}
func (h *SkillHandler) RenameSkill(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.RenameSkill(r.Context(), vars["userId"], vars["skillId"], req.Name); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSkill DELETE /api/users/{userId}/skills/{skillId}
func (h *SkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteSkill(r.Context(), vars["userId"], vars["skillId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LogHours POST /api/users/{userId}/skill-logs
func (h *SkillHandler) LogHours(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var req struct {
		Skill string  `json:"skill"`
		Hours float64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.LogHours(r.Context(), &model.SkillLog{OwnerID: userID, Skill: req.Skill, Hours: req.Hours})
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListLogs GET /api/users/{userId}/skill-logs
func (h *SkillHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListLogs(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"logs": logs, "count": len(logs)})
}

// UpdateLog PATCH /api/users/{userId}/skill-logs/{logId}
func (h *SkillHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Skill string  `json:"skill"`
		Hours float64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.UpdateLog(r.Context(), vars["userId"], vars["logId"], req.Skill, req.Hours); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteLog DELETE /api/users/{userId}/skill-logs/{logId}
func (h *SkillHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteLog(r.Context(), vars["userId"], vars["logId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
