package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/utils"
	"github.com/akalinin/go-worklog/models"
)

func (h *Handler) createTimeEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.TimeEntry
	if !h.decodeBody(w, r, &entry, "*Handler.createTimeEntry") {
		return
	}

	rec, err := h.services.Tracker.CreateTimeEntry(r.Context(), entry)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) stopTimeEntry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EndedAt time.Time `json:"ended_at"`
	}
	if !h.decodeBody(w, r, &body, "*Handler.stopTimeEntry") {
		return
	}
	if body.EndedAt.IsZero() {
		body.EndedAt = time.Now()
	}

	rec, err := h.services.Tracker.StopTimeEntry(r.Context(), chi.URLParam(r, "id"), body.EndedAt)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) recordActivity(w http.ResponseWriter, r *http.Request) {
	var activity models.ActivityLog
	if !h.decodeBody(w, r, &activity, "*Handler.recordActivity") {
		return
	}

	rec, err := h.services.Tracker.RecordActivity(r.Context(), activity)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) recordScreenshot(w http.ResponseWriter, r *http.Request) {
	var shot models.Screenshot
	if !h.decodeBody(w, r, &shot, "*Handler.recordScreenshot") {
		return
	}

	rec, err := h.services.Tracker.RecordScreenshot(r.Context(), shot)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if !h.decodeBody(w, r, &client, "*Handler.createClient") {
		return
	}

	rec, err := h.services.Tracker.CreateClient(r.Context(), client)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if !h.decodeBody(w, r, &project, "*Handler.createProject") {
		return
	}

	rec, err := h.services.Tracker.CreateProject(r.Context(), project)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if !h.decodeBody(w, r, &task, "*Handler.createTask") {
		return
	}

	rec, err := h.services.Tracker.CreateTask(r.Context(), task)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	entityType, ok := models.ParseEntityType(chi.URLParam(r, "entityType"))
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unknown entity type"}, http.StatusNotFound)
		return
	}

	recs, err := h.services.Tracker.ListEntities(r.Context(), entityType)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}
	if recs == nil {
		recs = []models.Record{}
	}

	utils.WriteJSON(w, recs, http.StatusOK)
}

func (h *Handler) organizationMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.Tracker.OrganizationMembers(r.Context())
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}
	if members == nil {
		members = []models.OrganizationMember{}
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

func (h *Handler) currentMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.services.Tracker.CurrentMember(r.Context())
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, member, http.StatusOK)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, caller string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", caller).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return false
	}
	return true
}
