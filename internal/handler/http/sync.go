// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/service"
	"github.com/akalinin/go-worklog/internal/utils"
	"github.com/akalinin/go-worklog/models"
)

// syncAll runs a full pass and blocks until it finishes. A pass already
// holding the gate is reported with 409 and a JSON body rather than an error:
// the caller's intent (get the data synced) is being served either way.
func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	report, err := h.services.Sync.SyncAll(ctx)
	if errors.Is(err, service.ErrSyncInProgress) {
		utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: false, Message: "sync already in progress"}, http.StatusConflict)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncAll").Msg("full sync pass failed to start")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) syncOne(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entityType, ok := models.ParseEntityType(chi.URLParam(r, "entityType"))
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: "unknown entity type"}, http.StatusNotFound)
		return
	}

	report, err := h.services.Sync.SyncOne(ctx, entityType)
	if errors.Is(err, service.ErrSyncInProgress) {
		utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: false, Message: "sync already in progress"}, http.StatusConflict)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncOne").Str("entity_type", string(entityType)).Msg("entity sync pass failed to start")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) scheduleSync(w http.ResponseWriter, r *http.Request) {
	err := h.services.Sync.ScheduleSync(r.Context())
	if errors.Is(err, service.ErrSyncInProgress) {
		utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: false, Message: "sync already in progress"}, http.StatusConflict)
		return
	}
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: true, Message: "sync scheduled"}, http.StatusAccepted)
}

// syncStatus never blocks: the snapshot is served even while a pass runs.
func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status := h.services.Sync.Status()

	pending, err := h.services.Sync.Pending(ctx)
	if err != nil {
		// the snapshot is still worth returning without the gauge
		log.Err(err).Str("func", "*Handler.syncStatus").Msg("failed to count pending records")
		pending = nil
	}

	utils.WriteJSON(w, models.StatusResponse{SyncStatus: status, Pending: pending}, http.StatusOK)
}

// updateToken swaps the bearer credential the agent presents to the remote
// backend. The desktop shell calls this after a re-login, either with a JSON
// body or with the credential in an Authorization header.
func (h *Handler) updateToken(w http.ResponseWriter, r *http.Request) {
	var token string

	if header := r.Header.Get("Authorization"); header != "" {
		parsed, err := utils.ParseBearerToken(header)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		}
		token = parsed
	} else {
		var body models.TokenRequest
		if !h.decodeBody(w, r, &body, "*Handler.updateToken") {
			return
		}
		token = body.Token
	}

	if token == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: "token must not be empty"}, http.StatusBadRequest)
		return
	}

	h.services.Sync.SetToken(token)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{RemoteReachable: h.services.Sync.RemoteReachable()}

	if err := h.services.Sync.CheckRemote(r.Context()); err != nil {
		resp.RemoteReachable = false
		resp.Error = err.Error()
		utils.WriteJSON(w, resp, http.StatusOK)
		return
	}

	resp.RemoteReachable = true
	utils.WriteJSON(w, resp, http.StatusOK)
}
