// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/service"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

// fakeBackend plays the remote worklog API for end-to-end handler tests.
type fakeBackend struct {
	mu        sync.Mutex
	upserts   map[string]int
	members   []models.OrganizationMember
	rejectIDs map[string]bool
	block     chan struct{}
	lastAuth  string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		upserts:   make(map[string]int),
		rejectIDs: make(map[string]bool),
	}
}

func (b *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.lastAuth = r.Header.Get("Authorization")
		b.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/ping":
			w.WriteHeader(http.StatusOK)

		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/organization":
			b.mu.Lock()
			members := b.members
			b.mu.Unlock()

			records := make([]models.Record, 0, len(members))
			for _, m := range members {
				payload, _ := json.Marshal(m)
				records = append(records, models.Record{ID: m.ID, EntityType: models.EntityOrganization, Payload: payload})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(records)

		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/api/v1/"):
			b.mu.Lock()
			block := b.block
			b.mu.Unlock()
			if block != nil {
				<-block
			}

			var rec models.Record
			_ = json.NewDecoder(r.Body).Decode(&rec)

			b.mu.Lock()
			defer b.mu.Unlock()
			if b.rejectIDs[rec.ID] {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			b.upserts[rec.ID]++
			w.WriteHeader(http.StatusOK)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (b *fakeBackend) upsertCount(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.upserts[id]
}

type handlerHarness struct {
	control *httptest.Server
	backend *fakeBackend
}

func newHandlerHarness(t *testing.T) *handlerHarness {
	t.Helper()

	backend := newFakeBackend()
	backendSrv := httptest.NewServer(backend.handler())
	t.Cleanup(backendSrv.Close)

	storages, err := store.NewStorages(
		context.Background(),
		config.AgentStorage{DB: config.AgentDB{DSN: ":memory:"}},
		logger.Nop(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	remote, err := adapter.NewHTTPRemoteClient(
		config.AgentRemote{BaseURL: backendSrv.URL, RequestTimeout: 5 * time.Second},
		config.AgentApp{Token: token},
		logger.Nop(),
	)
	require.NoError(t, err)

	services := service.NewServices(storages, remote, config.AgentSync{BatchSize: 100, MaxRetries: 0, Workers: 3}, logger.Nop())
	handler := NewHandler(services, logger.Nop())

	control := httptest.NewServer(handler.Init())
	t.Cleanup(control.Close)

	return &handlerHarness{control: control, backend: backend}
}

func (h *handlerHarness) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, h.control.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHandler_FullSyncRoundtrip(t *testing.T) {
	h := newHandlerHarness(t)
	h.backend.members = []models.OrganizationMember{{ID: "m-1", UserID: 42, FullName: "Bob", Role: "member"}}

	resp, raw := h.do(t, http.MethodPost, "/api/entries/", models.TimeEntry{
		Description: "write report",
		StartedAt:   time.Now(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Record
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotEmpty(t, created.ID)

	resp, raw = h.do(t, http.MethodGet, "/api/sync/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status models.StatusResponse
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.False(t, status.IsSyncing)
	assert.EqualValues(t, 1, status.Pending[models.EntityTimeEntries])

	resp, raw = h.do(t, http.MethodPost, "/api/sync/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report models.SyncPassReport
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, models.PassSuccess, report.Overall)
	assert.Equal(t, 1, h.backend.upsertCount(created.ID))

	resp, raw = h.do(t, http.MethodGet, "/api/sync/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &status))
	assert.EqualValues(t, 0, status.Pending[models.EntityTimeEntries])
	require.NotNil(t, status.LastPass)

	// the pull mirror got populated in the same pass
	resp, raw = h.do(t, http.MethodGet, "/api/organization/members", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var members []models.OrganizationMember
	require.NoError(t, json.Unmarshal(raw, &members))
	require.Len(t, members, 1)
	assert.Equal(t, "Bob", members[0].FullName)

	resp, raw = h.do(t, http.MethodGet, "/api/organization/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.OrganizationMember
	require.NoError(t, json.Unmarshal(raw, &me))
	assert.EqualValues(t, 42, me.UserID)
}

func TestHandler_PartialFailureIsReported(t *testing.T) {
	h := newHandlerHarness(t)

	resp, raw := h.do(t, http.MethodPost, "/api/clients/", models.Client{Name: "ACME"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var accepted models.Record
	require.NoError(t, json.Unmarshal(raw, &accepted))

	resp, raw = h.do(t, http.MethodPost, "/api/clients/", models.Client{Name: "Globex"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var rejected models.Record
	require.NoError(t, json.Unmarshal(raw, &rejected))

	h.backend.mu.Lock()
	h.backend.rejectIDs[rejected.ID] = true
	h.backend.mu.Unlock()

	resp, raw = h.do(t, http.MethodPost, "/api/sync/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report models.SyncPassReport
	require.NoError(t, json.Unmarshal(raw, &report))

	assert.Equal(t, models.PassPartialFailure, report.Overall)
	res := report.PerEntity[models.EntityClients]
	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
}

func TestHandler_SyncOne_UnknownEntity(t *testing.T) {
	h := newHandlerHarness(t)

	resp, _ := h.do(t, http.MethodPost, "/api/sync/bogus", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = h.do(t, http.MethodGet, "/api/records/bogus", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ScheduleSync(t *testing.T) {
	h := newHandlerHarness(t)

	_, raw := h.do(t, http.MethodPost, "/api/entries/", models.TimeEntry{StartedAt: time.Now()})
	var created models.Record
	require.NoError(t, json.Unmarshal(raw, &created))

	block := make(chan struct{})
	h.backend.mu.Lock()
	h.backend.block = block
	h.backend.mu.Unlock()

	resp, raw := h.do(t, http.MethodPost, "/api/sync/schedule", nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	var scheduled models.SyncAcceptedResponse
	require.NoError(t, json.Unmarshal(raw, &scheduled))
	assert.True(t, scheduled.Accepted)

	require.Eventually(t, func() bool {
		resp, raw := h.do(t, http.MethodGet, "/api/sync/status", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var status models.StatusResponse
		require.NoError(t, json.Unmarshal(raw, &status))
		return status.IsSyncing
	}, 2*time.Second, 10*time.Millisecond)

	resp, raw = h.do(t, http.MethodPost, "/api/sync/schedule", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &scheduled))
	assert.False(t, scheduled.Accepted)

	resp, _ = h.do(t, http.MethodPost, "/api/sync/", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	h.backend.mu.Lock()
	h.backend.block = nil
	h.backend.mu.Unlock()
	close(block)

	require.Eventually(t, func() bool {
		_, raw := h.do(t, http.MethodGet, "/api/sync/status", nil)
		var status models.StatusResponse
		require.NoError(t, json.Unmarshal(raw, &status))
		return !status.IsSyncing && status.LastPass != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_Health(t *testing.T) {
	h := newHandlerHarness(t)

	resp, raw := h.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &health))
	assert.True(t, health.RemoteReachable)
	assert.Empty(t, health.Error)
}

func TestHandler_UpdateToken(t *testing.T) {
	h := newHandlerHarness(t)

	resp, _ := h.do(t, http.MethodPost, "/api/auth/token", models.TokenRequest{Token: "fresh-token"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = h.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	h.backend.mu.Lock()
	auth := h.backend.lastAuth
	h.backend.mu.Unlock()
	assert.Equal(t, "Bearer fresh-token", auth)

	resp, _ = h.do(t, http.MethodPost, "/api/auth/token", models.TokenRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_UpdateToken_AuthorizationHeader(t *testing.T) {
	h := newHandlerHarness(t)

	req, err := http.NewRequest(http.MethodPost, h.control.URL+"/api/auth/token", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer header-token")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	hResp, _ := h.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, hResp.StatusCode)

	h.backend.mu.Lock()
	auth := h.backend.lastAuth
	h.backend.mu.Unlock()
	assert.Equal(t, "Bearer header-token", auth)

	req, err = http.NewRequest(http.MethodPost, h.control.URL+"/api/auth/token", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_TrackerValidation(t *testing.T) {
	h := newHandlerHarness(t)

	resp, _ := h.do(t, http.MethodPost, "/api/entries/", models.TimeEntry{Description: "no start"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/clients/", models.Client{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, h.control.URL+"/api/tasks/", strings.NewReader("{not json"))
	require.NoError(t, err)
	badResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, fmt.Sprintf("/api/entries/%s/stop", "missing-id"), map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_StopTimeEntry(t *testing.T) {
	h := newHandlerHarness(t)

	_, raw := h.do(t, http.MethodPost, "/api/entries/", models.TimeEntry{StartedAt: time.Now()})
	var created models.Record
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := h.do(t, http.MethodPost, fmt.Sprintf("/api/entries/%s/stop", created.ID), map[string]any{
		"ended_at": time.Now().Add(time.Hour),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stopped models.Record
	require.NoError(t, json.Unmarshal(raw, &stopped))
	var entry models.TimeEntry
	require.NoError(t, json.Unmarshal(stopped.Payload, &entry))
	assert.NotNil(t, entry.EndedAt)

	resp, _ = h.do(t, http.MethodPost, fmt.Sprintf("/api/entries/%s/stop", created.ID), map[string]any{})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_ListEntities(t *testing.T) {
	h := newHandlerHarness(t)

	resp, raw := h.do(t, http.MethodGet, "/api/records/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw), "empty list, not null")

	_, _ = h.do(t, http.MethodPost, "/api/projects/", models.Project{Name: "Website"})

	resp, raw = h.do(t, http.MethodGet, "/api/records/projects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recs []models.Record
	require.NoError(t, json.Unmarshal(raw, &recs))
	assert.Len(t, recs, 1)
}
