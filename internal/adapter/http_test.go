package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/models"
)

func newTestRemoteClient(t *testing.T, handler http.Handler) RemoteClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	remote, err := NewHTTPRemoteClient(
		config.AgentRemote{BaseURL: srv.URL, RequestTimeout: 5 * time.Second},
		config.AgentApp{Token: "test-token"},
		logger.Nop(),
	)
	require.NoError(t, err)

	return remote
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "empty", raw: "", wantErr: true},
		{name: "spaces only", raw: "   ", wantErr: true},
		{name: "host port without scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "trailing slash trimmed", raw: "http://example.com/", want: "http://example.com"},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPRemoteClient_Upsert(t *testing.T) {
	var gotPath, gotAuth string
	var gotRecord models.Record

	remote := newTestRemoteClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRecord))
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))

	rec := models.Record{
		ID:         "rec-1",
		EntityType: models.EntityTimeEntries,
		Payload:    json.RawMessage(`{"task_id":7}`),
	}
	require.NoError(t, remote.Upsert(context.Background(), models.EntityTimeEntries, rec))

	assert.Equal(t, "/api/v1/time_entries/rec-1", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "rec-1", gotRecord.ID)
}

func TestHTTPRemoteClient_Upsert_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "validation rejection", status: http.StatusUnprocessableEntity, wantErr: ErrRejected},
		{name: "conflict rejection", status: http.StatusConflict, wantErr: ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrUnavailable},
		{name: "throttled", status: http.StatusTooManyRequests, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newTestRemoteClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			err := remote.Upsert(context.Background(), models.EntityClients, models.Record{ID: "rec-1"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr == ErrUnavailable, IsTransient(err))
		})
	}
}

func TestHTTPRemoteClient_FetchAll(t *testing.T) {
	members := []models.Record{
		{ID: "m-1", EntityType: models.EntityOrganization, Payload: json.RawMessage(`{"full_name":"Alice"}`)},
		{ID: "m-2", EntityType: models.EntityOrganization, Payload: json.RawMessage(`{"full_name":"Bob"}`)},
	}

	remote := newTestRemoteClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/organization", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(members))
	}))

	got, err := remote.FetchAll(context.Background(), models.EntityOrganization)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m-1", got[0].ID)
	assert.JSONEq(t, `{"full_name":"Bob"}`, string(got[1].Payload))
}

func TestHTTPRemoteClient_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		remote := newTestRemoteClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/ping", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		assert.NoError(t, remote.Ping(context.Background()))
	})

	t.Run("bad token", func(t *testing.T) {
		remote := newTestRemoteClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		assert.ErrorIs(t, remote.Ping(context.Background()), ErrUnauthorized)
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := srv.URL
		srv.Close()

		remote, err := NewHTTPRemoteClient(
			config.AgentRemote{BaseURL: addr, RequestTimeout: time.Second},
			config.AgentApp{},
			logger.Nop(),
		)
		require.NoError(t, err)

		pingErr := remote.Ping(context.Background())
		assert.ErrorIs(t, pingErr, ErrUnavailable)
		assert.True(t, IsTransient(pingErr))
	})
}

func TestHTTPRemoteClient_SetToken(t *testing.T) {
	remote := newTestRemoteClient(t, http.NotFoundHandler())

	assert.Equal(t, "test-token", remote.Token())

	remote.SetToken("  refreshed  ")
	assert.Equal(t, "refreshed", remote.Token())
}
