package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/utils"
	"github.com/akalinin/go-worklog/models"
)

type httpRemoteClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteClient constructs an HTTP/REST implementation of [RemoteClient].
// It normalises and validates the base URL from remoteCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if remoteCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteClient(remoteCfg config.AgentRemote, appCfg config.AgentApp, logger *logger.Logger) (RemoteClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(remoteCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout)

	remote := &httpRemoteClient{client: client, logger: logger}
	remote.SetToken(appCfg.Token)

	return remote, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpRemoteClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteClient].
func (h *httpRemoteClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Upsert implements [RemoteClient]. It PUTs the record to
// PUT /api/v1/{entityType}/{id}; the id-addressed upsert makes re-delivery
// after a crash safe.
func (h *httpRemoteClient) Upsert(ctx context.Context, entityType models.EntityType, record models.Record) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(record).
		Put(fmt.Sprintf("/api/v1/%s/%s", entityType, record.ID))
	if err != nil {
		return fmt.Errorf("%w: upsert %s/%s: %s", ErrUnavailable, entityType, record.ID, err)
	}

	return mapHTTPError(resp)
}

// FetchAll implements [RemoteClient]. It GETs the organization-scoped data set
// from GET /api/v1/{entityType} and decodes it into records.
func (h *httpRemoteClient) FetchAll(ctx context.Context, entityType models.EntityType) ([]models.Record, error) {
	var records []models.Record

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&records).
		Get(fmt.Sprintf("/api/v1/%s", entityType))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %s", ErrUnavailable, entityType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Ping implements [RemoteClient]. It GETs /api/v1/ping with the stored token
// attached, so both reachability and token validity are checked in one call.
func (h *httpRemoteClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		Get("/api/v1/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %s", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}
