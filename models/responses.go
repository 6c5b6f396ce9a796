package models

// SyncAcceptedResponse is returned by the control API when a background sync
// is scheduled (or found to be already running).
type SyncAcceptedResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// StatusResponse is the body of GET /api/sync/status. Pending counts the
// still-unsynced records per entity type at the moment of the query.
type StatusResponse struct {
	SyncStatus
	Pending map[EntityType]int64 `json:"pending,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	RemoteReachable bool   `json:"remote_reachable"`
	Error           string `json:"error,omitempty"`
}

// TokenRequest is the body of POST /api/auth/token: a replacement bearer
// credential for the remote backend, typically pushed in by the desktop shell
// after a re-login.
type TokenRequest struct {
	Token string `json:"token"`
}

// ErrorResponse is the generic JSON error body used by the control API.
type ErrorResponse struct {
	Error string `json:"error"`
}
