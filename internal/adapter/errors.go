package adapter

import "errors"

var (
	// ErrUnauthorized means the backend rejected the agent's credentials.
	// Retrying without a new token cannot succeed.
	ErrUnauthorized = errors.New("remote unauthorized")

	// ErrRejected means the backend refused this particular record
	// (validation failure, conflict). The record stays unsynced but the
	// rest of the batch may proceed.
	ErrRejected = errors.New("record rejected by remote")

	// ErrUnavailable covers transient failures: network errors, timeouts,
	// 5xx responses and throttling.
	ErrUnavailable = errors.New("remote unavailable")
)

// IsTransient reports whether err is worth retrying with backoff.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
