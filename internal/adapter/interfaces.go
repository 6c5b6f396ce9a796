// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

// Package adapter provides the transport layer for talking to the worklog
// backend.
//
// The primary abstraction is [RemoteClient], which decouples the sync engine
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can classify failures with [errors.Is]:
// [ErrUnauthorized] aborts a sync pass, [ErrRejected] skips the offending
// record, and [ErrUnavailable] (see [IsTransient]) is worth retrying.
package adapter

import (
	"context"

	"github.com/akalinin/go-worklog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient defines transport-agnostic communication with the worklog
// backend. Implementations own serialisation, authentication header
// management, and mapping transport failures to the sentinel errors defined
// in this package.
type RemoteClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the client, or an
	// empty string if none has been set.
	Token() string

	// Upsert pushes a single record to the backend. The operation is
	// idempotent on the server side: re-sending an already accepted record
	// succeeds without creating a duplicate.
	Upsert(ctx context.Context, entityType models.EntityType, record models.Record) error

	// FetchAll downloads the full remote data set of entityType scoped to
	// the organization the authenticated user belongs to. Used by the
	// pull-mirror side of the sync engine.
	FetchAll(ctx context.Context, entityType models.EntityType) ([]models.Record, error)

	// Ping checks whether the backend is reachable and the stored token is
	// accepted. Returns [ErrUnauthorized] on a rejected token.
	Ping(ctx context.Context) error
}
