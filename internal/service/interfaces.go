// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

// Package service contains the agent's business logic: the offline-first sync
// engine and the local tracking operations that feed it.
//
// The sync engine is organised around three pieces. [EntitySyncStrategy]
// encapsulates how one entity type is synchronized (push for locally-authored
// data, pull-mirror for remote-owned data). The status registry is the
// single-flight gate and status snapshot holder. [SyncCoordinator] ties them
// together: it runs at most one pass at a time, fans strategies out over a
// bounded worker group, and aggregates their results into a
// [models.SyncPassReport].
package service

import (
	"context"
	"time"

	"github.com/akalinin/go-worklog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncCoordinator runs synchronization passes against the remote backend.
// All methods are safe for concurrent use.
type SyncCoordinator interface {
	// Initialize restores persisted sync state and probes the remote backend.
	// A transient probe failure is not an error: the agent starts offline and
	// reports the backend as unreachable until a later probe succeeds.
	Initialize(ctx context.Context) error

	// SyncAll runs one full pass over every registered entity type and blocks
	// until it completes. Returns [ErrSyncInProgress] without side effects if
	// a pass is already running.
	SyncAll(ctx context.Context) (*models.SyncPassReport, error)

	// SyncOne runs a pass restricted to a single entity type. Returns
	// [ErrUnknownEntityType] for an unregistered type and [ErrSyncInProgress]
	// if a pass is already running.
	SyncOne(ctx context.Context, entityType models.EntityType) (*models.SyncPassReport, error)

	// ScheduleSync starts a full pass in the background and returns
	// immediately. Returns [ErrSyncInProgress] if a pass is already running.
	ScheduleSync(ctx context.Context) error

	// Status returns the current engine snapshot: whether a pass is running,
	// the last finished pass report, and the last error.
	Status() models.SyncStatus

	// Pending counts still-unsynced records per entity type.
	Pending(ctx context.Context) (map[models.EntityType]int64, error)

	// SetToken replaces the bearer credential used against the remote backend.
	// Passes already in flight keep the token they started with.
	SetToken(token string)

	// CheckRemote probes the backend and updates the reachability flag.
	CheckRemote(ctx context.Context) error

	// RemoteReachable reports the outcome of the most recent probe.
	RemoteReachable() bool
}

// EntitySyncStrategy synchronizes one entity type within a pass.
//
// Record-level failures (rejections, exhausted retries) are absorbed into the
// returned result so that one bad record never blocks its neighbours. A
// non-nil error is reserved for pass-aborting conditions: rejected
// credentials or a cancelled context.
type EntitySyncStrategy interface {
	EntityType() models.EntityType
	Sync(ctx context.Context) (models.EntitySyncResult, error)
}

// TrackerService is the local write path. Everything it creates lands in the
// local store as an unsynced record; the sync engine picks it up on the next
// pass.
type TrackerService interface {
	// CreateTimeEntry validates and stores a new time entry.
	CreateTimeEntry(ctx context.Context, entry models.TimeEntry) (models.Record, error)

	// StopTimeEntry closes a running time entry. The updated record is marked
	// unsynced again so the change is re-pushed.
	StopTimeEntry(ctx context.Context, id string, endedAt time.Time) (models.Record, error)

	// RecordActivity stores an input-activity sample.
	RecordActivity(ctx context.Context, activity models.ActivityLog) (models.Record, error)

	// RecordScreenshot stores screenshot metadata.
	RecordScreenshot(ctx context.Context, shot models.Screenshot) (models.Record, error)

	// CreateClient stores a new client.
	CreateClient(ctx context.Context, client models.Client) (models.Record, error)

	// CreateProject stores a new project.
	CreateProject(ctx context.Context, project models.Project) (models.Record, error)

	// CreateTask stores a new task.
	CreateTask(ctx context.Context, task models.Task) (models.Record, error)

	// ListEntities returns every local record of the given type, mirrors
	// included.
	ListEntities(ctx context.Context, entityType models.EntityType) ([]models.Record, error)

	// OrganizationMembers decodes the mirrored organization membership.
	OrganizationMembers(ctx context.Context) ([]models.OrganizationMember, error)

	// CurrentMember resolves the authenticated user's own membership entry
	// from the mirror using the identity baked into the bearer token.
	CurrentMember(ctx context.Context) (models.OrganizationMember, error)
}
