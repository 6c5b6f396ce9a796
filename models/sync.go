// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package models

import "time"

// PassStatus is the aggregate outcome of one synchronization pass.
type PassStatus string

const (
	// PassSuccess means every entity stream completed with zero failed records.
	PassSuccess PassStatus = "success"
	// PassPartialFailure means at least one entity stream completed cleanly and at
	// least one reported failed records or a strategy-level error.
	PassPartialFailure PassStatus = "partial_failure"
	// PassFailure means every entity stream failed or erred.
	PassFailure PassStatus = "failure"
	// PassInterrupted means the pass was cancelled before all entity streams
	// finished (shutdown). Results collected up to that point are kept.
	PassInterrupted PassStatus = "interrupted"
)

// Cursor is an entity-scoped watermark used to page through unsynced records
// inside a single pass. The zero value means "start from the beginning".
type Cursor struct {
	LastID string `json:"last_id"`
}

// IsZero reports whether the cursor points at the beginning of the stream.
func (c Cursor) IsZero() bool { return c.LastID == "" }

// Advance moves the cursor past the given batch. Batches are ordered by id
// ascending, so the last record's id is the new watermark.
func (c Cursor) Advance(batch []Record) Cursor {
	if len(batch) == 0 {
		return c
	}
	return Cursor{LastID: batch[len(batch)-1].ID}
}

// EntitySyncResult is the immutable per-entity outcome of one strategy
// invocation.
type EntitySyncResult struct {
	EntityType EntityType `json:"entity_type"`
	Attempted  int        `json:"attempted"`
	Succeeded  int        `json:"succeeded"`
	Failed     int        `json:"failed"`

	// Error holds the first strategy-level or record-level error message, or
	// an empty string when the stream completed cleanly.
	Error string `json:"error,omitempty"`
}

// Clean reports whether the entity stream completed with no failed records and
// no strategy-level error.
func (r EntitySyncResult) Clean() bool {
	return r.Failed == 0 && r.Error == ""
}

// SyncPassReport aggregates the per-entity results of one pass. It is created
// when a pass starts and finalized exactly once when the pass ends.
type SyncPassReport struct {
	StartedAt  time.Time                       `json:"started_at"`
	FinishedAt time.Time                       `json:"finished_at"`
	PerEntity  map[EntityType]EntitySyncResult `json:"per_entity"`
	Overall    PassStatus                      `json:"overall"`
}

// Aggregate computes the overall status from the per-entity results. The
// computation only looks at the result set, so the order in which concurrent
// strategies completed cannot change the outcome.
func (p SyncPassReport) Aggregate() PassStatus {
	if len(p.PerEntity) == 0 {
		return PassSuccess
	}

	clean, dirty := 0, 0
	for _, res := range p.PerEntity {
		if res.Clean() {
			clean++
		} else {
			dirty++
		}
	}

	switch {
	case dirty == 0:
		return PassSuccess
	case clean == 0:
		return PassFailure
	default:
		return PassPartialFailure
	}
}

// FirstError returns the first per-entity error message in deterministic
// (entity registration) order, or an empty string.
func (p SyncPassReport) FirstError() string {
	for _, et := range AllEntityTypes() {
		if res, ok := p.PerEntity[et]; ok && res.Error != "" {
			return res.Error
		}
	}
	return ""
}

// SyncStatus is an immutable snapshot of the engine's state, safe to hand to
// any caller at any time.
type SyncStatus struct {
	IsSyncing bool            `json:"is_syncing"`
	LastPass  *SyncPassReport `json:"last_pass,omitempty"`
	LastError string          `json:"last_error,omitempty"`
}
