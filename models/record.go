// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package models

import (
	"encoding/json"
	"time"
)

// Record is the synchronization envelope stored in the local database.
//
// The payload is opaque to the sync engine: strategies ship it to the server
// as-is and never inspect or mutate it. The only field the engine writes is
// Synced, which flips to true once the server has durably accepted the record.
type Record struct {
	// ID is the stable unique key of the record, assigned locally at creation
	// time (UUID). The remote upsert is keyed by it, which is what makes
	// repeated pushes of the same record idempotent.
	ID string `json:"id"`

	// EntityType tells which category of data the payload belongs to.
	EntityType EntityType `json:"entity_type"`

	// Payload is the serialized entity (TimeEntry, Screenshot, ...).
	Payload json.RawMessage `json:"payload"`

	// Synced is local-only bookkeeping; it never leaves the device.
	Synced bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
