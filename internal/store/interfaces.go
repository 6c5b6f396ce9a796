package store

import (
	"context"

	"github.com/akalinin/go-worklog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is the record-level contract of the agent's local database.
//
// The local store is the authoritative write path: the tracker writes records
// here first, the sync engine ships them to the backend afterwards. The engine
// never mutates payloads, only the synced flag.
type RecordStore interface {
	// SaveRecords upserts the given records keyed by id. Inserted records keep
	// whatever Synced value they carry; locally-authored writes arrive with
	// Synced=false so the next pass picks them up.
	SaveRecords(ctx context.Context, records ...models.Record) error

	// GetRecord returns a single record by entity type and id.
	// Returns ErrRecordNotFound when the id is unknown.
	GetRecord(ctx context.Context, entityType models.EntityType, id string) (models.Record, error)

	// ListRecords returns all records of the given entity type ordered by id.
	ListRecords(ctx context.Context, entityType models.EntityType) ([]models.Record, error)

	// ListUnsynced returns up to limit unsynced records of the given entity
	// type with id greater than the cursor watermark, ordered by id ascending.
	// Repeated calls with cursors advanced from each batch visit every
	// unsynced record exactly once, with no gaps or repeats.
	ListUnsynced(ctx context.Context, entityType models.EntityType, cursor models.Cursor, limit int) ([]models.Record, error)

	// MarkSynced flips the synced flag of one record. Idempotent; the second
	// return value is false when the id does not exist.
	MarkSynced(ctx context.Context, entityType models.EntityType, id string) (bool, error)

	// CountUnsynced reports how many records of the given entity type still
	// await a push.
	CountUnsynced(ctx context.Context, entityType models.EntityType) (int64, error)

	// OverwriteMirrored atomically replaces the local copy of a remote-owned
	// entity type with the given set. Mirrored records are stored as synced.
	OverwriteMirrored(ctx context.Context, entityType models.EntityType, records []models.Record) error
}

// SyncStateStore persists the outcome of the last sync pass so status queries
// survive an agent restart.
type SyncStateStore interface {
	// SaveSyncState stores the finalized pass report and last error message,
	// replacing any previous snapshot.
	SaveSyncState(ctx context.Context, report *models.SyncPassReport, lastError string) error

	// LoadSyncState returns the persisted pass report and error message, or
	// (nil, "", nil) when no pass has completed yet.
	LoadSyncState(ctx context.Context) (*models.SyncPassReport, string, error)
}
