package store

import (
	"context"

	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
)

// Storages bundles every repository the agent works with.
type Storages struct {
	Records   RecordStore
	SyncState SyncStateStore

	db *DB
}

// NewStorages opens the local SQLite database, applies pending migrations and
// wires the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.AgentStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		Records:   NewRecordRepository(db, log),
		SyncState: NewSyncStateRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
