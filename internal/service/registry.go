package service

import (
	"context"
	"sync"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

// statusRegistry is the single-flight gate of the sync engine and the holder
// of its status snapshot. TryBeginPass and EndPass bracket a pass; at most one
// caller at a time can hold the gate.
type statusRegistry struct {
	state  store.SyncStateStore
	logger *logger.Logger

	mu        sync.Mutex
	syncing   bool
	lastPass  *models.SyncPassReport
	lastError string
}

func newStatusRegistry(state store.SyncStateStore, logger *logger.Logger) *statusRegistry {
	return &statusRegistry{state: state, logger: logger}
}

// restore loads the outcome of the last pass persisted before the previous
// shutdown, so status survives agent restarts.
func (r *statusRegistry) restore(ctx context.Context) error {
	report, lastError, err := r.state.LoadSyncState(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.lastPass = report
	r.lastError = lastError
	r.mu.Unlock()

	return nil
}

// TryBeginPass attempts to take the gate. It never blocks: the second caller
// gets false while a pass is running.
func (r *statusRegistry) TryBeginPass() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.syncing {
		return false
	}
	r.syncing = true
	return true
}

// EndPass releases the gate and records the pass outcome, both in memory and
// in the local database. A persistence failure is logged but never blocks the
// release: a stuck gate would be worse than a stale on-disk snapshot.
func (r *statusRegistry) EndPass(ctx context.Context, report *models.SyncPassReport, lastError string) {
	r.mu.Lock()
	r.syncing = false
	r.lastPass = report
	r.lastError = lastError
	r.mu.Unlock()

	if err := r.state.SaveSyncState(ctx, report, lastError); err != nil {
		r.logger.Err(err).
			Str("func", "statusRegistry.EndPass").
			Msg("failed to persist sync pass outcome")
	}
}

// CurrentStatus returns an immutable snapshot of the engine state.
func (r *statusRegistry) CurrentStatus() models.SyncStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return models.SyncStatus{
		IsSyncing: r.syncing,
		LastPass:  r.lastPass,
		LastError: r.lastError,
	}
}
