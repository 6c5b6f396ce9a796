package service

import (
	"context"
	"errors"

	"github.com/sethvargo/go-retry"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

// pullStrategy mirrors remote-owned data onto the device. The remote copy is
// authoritative: each run replaces the local mirror wholesale, so deletions on
// the server propagate without tombstones.
type pullStrategy struct {
	entityType models.EntityType
	records    store.RecordStore
	remote     adapter.RemoteClient

	maxRetries int

	logger *logger.Logger
}

func newPullStrategy(entityType models.EntityType, records store.RecordStore, remote adapter.RemoteClient, maxRetries int, logger *logger.Logger) EntitySyncStrategy {
	return &pullStrategy{
		entityType: entityType,
		records:    records,
		remote:     remote,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (s *pullStrategy) EntityType() models.EntityType { return s.entityType }

// Sync implements [EntitySyncStrategy]. A failed fetch leaves the previous
// mirror untouched; stale data beats no data for an offline-first agent.
func (s *pullStrategy) Sync(ctx context.Context) (models.EntitySyncResult, error) {
	res := models.EntitySyncResult{EntityType: s.entityType}

	remote, err := s.fetchAll(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			res.Error = err.Error()
			return res, err
		}
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Error = err.Error()
		return res, nil
	}

	res.Attempted = len(remote)
	if err = s.records.OverwriteMirrored(ctx, s.entityType, remote); err != nil {
		// a store that cannot take the mirror is fatal for this stream
		res.Failed = len(remote)
		res.Error = err.Error()
		s.logger.Err(err).
			Str("func", "pullStrategy.Sync").
			Str("entity_type", string(s.entityType)).
			Msg("failed to overwrite local mirror")
		return res, err
	}

	res.Succeeded = len(remote)
	return res, nil
}

func (s *pullStrategy) fetchAll(ctx context.Context) ([]models.Record, error) {
	backoff := retry.WithMaxRetries(uint64(s.maxRetries), retry.NewExponential(retryBaseDelay))

	var records []models.Record
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, fetchErr := s.remote.FetchAll(ctx, s.entityType)
		if fetchErr != nil {
			if adapter.IsTransient(fetchErr) {
				return retry.RetryableError(fetchErr)
			}
			return fetchErr
		}
		records = fetched
		return nil
	})

	return records, err
}
