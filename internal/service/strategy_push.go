// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package service

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

const retryBaseDelay = 250 * time.Millisecond

// pushStrategy uploads locally-authored records of one entity type. It pages
// through the unsynced backlog with a cursor and pushes records one by one,
// marking each synced only after the server has accepted it.
type pushStrategy struct {
	entityType models.EntityType
	records    store.RecordStore
	remote     adapter.RemoteClient

	batchSize  int
	maxRetries int

	logger *logger.Logger
}

func newPushStrategy(entityType models.EntityType, records store.RecordStore, remote adapter.RemoteClient, batchSize, maxRetries int, logger *logger.Logger) EntitySyncStrategy {
	return &pushStrategy{
		entityType: entityType,
		records:    records,
		remote:     remote,
		batchSize:  batchSize,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (s *pushStrategy) EntityType() models.EntityType { return s.entityType }

// Sync implements [EntitySyncStrategy]. A rejected or repeatedly unavailable
// record is counted as failed and skipped; the rest of the backlog still gets
// its chance. Rejected credentials, cancellation and local store failures
// abort the stream: the former two cannot heal mid-pass and a store that
// cannot record progress must not keep pushing.
func (s *pushStrategy) Sync(ctx context.Context) (models.EntitySyncResult, error) {
	res := models.EntitySyncResult{EntityType: s.entityType}

	cursor := models.Cursor{}
	for {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}

		batch, err := s.records.ListUnsynced(ctx, s.entityType, cursor, s.batchSize)
		if err != nil {
			res.Error = err.Error()
			return res, err
		}
		if len(batch) == 0 {
			return res, nil
		}

		for _, rec := range batch {
			res.Attempted++

			pushErr := s.pushRecord(ctx, rec)
			switch {
			case pushErr == nil:
				if markErr := s.markSynced(ctx, rec.ID); markErr != nil {
					res.Failed++
					if res.Error == "" {
						res.Error = markErr.Error()
					}
					return res, markErr
				}
				res.Succeeded++

			case errors.Is(pushErr, adapter.ErrUnauthorized):
				res.Failed++
				res.Error = pushErr.Error()
				return res, pushErr

			case ctx.Err() != nil:
				res.Failed++
				return res, ctx.Err()

			default:
				// rejected by the server or retries exhausted; the record
				// stays unsynced and the stream moves on
				res.Failed++
				if res.Error == "" {
					res.Error = pushErr.Error()
				}
				s.logger.Err(pushErr).
					Str("func", "pushStrategy.Sync").
					Str("entity_type", string(s.entityType)).
					Str("id", rec.ID).
					Msg("record push failed")
			}
		}

		cursor = cursor.Advance(batch)
	}
}

// pushRecord uploads one record, retrying transient failures with exponential
// backoff. Permanent failures surface immediately.
func (s *pushStrategy) pushRecord(ctx context.Context, rec models.Record) error {
	backoff := retry.WithMaxRetries(uint64(s.maxRetries), retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.remote.Upsert(ctx, s.entityType, rec)
		if err == nil {
			return nil
		}
		if adapter.IsTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *pushStrategy) markSynced(ctx context.Context, id string) error {
	_, err := s.records.MarkSynced(ctx, s.entityType, id)
	return err
}
