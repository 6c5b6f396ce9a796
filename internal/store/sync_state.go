// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/models"
)

// syncStateRepository persists the outcome of the most recent sync pass in a
// single-row table so that status survives agent restarts.
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateStore {
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) SaveSyncState(ctx context.Context, report *models.SyncPassReport, lastError string) error {
	log := logger.FromContext(ctx)

	var lastPass string
	if report != nil {
		raw, err := json.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal sync pass report: %w", err)
		}
		lastPass = string(raw)
	}

	query, args, err := sq.Insert("sync_state").
		Columns("id", "last_pass", "last_error", "updated_at").
		Values(1, lastPass, lastError, time.Now()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			last_pass = excluded.last_pass,
			last_error = excluded.last_error,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: save sync state: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.SaveSyncState").
			Msg("failed to persist sync state")
		return fmt.Errorf("%w: save sync state: %s", ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncStateRepository) LoadSyncState(ctx context.Context) (*models.SyncPassReport, string, error) {
	query, args, err := sq.Select("last_pass", "last_error").
		From("sync_state").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("%w: load sync state: %s", ErrBuildingSQLQuery, err)
	}

	var lastPass, lastError string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&lastPass, &lastError)
	if errors.Is(err, sql.ErrNoRows) {
		// fresh database, no pass has completed yet
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: load sync state: %s", ErrScanningRow, err)
	}

	if lastPass == "" {
		return nil, lastError, nil
	}

	var report models.SyncPassReport
	if err = json.Unmarshal([]byte(lastPass), &report); err != nil {
		return nil, "", fmt.Errorf("unmarshal sync pass report: %w", err)
	}

	return &report, lastError, nil
}
