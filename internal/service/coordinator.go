// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/models"
)

type syncCoordinator struct {
	records  store.RecordStore
	remote   adapter.RemoteClient
	registry *statusRegistry

	strategies map[models.EntityType]EntitySyncStrategy
	order      []models.EntityType
	workers    int

	reachable atomic.Bool
	logger    *logger.Logger
}

// NewSyncCoordinator wires one strategy per known entity type: push for
// locally-authored data, pull-mirror for organization data.
func NewSyncCoordinator(records store.RecordStore, state store.SyncStateStore, remote adapter.RemoteClient, cfg config.AgentSync, logger *logger.Logger) SyncCoordinator {
	strategies := make(map[models.EntityType]EntitySyncStrategy)
	order := make([]models.EntityType, 0, len(models.AllEntityTypes()))

	for _, et := range models.PushEntityTypes() {
		strategies[et] = newPushStrategy(et, records, remote, cfg.BatchSize, cfg.MaxRetries, logger)
		order = append(order, et)
	}
	strategies[models.EntityOrganization] = newPullStrategy(models.EntityOrganization, records, remote, cfg.MaxRetries, logger)
	order = append(order, models.EntityOrganization)

	return &syncCoordinator{
		records:    records,
		remote:     remote,
		registry:   newStatusRegistry(state, logger),
		strategies: strategies,
		order:      order,
		workers:    cfg.Workers,
		logger:     logger,
	}
}

// Initialize implements [SyncCoordinator].
func (c *syncCoordinator) Initialize(ctx context.Context) error {
	if err := c.registry.restore(ctx); err != nil {
		return fmt.Errorf("restore sync state: %w", err)
	}

	if err := c.CheckRemote(ctx); err != nil {
		// offline start is a normal condition for this agent
		c.logger.Warn().
			Str("func", "syncCoordinator.Initialize").
			Err(err).
			Msg("remote backend not reachable at startup")
	}

	return nil
}

// SyncAll implements [SyncCoordinator].
func (c *syncCoordinator) SyncAll(ctx context.Context) (*models.SyncPassReport, error) {
	if !c.registry.TryBeginPass() {
		return nil, ErrSyncInProgress
	}

	return c.runPass(ctx, c.orderedStrategies()), nil
}

// SyncOne implements [SyncCoordinator].
func (c *syncCoordinator) SyncOne(ctx context.Context, entityType models.EntityType) (*models.SyncPassReport, error) {
	strategy, ok := c.strategies[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}

	if !c.registry.TryBeginPass() {
		return nil, ErrSyncInProgress
	}

	return c.runPass(ctx, []EntitySyncStrategy{strategy}), nil
}

// ScheduleSync implements [SyncCoordinator]. The gate is taken synchronously,
// so a caller that got nil back knows the pass is really running.
func (c *syncCoordinator) ScheduleSync(ctx context.Context) error {
	if !c.registry.TryBeginPass() {
		return ErrSyncInProgress
	}

	go func() {
		// detached from the caller's request lifetime on purpose
		c.runPass(context.WithoutCancel(ctx), c.orderedStrategies())
	}()

	return nil
}

// Status implements [SyncCoordinator].
func (c *syncCoordinator) Status() models.SyncStatus {
	return c.registry.CurrentStatus()
}

// Pending implements [SyncCoordinator].
func (c *syncCoordinator) Pending(ctx context.Context) (map[models.EntityType]int64, error) {
	pending := make(map[models.EntityType]int64, len(models.PushEntityTypes()))
	for _, et := range models.PushEntityTypes() {
		count, err := c.records.CountUnsynced(ctx, et)
		if err != nil {
			return nil, fmt.Errorf("count unsynced %s: %w", et, err)
		}
		pending[et] = count
	}
	return pending, nil
}

// SetToken implements [SyncCoordinator].
func (c *syncCoordinator) SetToken(token string) {
	c.remote.SetToken(token)
	c.logger.Info().Str("func", "syncCoordinator.SetToken").Msg("remote credential replaced")
}

// CheckRemote implements [SyncCoordinator].
func (c *syncCoordinator) CheckRemote(ctx context.Context) error {
	err := c.remote.Ping(ctx)
	c.reachable.Store(err == nil)
	return err
}

// RemoteReachable implements [SyncCoordinator].
func (c *syncCoordinator) RemoteReachable() bool {
	return c.reachable.Load()
}

// runPass executes the given strategies over a bounded worker group and
// finalizes the pass report. The registry gate must already be held; runPass
// guarantees its release.
func (c *syncCoordinator) runPass(ctx context.Context, strategies []EntitySyncStrategy) *models.SyncPassReport {
	report := &models.SyncPassReport{
		StartedAt: time.Now(),
		PerEntity: make(map[models.EntityType]models.EntitySyncResult, len(strategies)),
	}

	var mu sync.Mutex
	var passErr error

	// finalization is deferred so that not even a panicking strategy can
	// leave the gate held
	defer func() {
		report.FinishedAt = time.Now()
		report.Overall = report.Aggregate()
		if ctx.Err() != nil {
			report.Overall = models.PassInterrupted
		}

		lastError := report.FirstError()
		if lastError == "" && passErr != nil {
			lastError = passErr.Error()
		}

		// persist past cancellation so a shutdown mid-pass still leaves an
		// accurate interrupted snapshot behind
		c.registry.EndPass(context.WithoutCancel(ctx), report, lastError)

		c.logger.Info().
			Str("func", "syncCoordinator.runPass").
			Str("overall", string(report.Overall)).
			Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
			Msg("sync pass finished")
	}()

	var g errgroup.Group
	g.SetLimit(c.workers)

	for _, strategy := range strategies {
		g.Go(func() error {
			res, err := strategy.Sync(ctx)

			mu.Lock()
			report.PerEntity[strategy.EntityType()] = res
			mu.Unlock()

			// an aborting error (rejected credentials, store failure,
			// cancellation) ends this stream only; every other strategy
			// still gets its attempt
			return err
		})
	}

	passErr = g.Wait()

	return report
}

func (c *syncCoordinator) orderedStrategies() []EntitySyncStrategy {
	strategies := make([]EntitySyncStrategy, 0, len(c.order))
	for _, et := range c.order {
		strategies = append(strategies, c.strategies[et])
	}
	return strategies
}
