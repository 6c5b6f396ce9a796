// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kalinin

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/service"
)

type syncScheduler struct {
	coordinator service.SyncCoordinator
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncScheduler creates a worker that runs a full sync pass immediately on
// Start and then on every interval tick. If interval is zero or negative it
// defaults to 5 minutes. The worker is idle until Start is called.
func NewSyncScheduler(coordinator service.SyncCoordinator, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncScheduler{coordinator: coordinator, interval: interval, logger: logger}
}

// Start implements [Worker]. It stops any previously running schedule, then
// launches a background goroutine that syncs every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (s *syncScheduler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		s.runPass(jobCtx)

		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.runPass(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the worker is
// not running (no-op in that case).
func (s *syncScheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *syncScheduler) runPass(ctx context.Context) {
	_, err := s.coordinator.SyncAll(ctx)
	if err == nil {
		return
	}

	// a manually triggered pass holding the gate is not a scheduler problem
	if errors.Is(err, service.ErrSyncInProgress) {
		s.logger.Debug().
			Str("func", "syncScheduler.runPass").
			Msg("skipping scheduled pass, sync already running")
		return
	}

	s.logger.Err(err).
		Str("func", "syncScheduler.runPass").
		Msg("scheduled sync pass failed")
}
