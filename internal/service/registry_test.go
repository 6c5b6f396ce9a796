package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/mock"
	"github.com/akalinin/go-worklog/models"
)

func TestStatusRegistry_GateIsExclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockSyncStateStore(ctrl)
	state.EXPECT().SaveSyncState(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	registry := newStatusRegistry(state, logger.Nop())

	require.True(t, registry.TryBeginPass())
	assert.False(t, registry.TryBeginPass())
	assert.True(t, registry.CurrentStatus().IsSyncing)

	registry.EndPass(context.Background(), &models.SyncPassReport{Overall: models.PassSuccess}, "")
	assert.False(t, registry.CurrentStatus().IsSyncing)
	assert.True(t, registry.TryBeginPass())
}

func TestStatusRegistry_ConcurrentBeginners(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockSyncStateStore(ctrl)

	registry := newStatusRegistry(state, logger.Nop())

	const goroutines = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if registry.TryBeginPass() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners, "exactly one goroutine may hold the gate")
}

func TestStatusRegistry_EndPassSurvivesPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockSyncStateStore(ctrl)
	state.EXPECT().
		SaveSyncState(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	registry := newStatusRegistry(state, logger.Nop())
	require.True(t, registry.TryBeginPass())

	report := &models.SyncPassReport{Overall: models.PassFailure}
	registry.EndPass(context.Background(), report, "boom")

	// the gate is released and the in-memory snapshot is updated anyway
	status := registry.CurrentStatus()
	assert.False(t, status.IsSyncing)
	assert.Equal(t, report, status.LastPass)
	assert.Equal(t, "boom", status.LastError)
}

func TestStatusRegistry_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockSyncStateStore(ctrl)

	saved := &models.SyncPassReport{Overall: models.PassPartialFailure}
	state.EXPECT().LoadSyncState(gomock.Any()).Return(saved, "previous error", nil)

	registry := newStatusRegistry(state, logger.Nop())
	require.NoError(t, registry.restore(context.Background()))

	status := registry.CurrentStatus()
	assert.Equal(t, saved, status.LastPass)
	assert.Equal(t, "previous error", status.LastError)
	assert.False(t, status.IsSyncing)
}
