package service

import (
	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/store"
)

type Services struct {
	Sync    SyncCoordinator
	Tracker TrackerService
}

func NewServices(storages *store.Storages, remote adapter.RemoteClient, cfg config.AgentSync, logger *logger.Logger) *Services {
	return &Services{
		Sync:    NewSyncCoordinator(storages.Records, storages.SyncState, remote, cfg, logger),
		Tracker: NewTrackerService(storages.Records, remote, logger),
	}
}
