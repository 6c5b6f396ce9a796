package main

import (
	"context"
	"fmt"

	httphandler "github.com/akalinin/go-worklog/internal/handler/http"

	"github.com/akalinin/go-worklog/internal/adapter"
	"github.com/akalinin/go-worklog/internal/config"
	"github.com/akalinin/go-worklog/internal/logger"
	"github.com/akalinin/go-worklog/internal/server"
	"github.com/akalinin/go-worklog/internal/service"
	"github.com/akalinin/go-worklog/internal/store"
	"github.com/akalinin/go-worklog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAgentLogger("worklog-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewHTTPRemoteClient(cfg.Remote, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote client")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewServices(storages, remote, cfg.Sync, log)
	if err = services.Sync.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("initialize sync engine")
	}

	handler := httphandler.NewHandler(services, log)
	scheduler := workers.NewSyncScheduler(services.Sync, cfg.Workers.SyncInterval, log)

	srv, err := server.NewServer(handler.Init(), workers.NewWorkers(scheduler), cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
