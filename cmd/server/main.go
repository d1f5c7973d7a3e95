package main

import (
	"context"
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/handler"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/schema"
	"github.com/tuckersync/tucker-sync/internal/server"
	"github.com/tuckersync/tucker-sync/internal/service"
	"github.com/tuckersync/tucker-sync/internal/store"
	"github.com/tuckersync/tucker-sync/internal/workers"
	"github.com/tuckersync/tucker-sync/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()

	log := logger.NewLogger("sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	if err = migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	// The counter must catch up with any versions written before an
	// unclean shutdown, or new sessions could reuse them.
	if _, err = storages.SyncRepository.RecoverCounter(ctx); err != nil {
		log.Fatal().Err(err).Msg("error recovering sync counter")
	}

	registry, err := schema.NewRegistry(cfg.Sync.Classes)
	if err != nil {
		log.Fatal().Err(err).Msg("error building class registry")
	}

	services, err := service.NewServices(storages, registry, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(storages.SyncRepository, cfg, log)
	background.Start(ctx)
	defer background.Stop()

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
