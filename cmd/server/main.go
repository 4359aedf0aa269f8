package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-kb-sync/internal/adapter"
	"github.com/MKhiriev/go-kb-sync/internal/config"
	"github.com/MKhiriev/go-kb-sync/internal/handler"
	"github.com/MKhiriev/go-kb-sync/internal/logger"
	"github.com/MKhiriev/go-kb-sync/internal/server"
	"github.com/MKhiriev/go-kb-sync/internal/service"
	"github.com/MKhiriev/go-kb-sync/internal/store"
	"github.com/MKhiriev/go-kb-sync/internal/workers"
	"github.com/MKhiriev/go-kb-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-kb-sync")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("go-kb-sync", cfg.App.LogFile)
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	kb, err := adapter.NewKnowledgeBaseAdapter(cfg.Adapter.KnowledgeBase, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating knowledge base adapter")
	}

	storages := store.NewStorages(db, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	syncService := service.NewStorageSyncService(storages, kb, cfg.Adapter.KnowledgeBase, log)
	executor := workers.NewSyncExecutor(syncService, cfg.Workers.SyncConcurrency, log)

	services, err := service.NewServices(storages, kb, syncService, executor, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	reconcile := workers.NewReconcileJob(services.ContentService, executor, cfg.Workers.ReconcileInterval, log)
	ws := workers.NewWorkers(executor, reconcile)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ws.Run(log.WithContext(ctx))
	srv.RunServer()
	ws.Stop()
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
