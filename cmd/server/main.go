package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/blood-press-log/internal/adapter"
	"github.com/MKhiriev/blood-press-log/internal/config"
	handler "github.com/MKhiriev/blood-press-log/internal/handler/http"
	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/server"
	"github.com/MKhiriev/blood-press-log/internal/service"
	"github.com/MKhiriev/blood-press-log/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blood-press-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close() //nolint:errcheck

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	recognizer := adapter.NewOCRAdapter(cfg.OCR, log)
	services := service.NewServices(storages, recognizer, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
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
