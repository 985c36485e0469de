package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trips/internal/config"
	"github.com/MKhiriev/go-trips/internal/handler"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/metrics"
	"github.com/MKhiriev/go-trips/internal/server"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const dbConnectTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-trips-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("dialect", string(store.DialectFromDSN(cfg.Storage.DB.DSN))).
		Strs("cors_origins", cfg.Server.AllowedOrigins).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if !cfg.Storage.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
