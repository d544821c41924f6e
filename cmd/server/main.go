package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarrero/jobtrack/internal/adapter"
	"github.com/dmarrero/jobtrack/internal/config"
	"github.com/dmarrero/jobtrack/internal/handler"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/server"
	"github.com/dmarrero/jobtrack/internal/service"
	"github.com/dmarrero/jobtrack/internal/session"
	"github.com/dmarrero/jobtrack/internal/store"
	"github.com/dmarrero/jobtrack/internal/workers"
)

// sessionPruneInterval is how often expired sessions are evicted from the
// in-memory session table.
const sessionPruneInterval = 15 * time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("jobtrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sessions := session.NewMemoryStore()
	search := adapter.NewUSAJobsAdapter(cfg.Search, log)
	services := service.NewServices(*storages, sessions, search, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewSessionPruner(sessions, cfg.Auth.TokenDuration, sessionPruneInterval, log),
	)
	background.Run()

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
