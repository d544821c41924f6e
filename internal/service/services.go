package service

import (
	"github.com/dmarrero/jobtrack/internal/config"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/session"
	"github.com/dmarrero/jobtrack/internal/store"
)

type Services struct {
	AuthService   AuthService
	JobService    JobService
	SearchService SearchService
}

func NewServices(storages store.Storages, sessions session.Store, search SearchProvider, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, sessions, cfg.Auth, logger),
		JobService:    NewJobService(storages.JobRepository, logger),
		SearchService: NewSearchService(search, logger),
	}
}
