package handler

import (
	"github.com/dmarrero/jobtrack/internal/config"
	"github.com/dmarrero/jobtrack/internal/handler/http"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
