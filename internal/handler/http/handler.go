package http

import (
	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// appKeys is the set of accepted X-App-Key values, checked before any
	// other processing.
	appKeys map[string]struct{}

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	appKeys := make(map[string]struct{}, len(cfg.AppKeys))
	for _, key := range cfg.AppKeys {
		appKeys[key] = struct{}{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		appKeys:  appKeys,
		logger:   logger,
	}
}
