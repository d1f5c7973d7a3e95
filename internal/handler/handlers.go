package handler

import (
	"errors"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/internal/handler/http"
	"github.com/tuckersync/tucker-sync/internal/logger"
	"github.com/tuckersync/tucker-sync/internal/service"
)

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// provided in the server configuration. This is treated as a fatal
// misconfiguration and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
