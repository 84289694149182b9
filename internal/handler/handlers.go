package handler

import (
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/handler/http"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	// Reload is shared by the HTTP handler and the override file watcher.
	Reload *http.ReloadHub
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	hub := http.NewReloadHub(logger)

	return &Handlers{
		HTTP:   http.NewHandler(services, hub, cfg.Server, cfg.Overrides, logger),
		Reload: hub,
	}, nil
}
