package service

import (
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/adapter"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

type Services struct {
	RenderService  RenderService
	AppInfoService AppInfoService
}

// NewServices builds the render pipeline on top of backend. The config cache
// is created once here and shared by every render.
func NewServices(backend adapter.BackendAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		RenderService: NewRenderService(
			NewConfigFetcher(backend, cfg.Backend, logger),
			NewConfigCache(cfg.Cache, nil, logger),
			NewOverrideLoader(cfg.Overrides, logger),
			NewConfigResolver(cfg.Overrides),
			NewHTMLInjector(logger),
			logger,
		),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
