package service

import (
	"context"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
)

type renderService struct {
	fetcher  ConfigFetcher
	cache    ConfigCache
	loader   OverrideLoader
	resolver ConfigResolver
	injector HTMLInjector

	logger *logger.Logger
}

// NewRenderService wires the pipeline components into a [RenderService].
func NewRenderService(
	fetcher ConfigFetcher,
	cache ConfigCache,
	loader OverrideLoader,
	resolver ConfigResolver,
	injector HTMLInjector,
	logger *logger.Logger,
) RenderService {
	return &renderService{
		fetcher:  fetcher,
		cache:    cache,
		loader:   loader,
		resolver: resolver,
		injector: injector,
		logger:   logger,
	}
}

// Render implements [RenderService]. The provenance of the injected config is
// logged through the request logger found in ctx, or the service logger when
// ctx has none.
func (s *renderService) Render(ctx context.Context, html string) string {
	base := s.cache.Get(ctx, s.fetcher.Fetch)
	overrides := s.loader.Load()
	resolved := s.resolver.Resolve(base, overrides)

	logger.FromContextOr(ctx, s.logger).Info().
		Str("source", resolved.Source).
		Bool("full_override", resolved.FullOverride != nil).
		Bool("storage_capabilities", resolved.StorageCapabilities != nil).
		Bool("version", resolved.Version != nil).
		Msg("ui config resolved")

	return s.injector.Inject(html, resolved)
}
