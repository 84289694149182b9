package service

import (
	"context"

	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

// FetchFunc produces a fresh backend config. It must not fail: every error
// is folded into nil fields.
type FetchFunc func(ctx context.Context) models.BackendConfig

// ConfigFetcher reads the UI configuration from the query backend, trying the
// unified endpoint first and the three legacy endpoints after it.
type ConfigFetcher interface {
	Fetch(ctx context.Context) models.BackendConfig
}

// ConfigCache keeps the result of the most recent fetch attempt for a short
// validity window.
type ConfigCache interface {
	// Get returns the cached config while it is fresh, otherwise calls fetch
	// and caches whatever it returns, including an all-nil config.
	Get(ctx context.Context, fetch FetchFunc) models.BackendConfig
}

// OverrideLoader reads the local developer override files.
type OverrideLoader interface {
	Load() models.OverrideSet
}

// ConfigResolver applies the local overrides to the backend config.
type ConfigResolver interface {
	Resolve(base models.BackendConfig, overrides models.OverrideSet) models.ResolvedConfig
}

// HTMLInjector substitutes resolved values into the markers of an index
// document.
type HTMLInjector interface {
	Inject(html string, resolved models.ResolvedConfig) string
}

// RenderService runs the whole pipeline for one request of the index
// document.
type RenderService interface {
	Render(ctx context.Context, html string) string
}

// AppInfoService reports build information of the running dev server.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
