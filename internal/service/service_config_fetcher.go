// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/adapter"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"golang.org/x/sync/errgroup"
)

// Names of the paths that can satisfy a fetch, reported in diagnostics.
const (
	fetchPathUnified     = "unified"
	fetchPathLegacy      = "legacy"
	fetchPathUnreachable = "unreachable"
)

type configFetcher struct {
	backend adapter.BackendAdapter
	timeout time.Duration

	logger *logger.Logger
}

// NewConfigFetcher returns a [ConfigFetcher] bounding every backend call by
// cfg.RequestTimeout.
func NewConfigFetcher(backend adapter.BackendAdapter, cfg config.Backend, logger *logger.Logger) ConfigFetcher {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	return &configFetcher{
		backend: backend,
		timeout: timeout,
		logger:  logger,
	}
}

// Fetch implements [ConfigFetcher]. It never fails: a field whose source
// could not be read is nil, and a backend that cannot be reached at all
// yields an all-nil config.
func (f *configFetcher) Fetch(ctx context.Context) (cfg models.BackendConfig) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Any("panic", r).Msg("backend config fetch panicked")
			cfg = models.BackendConfig{}
		}
	}()

	cfg, err := f.fetchUnified(ctx)
	if err == nil {
		f.logFetchPath(fetchPathUnified, cfg)
		return cfg
	}
	f.logger.Debug().Err(err).Msg("unified config endpoint failed, trying legacy endpoints")

	cfg = f.fetchLegacy(ctx)
	if cfg.IsEmpty() {
		f.logFetchPath(fetchPathUnreachable, cfg)
	} else {
		f.logFetchPath(fetchPathLegacy, cfg)
	}

	return cfg
}

func (f *configFetcher) fetchUnified(ctx context.Context) (models.BackendConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return f.backend.GetUnifiedConfig(ctx)
}

// fetchLegacy queries the three per-field endpoints concurrently and waits
// for all of them. A failing call never cancels the others.
func (f *configFetcher) fetchLegacy(ctx context.Context) models.BackendConfig {
	var uiConfig, capabilities, version map[string]any

	var g errgroup.Group
	g.Go(func() error {
		uiConfig = f.fetchField(ctx, adapter.UIConfigPath, f.backend.GetUIConfig)
		return nil
	})
	g.Go(func() error {
		capabilities = f.fetchField(ctx, adapter.StorageCapabilitiesPath, f.backend.GetStorageCapabilities)
		return nil
	})
	g.Go(func() error {
		version = f.fetchField(ctx, adapter.VersionPath, f.backend.GetVersion)
		return nil
	})
	_ = g.Wait()

	return models.BackendConfig{
		UIConfig:            uiConfig,
		StorageCapabilities: capabilities,
		Version:             version,
	}
}

func (f *configFetcher) fetchField(
	ctx context.Context,
	path string,
	call func(context.Context) (map[string]any, error),
) (value map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error().Str("path", path).Err(fmt.Errorf("panic: %v", r)).Msg("backend call panicked")
			value = nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	value, err := call(ctx)
	if err != nil {
		f.logger.Debug().Str("path", path).Err(err).Msg("backend call failed")
		return nil
	}

	return value
}

func (f *configFetcher) logFetchPath(path string, cfg models.BackendConfig) {
	event := f.logger.Info()
	if path == fetchPathUnreachable {
		event = f.logger.Warn()
	}

	event.
		Str("fetch_path", path).
		Bool("ui_config", cfg.UIConfig != nil).
		Bool("storage_capabilities", cfg.StorageCapabilities != nil).
		Bool("version", cfg.Version != nil).
		Msg("backend config fetched")
}
