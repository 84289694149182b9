// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"golang.org/x/sync/singleflight"
)

const cacheFlightKey = "backend-config"

type cacheEntry struct {
	value     models.BackendConfig
	fetchedAt time.Time
}

type configCache struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	entry *cacheEntry

	flights singleflight.Group

	logger *logger.Logger
}

// NewConfigCache returns a single-slot [ConfigCache] keeping fetch results
// for cfg.TTL. now is the clock used for freshness checks; nil means
// time.Now.
func NewConfigCache(cfg config.Cache, now func() time.Time, logger *logger.Logger) ConfigCache {
	if now == nil {
		now = time.Now
	}

	return &configCache{
		ttl:    cfg.TTL,
		now:    now,
		logger: logger,
	}
}

// Get implements [ConfigCache].
//
// Concurrent misses share a single fetch. The fetch runs detached from the
// caller's cancellation, so a client that goes away mid-fetch still leaves a
// fresh entry behind for the next render.
func (c *configCache) Get(ctx context.Context, fetch FetchFunc) models.BackendConfig {
	if value, ok := c.lookup(c.now()); ok {
		return value
	}

	v, _, shared := c.flights.Do(cacheFlightKey, func() (any, error) {
		startedAt := c.now()
		if value, ok := c.lookup(startedAt); ok {
			return value, nil
		}

		value := fetch(context.WithoutCancel(ctx))
		c.store(value, startedAt)

		return value, nil
	})
	if shared {
		c.logger.Debug().Msg("joined an in-flight backend config fetch")
	}

	return v.(models.BackendConfig)
}

func (c *configCache) lookup(now time.Time) (models.BackendConfig, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil || now.Sub(c.entry.fetchedAt) > c.ttl {
		return models.BackendConfig{}, false
	}

	return c.entry.value, true
}

func (c *configCache) store(value models.BackendConfig, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// an older fetch never replaces a newer entry
	if c.entry != nil && fetchedAt.Before(c.entry.fetchedAt) {
		return
	}

	c.entry = &cacheEntry{value: value, fetchedAt: fetchedAt}
}
