// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] can be used to start
// the dev server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.IndexFile == "" {
		return ErrInvalidServerConfigs
	}

	if _, err := NormalizeBaseURL(cfg.Backend.Address); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackendConfigs, err)
	}
	if cfg.Backend.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidBackendConfigs)
	}

	if cfg.Cache.TTL < 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Overrides.FullOverridePath == "" || cfg.Overrides.PatchPath == "" {
		return ErrInvalidOverridesConfigs
	}

	return nil
}

// NormalizeBaseURL turns raw into an absolute base URL without a trailing
// slash. A missing scheme defaults to "http".
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
