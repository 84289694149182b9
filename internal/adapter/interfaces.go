// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the query backend the UI configuration is read
// from.
//
// [BackendAdapter] hides the HTTP details of the four configuration endpoints
// from the service layer. Non-2xx responses are mapped to the sentinel errors
// in errors.go by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// Backend endpoint paths.
const (
	// UnifiedConfigPath serves uiConfig, storageCapabilities and version in a
	// single document.
	UnifiedConfigPath = "/api/ui/config"

	// Legacy per-field endpoints, each returning its object directly.
	UIConfigPath            = "/api/config"
	StorageCapabilitiesPath = "/api/capabilities"
	VersionPath             = "/api/version"
)

// BackendAdapter defines the calls made against the query backend. Every
// method honours the deadline and cancellation of ctx.
type BackendAdapter interface {
	// GetUnifiedConfig calls GET /api/ui/config. Keys missing from the
	// response, or holding anything other than a JSON object, come back as
	// nil maps.
	GetUnifiedConfig(ctx context.Context) (models.BackendConfig, error)

	// GetUIConfig calls GET /api/config.
	GetUIConfig(ctx context.Context) (map[string]any, error)

	// GetStorageCapabilities calls GET /api/capabilities.
	GetStorageCapabilities(ctx context.Context) (map[string]any, error)

	// GetVersion calls GET /api/version.
	GetVersion(ctx context.Context) (map[string]any, error)
}
