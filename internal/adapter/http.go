package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/utils"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs the HTTP implementation of
// [BackendAdapter]. The base URL is normalised from cfg.Address and
// cfg.RequestTimeout becomes the client-wide request timeout.
//
// Returns an error if cfg.Address is empty or is not a valid URL.
func NewHTTPBackendAdapter(cfg config.Backend, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// unifiedConfigResponse keeps each field raw so that one field of an
// unexpected shape does not invalidate the others.
type unifiedConfigResponse struct {
	UIConfig            json.RawMessage `json:"uiConfig"`
	StorageCapabilities json.RawMessage `json:"storageCapabilities"`
	Version             json.RawMessage `json:"version"`
}

// GetUnifiedConfig implements [BackendAdapter].
func (h *httpBackendAdapter) GetUnifiedConfig(ctx context.Context) (models.BackendConfig, error) {
	body, err := h.get(ctx, UnifiedConfigPath)
	if err != nil {
		return models.BackendConfig{}, err
	}

	var resp unifiedConfigResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return models.BackendConfig{}, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, UnifiedConfigPath, err)
	}

	return models.BackendConfig{
		UIConfig:            decodeObject(resp.UIConfig),
		StorageCapabilities: decodeObject(resp.StorageCapabilities),
		Version:             decodeObject(resp.Version),
	}, nil
}

// GetUIConfig implements [BackendAdapter].
func (h *httpBackendAdapter) GetUIConfig(ctx context.Context) (map[string]any, error) {
	return h.getObject(ctx, UIConfigPath)
}

// GetStorageCapabilities implements [BackendAdapter].
func (h *httpBackendAdapter) GetStorageCapabilities(ctx context.Context) (map[string]any, error) {
	return h.getObject(ctx, StorageCapabilitiesPath)
}

// GetVersion implements [BackendAdapter].
func (h *httpBackendAdapter) GetVersion(ctx context.Context) (map[string]any, error) {
	return h.getObject(ctx, VersionPath)
}

func (h *httpBackendAdapter) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend call succeeded")

	return resp.Body(), nil
}

func (h *httpBackendAdapter) getObject(ctx context.Context, path string) (map[string]any, error) {
	body, err := h.get(ctx, path)
	if err != nil {
		return nil, err
	}

	obj := decodeObject(body)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON object", ErrMalformedResponse, path)
	}

	return obj, nil
}

// decodeObject returns raw decoded as a JSON object, or nil when raw is
// empty, null, malformed, or any other JSON value.
func decodeObject(raw []byte) map[string]any {
	obj, err := utils.DecodeJSONObject(raw)
	if err != nil {
		return nil
	}

	return obj
}
