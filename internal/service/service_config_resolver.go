package service

import (
	"maps"
	"path/filepath"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

type configResolver struct {
	fullOverrideLabel string
	patchLabel        string
}

// NewConfigResolver returns a [ConfigResolver]. The provenance labels of the
// local files are their base names, e.g. "jaeger-ui.config.json".
func NewConfigResolver(cfg config.Overrides) ConfigResolver {
	return &configResolver{
		fullOverrideLabel: filepath.Base(cfg.FullOverridePath),
		patchLabel:        filepath.Base(cfg.PatchPath),
	}
}

// Resolve implements [ConfigResolver].
//
// Precedence, highest first: full override, patch merged over backend,
// backend, built-in defaults. Storage capabilities and version always come
// from base.
func (r *configResolver) Resolve(base models.BackendConfig, overrides models.OverrideSet) models.ResolvedConfig {
	resolved := models.ResolvedConfig{
		StorageCapabilities: base.StorageCapabilities,
		Version:             base.Version,
	}

	if overrides.HasFullOverride() {
		resolved.FullOverride = &models.FullOverrideDirective{Source: *overrides.FullOverrideSource}
		resolved.Source = r.fullOverrideLabel
		return resolved
	}

	hasBase := base.UIConfig != nil
	switch {
	case hasBase && overrides.HasPatch():
		resolved.UIConfig = mergeShallow(base.UIConfig, overrides.JSONPatch)
		resolved.Source = models.SourceBackend + " + " + r.patchLabel
	case hasBase:
		resolved.UIConfig = base.UIConfig
		resolved.Source = models.SourceBackend
	case overrides.HasPatch():
		resolved.UIConfig = mergeShallow(nil, overrides.JSONPatch)
		resolved.Source = r.patchLabel
	default:
		resolved.Source = models.SourceDefaults
	}

	return resolved
}

// mergeShallow returns a new map holding base overlaid with patch. Only top
// level keys are merged; nested objects in patch replace those in base.
func mergeShallow(base, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(patch))
	maps.Copy(merged, base)
	maps.Copy(merged, patch)
	return merged
}
