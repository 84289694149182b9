package service

import (
	"maps"
	"testing"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func newTestResolver() ConfigResolver {
	return NewConfigResolver(config.Overrides{
		FullOverridePath: "/work/jaeger-ui.config.js",
		PatchPath:        "/work/jaeger-ui.config.json",
	})
}

func TestConfigResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		base      models.BackendConfig
		overrides models.OverrideSet
		want      models.ResolvedConfig
	}{
		{
			name:      "patch merged over backend",
			base:      models.BackendConfig{UIConfig: map[string]any{"a": 1, "b": 2}},
			overrides: models.OverrideSet{JSONPatch: map[string]any{"b": 3, "c": 4}},
			want: models.ResolvedConfig{
				UIConfig: map[string]any{"a": 1, "b": 3, "c": 4},
				Source:   "backend + jaeger-ui.config.json",
			},
		},
		{
			name: "backend only",
			base: models.BackendConfig{UIConfig: map[string]any{"a": 1}},
			want: models.ResolvedConfig{
				UIConfig: map[string]any{"a": 1},
				Source:   models.SourceBackend,
			},
		},
		{
			name:      "patch only",
			overrides: models.OverrideSet{JSONPatch: map[string]any{"c": 4}},
			want: models.ResolvedConfig{
				UIConfig: map[string]any{"c": 4},
				Source:   "jaeger-ui.config.json",
			},
		},
		{
			name: "nothing available",
			want: models.ResolvedConfig{Source: models.SourceDefaults},
		},
		{
			name:      "nested objects are replaced, not merged",
			base:      models.BackendConfig{UIConfig: map[string]any{"menu": map[string]any{"x": 1, "y": 2}}},
			overrides: models.OverrideSet{JSONPatch: map[string]any{"menu": map[string]any{"x": 9}}},
			want: models.ResolvedConfig{
				UIConfig: map[string]any{"menu": map[string]any{"x": 9}},
				Source:   "backend + jaeger-ui.config.json",
			},
		},
		{
			name: "full override wins over everything",
			base: models.BackendConfig{UIConfig: map[string]any{"a": 1}},
			overrides: models.OverrideSet{
				FullOverrideSource: ptr("return {};"),
				JSONPatch:          map[string]any{"b": 2},
			},
			want: models.ResolvedConfig{
				Source:       "jaeger-ui.config.js",
				FullOverride: &models.FullOverrideDirective{Source: "return {};"},
			},
		},
		{
			name: "capabilities and version pass through",
			base: models.BackendConfig{
				StorageCapabilities: testCapabilities,
				Version:             testVersion,
			},
			overrides: models.OverrideSet{FullOverrideSource: ptr("")},
			want: models.ResolvedConfig{
				Source:              "jaeger-ui.config.js",
				StorageCapabilities: testCapabilities,
				Version:             testVersion,
				FullOverride:        &models.FullOverrideDirective{Source: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newTestResolver().Resolve(tt.base, tt.overrides)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigResolver_Resolve_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	patch := map[string]any{"b": 3}

	newTestResolver().Resolve(models.BackendConfig{UIConfig: base}, models.OverrideSet{JSONPatch: patch})

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, base)
	assert.Equal(t, map[string]any{"b": 3}, patch)
}

func TestMergeShallow_Property(t *testing.T) {
	keys := rapid.StringMatching(`[a-e]{1,2}`)
	values := rapid.IntRange(-100, 100)

	rapid.Check(t, func(t *rapid.T) {
		base := toAnyMap(rapid.MapOf(keys, values).Draw(t, "base"))
		patch := toAnyMap(rapid.MapOf(keys, values).Draw(t, "patch"))
		baseBefore := maps.Clone(base)

		merged := mergeShallow(base, patch)

		for k, v := range patch {
			if merged[k] != v {
				t.Fatalf("key %q: got %v, want patch value %v", k, merged[k], v)
			}
		}
		for k, v := range base {
			if _, patched := patch[k]; !patched && merged[k] != v {
				t.Fatalf("key %q: got %v, want base value %v", k, merged[k], v)
			}
		}
		for k := range merged {
			_, inBase := base[k]
			_, inPatch := patch[k]
			if !inBase && !inPatch {
				t.Fatalf("key %q came from nowhere", k)
			}
		}
		if !maps.Equal(base, baseBefore) {
			t.Fatalf("base was modified")
		}
	})
}

func toAnyMap(m map[string]int) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
