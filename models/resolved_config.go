// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Provenance labels reported in [ResolvedConfig.Source].
const (
	SourceBackend  = "backend"
	SourceDefaults = "defaults"
)

// ResolvedConfig is the final set of values injected into the index
// document for one render. It is built fresh per request.
type ResolvedConfig struct {
	// UIConfig is the merged UI configuration. Nil means the page keeps its
	// built-in defaults.
	UIConfig map[string]any

	// Source is a human-readable label naming the inputs that produced
	// UIConfig, e.g. "backend + jaeger-ui.config.json".
	Source string

	// StorageCapabilities is passed through from the backend unchanged.
	StorageCapabilities map[string]any

	// Version is passed through from the backend unchanged.
	Version map[string]any

	// FullOverride is set when a local full-override file replaces the UI
	// configuration entirely. When non-nil, UIConfig is ignored.
	FullOverride *FullOverrideDirective
}

// FullOverrideDirective carries the raw source of a full-override file that
// must be embedded into the document as a callable definition.
type FullOverrideDirective struct {
	Source string
}
