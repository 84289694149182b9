// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackendConfig is the configuration reported by a running query backend.
//
// Each field is a decoded JSON object. A nil map stands for JSON null and
// means the corresponding backend call failed or the backend was not
// reachable at all. Values are replaced wholesale on refetch and must not be
// mutated by consumers.
type BackendConfig struct {
	// UIConfig is the UI configuration object served by the backend.
	UIConfig map[string]any `json:"uiConfig"`

	// StorageCapabilities describes which optional storage features
	// (e.g. archive storage) the backend supports.
	StorageCapabilities map[string]any `json:"storageCapabilities"`

	// Version holds backend build information (git commit, version, date).
	Version map[string]any `json:"version"`
}

// IsEmpty reports whether every field of the config is nil, i.e. the
// backend could not be reached.
func (c BackendConfig) IsEmpty() bool {
	return c.UIConfig == nil && c.StorageCapabilities == nil && c.Version == nil
}
