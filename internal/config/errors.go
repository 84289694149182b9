package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or index file.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBackendConfigs indicates an unusable backend address or a
	// non-positive request timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidCacheConfigs indicates a negative cache ttl.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidOverridesConfigs indicates an empty override file path.
	ErrInvalidOverridesConfigs = errors.New("invalid overrides configuration")
)
