// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

// Literal markers of the index document. Each is replaced at most once.
const (
	// ConfigFunctionMarker is where a full-override file is embedded as the
	// UIConfig function.
	ConfigFunctionMarker = "// JAEGER_CONFIG_JS"

	ConfigAssignment              = "JAEGER_CONFIG = DEFAULT_CONFIG;"
	StorageCapabilitiesAssignment = "JAEGER_STORAGE_CAPABILITIES = DEFAULT_STORAGE_CAPABILITIES;"
	VersionAssignment             = "JAEGER_VERSION = DEFAULT_VERSION;"
)

// uiConfigFunctionDecl matches a source that opens with the UIConfig
// declaration. The same text further down, in a comment or a string, does not
// count.
var uiConfigFunctionDecl = regexp.MustCompile(`^\s*function\s+UIConfig\s*\(`)

type htmlInjector struct {
	logger *logger.Logger
}

// NewHTMLInjector returns an [HTMLInjector].
func NewHTMLInjector(logger *logger.Logger) HTMLInjector {
	return &htmlInjector{logger: logger}
}

// Inject implements [HTMLInjector]. It only rewrites markers for which
// resolved carries data; a marker missing from html is skipped.
//
// With a full override the config-function marker receives the override
// source and the plain config assignment keeps its default.
func (i *htmlInjector) Inject(html string, resolved models.ResolvedConfig) string {
	if resolved.StorageCapabilities != nil {
		html = i.replaceAssignment(html, StorageCapabilitiesAssignment, "JAEGER_STORAGE_CAPABILITIES", resolved.StorageCapabilities)
	}
	if resolved.Version != nil {
		html = i.replaceAssignment(html, VersionAssignment, "JAEGER_VERSION", resolved.Version)
	}

	if resolved.FullOverride != nil {
		return strings.Replace(html, ConfigFunctionMarker, uiConfigFunction(resolved.FullOverride.Source), 1)
	}

	if resolved.UIConfig != nil {
		html = i.replaceAssignment(html, ConfigAssignment, "JAEGER_CONFIG", resolved.UIConfig)
	}

	return html
}

func (i *htmlInjector) replaceAssignment(html, marker, variable string, value map[string]any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		i.logger.Warn().Err(err).Str("marker", marker).Msg("value cannot be encoded, keeping default")
		return html
	}

	return strings.Replace(html, marker, variable+" = "+string(encoded)+";", 1)
}

// uiConfigFunction embeds source verbatim. A source that starts by declaring
// UIConfig is used as is; anything else becomes the function body.
func uiConfigFunction(source string) string {
	if uiConfigFunctionDecl.MatchString(source) {
		return source
	}

	return "function UIConfig() {\n" + source + "\n}"
}
