// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"io/fs"
	"os"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/utils"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

type overrideLoader struct {
	fullOverridePath string
	patchPath        string

	logger *logger.Logger
}

// NewOverrideLoader returns an [OverrideLoader] reading the files named in
// cfg. Files are read on every Load call.
func NewOverrideLoader(cfg config.Overrides, logger *logger.Logger) OverrideLoader {
	return &overrideLoader{
		fullOverridePath: cfg.FullOverridePath,
		patchPath:        cfg.PatchPath,
		logger:           logger,
	}
}

// Load implements [OverrideLoader]. Missing files are silently absent;
// unreadable or malformed files are logged and treated as absent.
func (l *overrideLoader) Load() models.OverrideSet {
	return models.OverrideSet{
		FullOverrideSource: l.loadFullOverride(),
		JSONPatch:          l.loadPatch(),
	}
}

func (l *overrideLoader) loadFullOverride() *string {
	data, ok := l.readOptional(l.fullOverridePath)
	if !ok {
		return nil
	}

	source := string(data)
	return &source
}

func (l *overrideLoader) loadPatch() map[string]any {
	data, ok := l.readOptional(l.patchPath)
	if !ok {
		return nil
	}

	patch, err := utils.DecodeJSONObject(data)
	if err != nil {
		if errors.Is(err, utils.ErrNotJSONObject) {
			err = ErrPatchNotObject
		}
		l.logger.Warn().Err(err).Str("path", l.patchPath).Msg("ignoring malformed JSON patch file")
		return nil
	}

	return patch
}

// readOptional returns the file contents and true, or false when the file
// does not exist or cannot be read.
func (l *overrideLoader) readOptional(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn().Err(err).Str("path", path).Msg("ignoring unreadable override file")
		}
		return nil, false
	}

	return data, true
}
