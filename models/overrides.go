// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OverrideSet holds the local developer override files as read from disk
// for a single render. It is never cached.
type OverrideSet struct {
	// FullOverrideSource is the raw, unparsed text of the full-override
	// file. Nil when the file is absent or could not be read.
	FullOverrideSource *string

	// JSONPatch is the decoded patch object merged over the backend UI
	// config. Nil when the file is absent or malformed.
	JSONPatch map[string]any
}

// HasFullOverride reports whether a full-override source was loaded.
func (o OverrideSet) HasFullOverride() bool {
	return o.FullOverrideSource != nil
}

// HasPatch reports whether a JSON patch was loaded.
func (o OverrideSet) HasPatch() bool {
	return o.JSONPatch != nil
}
