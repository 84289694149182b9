// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReloadTypeFullReload instructs a connected browser to reload the page.
const ReloadTypeFullReload = "full-reload"

// ReloadMessage is the frame pushed to browsers over the live-reload socket.
type ReloadMessage struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// NewFullReloadMessage returns a message asking for a refresh of every page.
func NewFullReloadMessage() ReloadMessage {
	return ReloadMessage{Type: ReloadTypeFullReload, Path: "*"}
}
