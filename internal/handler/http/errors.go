// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrReadIndex wraps any failure to read the index document from disk.
	ErrReadIndex = errors.New("cannot read index document")

	ErrUpgradeReload = errors.New("cannot upgrade reload connection")
)
