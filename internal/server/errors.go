// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler = errors.New("no HTTP handler is provided")
	errNoAddress = errors.New("no listen address is provided")

	errNoMetricsHandler = errors.New("metrics address is set but no metrics handler is provided")
)
