// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import "errors"

var (
	ErrUnknownDestination  = errors.New("unknown destination")
	ErrMissingDestinations = errors.New(`routes file has no "destinations" section`)
	ErrEmptyRouteName      = errors.New("route name cannot be empty")
	ErrEmptyRouteURL       = errors.New("url cannot be empty")
	ErrInvalidRouteURL     = errors.New("url must be an absolute http or https URL")
	ErrInvalidRouteMethod  = errors.New("method is not a valid HTTP method")
	ErrNegativeTimeout     = errors.New("timeout_seconds cannot be negative")
	ErrDuplicateRoute      = errors.New("route is defined more than once")
)
