// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid. Any of them aborts startup.
var (
	ErrEmptyAddress       = errors.New("server address is required")
	ErrNoEdgeKeys         = errors.New("EDGE_KEYS must define at least one name:token pair")
	ErrEmptyIngressKey    = errors.New("ROUTER_INGRESS_KEY is required")
	ErrInvalidRouterURL   = errors.New("ROUTER_URL must be an absolute http or https URL")
	ErrInvalidTimeout     = errors.New("REQUEST_TIMEOUT must be a positive number of seconds")
	ErrInvalidBodySize    = errors.New("MAX_BODY_SIZE_MB must be positive")
	ErrInvalidRateLimit   = errors.New("RATE_LIMIT_PER_MINUTE cannot be negative")
	ErrEmptyRoutesFile    = errors.New("ROUTES_FILE is required")
	ErrInvalidShutdownTTL = errors.New("SHUTDOWN_TIMEOUT cannot be negative")

	ErrMetricsAddressInUse = errors.New("METRICS_ADDRESS must differ from the server address")
)
