// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusHealthy is the only status reported by GET /health.
const StatusHealthy = "healthy"

// ErrorResponse is the uniform JSON body returned by both tiers whenever a
// request is rejected or forwarding fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Status is always "healthy" while the process serves requests.
	Status string `json:"status"`

	// Service names the tier: "edge" or "router".
	Service string `json:"service"`

	// Destinations is the number of configured routes. Only the router
	// reports it.
	Destinations *int `json:"destinations,omitempty"`
}
