// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of both relay tiers.
//
// EdgeHandler serves the public POST /webhook endpoint: it authenticates the
// caller by edge key, applies the per-key rate limit, validates the envelope
// and forwards the raw body to the router. RouterHandler serves the internal
// POST /ingest endpoint: it authenticates the edge by ingress key, resolves
// the destination and forwards the raw payload to the destination service.
//
// Cross-cutting concerns (correlation identifiers, access logging, panic
// recovery, body size limits) are handled by middleware in this package.
package http
