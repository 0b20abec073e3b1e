// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics records forwarding outcomes and request rejections and
// exposes them in Prometheus format through OpenTelemetry.
package metrics

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/models"
)

// Rejection reasons reported by the HTTP layer.
const (
	ReasonUnauthorized       = "unauthorized"
	ReasonRateLimited        = "rate_limited"
	ReasonBodyTooLarge       = "body_too_large"
	ReasonInvalidJSON        = "invalid_json"
	ReasonMissingFields      = "missing_fields"
	ReasonUnknownDestination = "unknown_destination"
)

// Recorder receives forwarding and rejection events.
type Recorder interface {
	RecordAttempt(ctx context.Context, attempt models.OutboundAttempt)
	RecordRejection(ctx context.Context, reason string)
}

// Exporter is a Recorder that can also serve what it recorded.
type Exporter interface {
	Recorder
	Handler() http.Handler
	Shutdown(ctx context.Context) error
}

// Nop discards everything. Its Handler answers 404.
type Nop struct{}

func (Nop) RecordAttempt(context.Context, models.OutboundAttempt) {}

func (Nop) RecordRejection(context.Context, string) {}

func (Nop) Handler() http.Handler { return http.NotFoundHandler() }

func (Nop) Shutdown(context.Context) error { return nil }
