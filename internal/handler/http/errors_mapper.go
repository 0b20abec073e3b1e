// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/internal/app"
	"github.com/MKhiriev/go-webhook-relay/internal/forwarder"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/metrics"
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
	"github.com/MKhiriev/go-webhook-relay/models"
)

var errorStatusMap = map[error]int{
	ErrUnauthorized:                  http.StatusUnauthorized,
	ErrRateLimited:                   http.StatusTooManyRequests,
	ErrPayloadTooLarge:               http.StatusRequestEntityTooLarge,
	models.ErrInvalidJSON:            http.StatusBadRequest,
	models.ErrMissingEnvelopeFields:  http.StatusBadRequest,
	models.ErrInvalidDestination:     http.StatusBadRequest,
	registry.ErrUnknownDestination:   http.StatusNotFound,
	forwarder.ErrUpstreamTimeout:     http.StatusGatewayTimeout,
	forwarder.ErrUpstreamUnavailable: http.StatusBadGateway,
	forwarder.ErrUnexpected:          http.StatusInternalServerError,
}

// rejectionMessages is the client-facing text of each rejection. Internal
// error text never leaves the process.
var rejectionMessages = map[error]string{
	ErrUnauthorized:                 app.MsgUnauthorized,
	ErrRateLimited:                  app.MsgRateLimitExceeded,
	ErrPayloadTooLarge:              app.MsgBodyTooLarge,
	models.ErrInvalidJSON:           app.MsgInvalidJSON,
	models.ErrMissingEnvelopeFields: app.MsgMissingFields,
	models.ErrInvalidDestination:    app.MsgMissingFields,
}

var rejectionReasons = map[error]string{
	ErrUnauthorized:                 metrics.ReasonUnauthorized,
	ErrRateLimited:                  metrics.ReasonRateLimited,
	ErrPayloadTooLarge:              metrics.ReasonBodyTooLarge,
	models.ErrInvalidJSON:           metrics.ReasonInvalidJSON,
	models.ErrMissingEnvelopeFields: metrics.ReasonMissingFields,
	models.ErrInvalidDestination:    metrics.ReasonMissingFields,
}

// errorMessages holds the per-tier text for forwarding failures, by status.
type errorMessages map[int]string

func (m errorMessages) message(status int) string {
	if msg, ok := m[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}

func statusFromError(err error) int {
	for e, status := range errorStatusMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func lookup(table map[error]string, err error, fallback string) string {
	for e, v := range table {
		if errors.Is(err, e) {
			return v
		}
	}
	return fallback
}

// reject answers a request that failed before forwarding, logs the reason
// and counts it.
func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	reason := lookup(rejectionReasons, err, "unknown")

	logger.FromRequest(r).Warn().
		Err(err).
		Int("status", status).
		Str("reason", reason).
		Str("remote_addr", r.RemoteAddr).
		Msg("request rejected")

	h.metrics.RecordRejection(r.Context(), reason)
	utils.WriteError(w, status, lookup(rejectionMessages, err, app.MsgInternalServerError))
}

// writeForwardError answers a request whose forwarding failed. The
// forwarder has already logged the cause.
func writeForwardError(w http.ResponseWriter, err error, messages errorMessages) {
	status := statusFromError(err)
	switch status {
	case http.StatusGatewayTimeout, http.StatusBadGateway:
	default:
		status = http.StatusInternalServerError
	}
	utils.WriteError(w, status, messages.message(status))
}
