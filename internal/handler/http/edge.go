// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/internal/app"
	"github.com/MKhiriev/go-webhook-relay/internal/auth"
	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/forwarder"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/metrics"
	"github.com/MKhiriev/go-webhook-relay/internal/ratelimit"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
	"github.com/MKhiriev/go-webhook-relay/models"
)

const EdgeService = "edge"

// edgeErrorMessages phrases forwarding failures for public callers.
var edgeErrorMessages = errorMessages{
	http.StatusGatewayTimeout: app.MsgEdgeGatewayTimeout,
	http.StatusBadGateway:     app.MsgEdgeBadGateway,
}

// EdgeHandler serves the public tier.
type EdgeHandler struct {
	*Handler

	keys    auth.EdgeKeys
	limiter ratelimit.Limiter
	sender  forwarder.Sender
	router  forwarder.Target
}

// NewEdgeHandler builds the edge handler. A nil limiter disables rate
// limiting.
func NewEdgeHandler(cfg *config.EdgeConfig, sender forwarder.Sender, limiter ratelimit.Limiter, exporter metrics.Exporter, logger *logger.Logger) *EdgeHandler {
	h := &EdgeHandler{
		Handler: newHandler(EdgeService, cfg.MaxBodyBytes(), exporter, logger),
		keys:    cfg.EdgeKeys,
		limiter: limiter,
		sender:  sender,
		router: forwarder.Target{
			Name:    "router",
			URL:     cfg.RouterURL,
			Method:  http.MethodPost,
			Timeout: cfg.RequestTimeout(),
			Token:   string(cfg.RouterIngressKey),
		},
	}

	logger.Info().
		Int("edge_keys", len(cfg.EdgeKeys)).
		Strs("owners", cfg.EdgeKeys.Owners()).
		Str("router_url", cfg.RouterURL).
		Dur("request_timeout", cfg.RequestTimeout()).
		Bool("rate_limit", limiter != nil).
		Msg("edge http handler created")

	return h
}

// webhook validates the envelope and relays the whole body to the router.
// The router's answer is passed through unchanged.
func (h *EdgeHandler) webhook(w http.ResponseWriter, r *http.Request) {
	owner, _ := utils.GetCallerFromContext(r.Context())
	log := logger.FromRequest(r).WithField("edge_key", owner)

	body, envelope, err := h.readEnvelope(r)
	if err != nil {
		h.reject(w, r, err)
		return
	}

	log = log.WithField("destination", envelope.Destination)
	log.Info().Str("remote_addr", r.RemoteAddr).Msg("received webhook")

	ctx := log.WithContext(context.WithoutCancel(r.Context()))
	resp, err := h.sender.Send(ctx, h.router, body)
	if err != nil {
		writeForwardError(w, err, edgeErrorMessages)
		return
	}

	writeUpstream(w, resp)
}

func (h *EdgeHandler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: models.StatusHealthy, Service: h.service}, http.StatusOK)
}
