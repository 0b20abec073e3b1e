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
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
	"github.com/MKhiriev/go-webhook-relay/models"
)

const RouterService = "router"

// routerErrorMessages phrases forwarding failures for the edge.
var routerErrorMessages = errorMessages{
	http.StatusGatewayTimeout: app.MsgRouterGatewayTimeout,
	http.StatusBadGateway:     app.MsgRouterBadGateway,
}

// Resolver looks up destinations by name.
type Resolver interface {
	Resolve(name string) (registry.Route, error)
	Len() int
}

// RouterHandler serves the internal tier.
type RouterHandler struct {
	*Handler

	ingress auth.IngressKey
	routes  Resolver
	sender  forwarder.Sender
}

func NewRouterHandler(cfg *config.RouterConfig, routes Resolver, sender forwarder.Sender, exporter metrics.Exporter, logger *logger.Logger) *RouterHandler {
	h := &RouterHandler{
		Handler: newHandler(RouterService, cfg.MaxBodyBytes(), exporter, logger),
		ingress: cfg.IngressKey,
		routes:  routes,
		sender:  sender,
	}

	logger.Info().Int("destinations", routes.Len()).Msg("router http handler created")

	return h
}

// ingest resolves the envelope's destination and relays only its payload.
// The destination's answer is passed through unchanged.
func (h *RouterHandler) ingest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	_, envelope, err := h.readEnvelope(r)
	if err != nil {
		h.reject(w, r, err)
		return
	}

	log = log.WithField("destination", envelope.Destination)

	route, err := h.routes.Resolve(envelope.Destination)
	if err != nil {
		log.Warn().Err(err).Str("reason", metrics.ReasonUnknownDestination).Msg("request rejected")
		h.metrics.RecordRejection(r.Context(), metrics.ReasonUnknownDestination)
		utils.WriteError(w, statusFromError(err), app.MsgUnknownDestination+envelope.Destination)
		return
	}

	log.Info().
		Str("remote_addr", r.RemoteAddr).
		Str("url", route.URL).
		Str("method", route.Method).
		Msg("routing webhook")

	ctx := log.WithContext(context.WithoutCancel(r.Context()))
	resp, err := h.sender.Send(ctx, targetFromRoute(route), envelope.Payload)
	if err != nil {
		writeForwardError(w, err, routerErrorMessages)
		return
	}

	writeUpstream(w, resp)
}

func (h *RouterHandler) health(w http.ResponseWriter, _ *http.Request) {
	destinations := h.routes.Len()
	_, _ = utils.WriteJSON(w, models.HealthResponse{
		Status:       models.StatusHealthy,
		Service:      h.service,
		Destinations: &destinations,
	}, http.StatusOK)
}

func targetFromRoute(route registry.Route) forwarder.Target {
	return forwarder.Target{
		Name:    route.Name,
		URL:     route.URL,
		Method:  route.Method,
		Timeout: route.Timeout,
		AuthEnv: route.AuthEnv,
	}
}
