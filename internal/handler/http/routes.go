// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-webhook-relay/internal/app"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

// newRouter builds the router shared by both tiers: the common middleware
// chain, GET /health and JSON 404/405 answers.
func (h *Handler) newRouter(health http.HandlerFunc) *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		middleware.RealIP,
		h.withCorrelationID,
		h.withLogging,
		h.withRecover,
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, app.MsgNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	})

	router.Get("/health", health)

	return router
}

// Init returns the edge's public routes:
//
//	GET  /health
//	POST /webhook  (edge key, rate limit, body ceiling)
//
// Metrics are served on the separate metrics listener only.
func (h *EdgeHandler) Init() *chi.Mux {
	router := h.newRouter(h.health)

	router.With(
		h.auth(h.keys.Validate),
		h.rateLimit,
		h.limitBody,
	).Post("/webhook", h.webhook)

	return router
}

// Init returns the router's routes:
//
//	GET  /health
//	GET  /metrics
//	POST /ingest  (ingress key, body ceiling)
func (h *RouterHandler) Init() *chi.Mux {
	router := h.newRouter(h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.With(
		h.auth(h.ingress.Authenticate),
		h.limitBody,
	).Post("/ingest", h.ingest)

	return router
}
