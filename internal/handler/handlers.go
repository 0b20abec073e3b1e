// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles a relay tier: it builds the metrics exporter,
// the outbound forwarder, the rate limiter and the HTTP handler from a
// loaded configuration.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/forwarder"
	myHTTP "github.com/MKhiriev/go-webhook-relay/internal/handler/http"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/metrics"
	"github.com/MKhiriev/go-webhook-relay/internal/ratelimit"
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

const rateLimitWindow = time.Minute

// Handlers is an assembled tier.
type Handlers struct {
	HTTP    http.Handler
	Metrics metrics.Exporter

	closers []func() error
}

// NewEdgeHandlers assembles the edge. Rate limit counters live in Redis when
// cfg.Redis.Addr is set and in process memory otherwise; a zero limit
// disables rate limiting.
func NewEdgeHandlers(cfg *config.EdgeConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating edge handlers...")

	exporter, err := metrics.NewOTelExporter(myHTTP.EdgeService)
	if err != nil {
		return nil, fmt.Errorf("creating metrics exporter: %w", err)
	}
	handlers := &Handlers{Metrics: exporter}

	var limiter ratelimit.Limiter
	switch {
	case cfg.RateLimitPerMinute == 0:
		logger.Info().Msg("rate limiting disabled")
	case cfg.Redis.Addr != "":
		client, err := ratelimit.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, errors.Join(err, exporter.Shutdown(context.Background()))
		}
		redisLimiter := ratelimit.NewRedisLimiter(client, cfg.RateLimitPerMinute, rateLimitWindow)
		handlers.closers = append(handlers.closers, redisLimiter.Close)
		limiter = redisLimiter
		logger.Info().Str("redis_addr", cfg.Redis.Addr).Int("per_minute", cfg.RateLimitPerMinute).Msg("rate limiting with Redis")
	default:
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitPerMinute, rateLimitWindow)
		logger.Info().Int("per_minute", cfg.RateLimitPerMinute).Msg("rate limiting in memory")
	}

	sender := forwarder.NewForwarder(utils.NewHTTPClient(logger), exporter)
	handlers.HTTP = myHTTP.NewEdgeHandler(cfg, sender, limiter, exporter, logger).Init()

	return handlers, nil
}

// NewRouterHandlers assembles the router around an already loaded registry.
func NewRouterHandlers(cfg *config.RouterConfig, routes *registry.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating router handlers...")

	if routes == nil {
		return nil, errNoRoutes
	}

	for _, route := range routes.List() {
		logger.Info().
			Str("destination", route.Name).
			Str("url", route.URL).
			Str("method", route.Method).
			Dur("timeout", route.Timeout).
			Bool("auth", route.AuthEnv != "").
			Msg("destination configured")
	}

	exporter, err := metrics.NewOTelExporter(myHTTP.RouterService)
	if err != nil {
		return nil, fmt.Errorf("creating metrics exporter: %w", err)
	}

	sender := forwarder.NewForwarder(utils.NewHTTPClient(logger), exporter)

	return &Handlers{
		HTTP:    myHTTP.NewRouterHandler(cfg, routes, sender, exporter, logger).Init(),
		Metrics: exporter,
	}, nil
}

// Close releases the tier's resources once the server has stopped.
func (h *Handlers) Close(ctx context.Context) error {
	errs := []error{h.Metrics.Shutdown(ctx)}
	for _, closeFn := range h.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
