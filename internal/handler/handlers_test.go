// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhook-relay/internal/auth"
	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
)

// newTestLogger returns a no-op logger suitable for use in tests.
func newTestLogger() *logger.Logger {
	return logger.Nop()
}

func newEdgeConfig(rateLimit int) *config.EdgeConfig {
	return &config.EdgeConfig{
		EdgeKeys:              auth.EdgeKeys{"tok": "acme"},
		RouterURL:             "http://127.0.0.1:1/ingest",
		RouterIngressKey:      "ingress",
		RequestTimeoutSeconds: 1,
		MaxBodySizeMB:         1,
		RateLimitPerMinute:    rateLimit,
	}
}

func TestNewEdgeHandlers_InMemoryRateLimit(t *testing.T) {
	h, err := NewEdgeHandlers(newEdgeConfig(1), newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"destination":"x"}`))
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		h.HTTP.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusBadRequest, send(), "first request passes the limiter")
	assert.Equal(t, http.StatusTooManyRequests, send(), "second request in the same minute is limited")
}

func TestNewEdgeHandlers_RateLimitDisabled(t *testing.T) {
	h, err := NewEdgeHandlers(newEdgeConfig(0), newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		h.HTTP.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
}

func TestNewEdgeHandlers_MetricsOffPublicHandler(t *testing.T) {
	h, err := NewEdgeHandlers(newEdgeConfig(0), newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })

	rr := httptest.NewRecorder()
	h.HTTP.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.Metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewEdgeHandlers_UnreachableRedis(t *testing.T) {
	cfg := newEdgeConfig(10)
	cfg.Redis.Addr = "127.0.0.1:1"

	h, err := NewEdgeHandlers(cfg, newTestLogger())

	assert.Error(t, err)
	assert.Nil(t, h)
}

func TestNewRouterHandlers(t *testing.T) {
	routes, err := registry.New(registry.Route{Name: "billing", URL: "http://billing.internal/hooks"})
	require.NoError(t, err)

	h, err := NewRouterHandlers(&config.RouterConfig{IngressKey: "ingress", MaxBodySizeMB: 1}, routes, newTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(context.Background()) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.HTTP.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"router","destinations":1}`, rr.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr = httptest.NewRecorder()
	h.HTTP.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewRouterHandlers_NoRoutes(t *testing.T) {
	h, err := NewRouterHandlers(&config.RouterConfig{}, nil, newTestLogger())

	assert.ErrorIs(t, err, errNoRoutes)
	assert.Nil(t, h)
}
