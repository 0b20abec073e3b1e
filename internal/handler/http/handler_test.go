// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhook-relay/internal/auth"
	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
	"github.com/MKhiriev/go-webhook-relay/models"
)

const (
	testEdgeToken  = "edge-secret"
	testOwner      = "acme"
	testIngressKey = "ingress-secret"
	testRouterURL  = "http://router.internal/ingest"
	validEnvelope  = `{"destination":"billing","payload":{"amount":42}}`
)

func newTestHandler() *Handler {
	return newHandler("test", 1<<20, nil, logger.Nop())
}

// newBufferLogger returns a logger writing JSON lines into buf.
func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func newTestEdgeConfig() *config.EdgeConfig {
	return &config.EdgeConfig{
		EdgeKeys:              auth.EdgeKeys{testEdgeToken: testOwner},
		RouterURL:             testRouterURL,
		RouterIngressKey:      testIngressKey,
		RequestTimeoutSeconds: 5,
		MaxBodySizeMB:         1,
	}
}

func newTestRouterConfig() *config.RouterConfig {
	return &config.RouterConfig{
		IngressKey:    testIngressKey,
		MaxBodySizeMB: 1,
	}
}

func newTestRegistry(t *testing.T, routes ...registry.Route) *registry.Registry {
	t.Helper()
	reg, err := registry.New(routes...)
	require.NoError(t, err)
	return reg
}

// post sends body to path with an optional bearer token.
func post(h http.Handler, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func correlationIDFrom(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	id := rr.Header().Get(utils.CorrelationIDHeader)
	require.NotEmpty(t, id)
	return id
}
