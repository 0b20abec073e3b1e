// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhook-relay/internal/auth"
)

func TestEdgeConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *EdgeConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*EdgeConfig) {}},
		{name: "rate limit disabled", mutate: func(cfg *EdgeConfig) { cfg.RateLimitPerMinute = 0 }},
		{name: "empty address", mutate: func(cfg *EdgeConfig) { cfg.Server.Address = "" }, wantErr: ErrEmptyAddress},
		{name: "negative shutdown timeout", mutate: func(cfg *EdgeConfig) { cfg.Server.ShutdownTimeout = -1 }, wantErr: ErrInvalidShutdownTTL},
		{name: "metrics on the public address", mutate: func(cfg *EdgeConfig) { cfg.Server.MetricsAddress = cfg.Server.Address }, wantErr: ErrMetricsAddressInUse},
		{name: "no edge keys", mutate: func(cfg *EdgeConfig) { cfg.EdgeKeys = nil }, wantErr: ErrNoEdgeKeys},
		{name: "edge key with empty owner", mutate: func(cfg *EdgeConfig) { cfg.EdgeKeys = auth.EdgeKeys{"sk_1": ""} }, wantErr: auth.ErrMalformedEdgeKey},
		{name: "edge key with empty token", mutate: func(cfg *EdgeConfig) { cfg.EdgeKeys = auth.EdgeKeys{"": "stripe"} }, wantErr: auth.ErrMalformedEdgeKey},
		{name: "no ingress key", mutate: func(cfg *EdgeConfig) { cfg.RouterIngressKey = "" }, wantErr: ErrEmptyIngressKey},
		{name: "relative router url", mutate: func(cfg *EdgeConfig) { cfg.RouterURL = "/ingest" }, wantErr: ErrInvalidRouterURL},
		{name: "non-http router url", mutate: func(cfg *EdgeConfig) { cfg.RouterURL = "ftp://router/ingest" }, wantErr: ErrInvalidRouterURL},
		{name: "zero timeout", mutate: func(cfg *EdgeConfig) { cfg.RequestTimeoutSeconds = 0 }, wantErr: ErrInvalidTimeout},
		{name: "zero body size", mutate: func(cfg *EdgeConfig) { cfg.MaxBodySizeMB = 0 }, wantErr: ErrInvalidBodySize},
		{name: "negative rate limit", mutate: func(cfg *EdgeConfig) { cfg.RateLimitPerMinute = -1 }, wantErr: ErrInvalidRateLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validEdgeConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRouterConfig_Validate(t *testing.T) {
	valid := func() *RouterConfig {
		cfg := defaultRouterConfig()
		cfg.IngressKey = "ingress"
		return cfg
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.IngressKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrEmptyIngressKey)

	cfg = valid()
	cfg.RoutesFile = ""
	assert.ErrorIs(t, cfg.validate(), ErrEmptyRoutesFile)

	cfg = valid()
	cfg.MaxBodySizeMB = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidBodySize)
}
