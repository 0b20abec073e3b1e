// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/metrics"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

// Handler holds what both tiers share: identity, logging, metrics,
// correlation id generation and the inbound body ceiling.
type Handler struct {
	service      string
	logger       *logger.Logger
	metrics      metrics.Exporter
	ids          *utils.UUIDGenerator
	maxBodyBytes int64
}

func newHandler(service string, maxBodyBytes int64, exporter metrics.Exporter, logger *logger.Logger) *Handler {
	if exporter == nil {
		exporter = metrics.Nop{}
	}

	return &Handler{
		service:      service,
		logger:       logger,
		metrics:      exporter,
		ids:          utils.NewUUIDGenerator(),
		maxBodyBytes: maxBodyBytes,
	}
}
