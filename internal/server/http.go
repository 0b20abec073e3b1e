// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-webhook-relay/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	name            string
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(name string, handler http.Handler, address string, shutdownTimeout time.Duration, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
}

func (h *httpServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%s server Listen: %w", h.name, err)
	}
	return ln, nil
}

// serve blocks until the server is shut down or fails.
func (h *httpServer) serve(ln net.Listener) error {
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server Serve: %w", h.name, err)
	}
	return nil
}

// Shutdown waits for in-flight requests up to shutdownTimeout, then closes
// the remaining connections.
func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Str("server", h.name).Dur("shutdown_timeout", h.shutdownTimeout).Msg("server Shutdown, closing remaining connections")
		_ = h.server.Close()
	}
}
