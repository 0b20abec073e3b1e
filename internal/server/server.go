// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	logger *logger.Logger
}

// NewServer builds the tier's server. handler is served on cfg.Address.
// When cfg.MetricsAddress is set, metrics is served on its own listener.
func NewServer(handler, metrics http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}

	if cfg.Address == "" {
		return nil, errNoAddress
	}

	s := &server{
		httpServer: newHTTPServer("HTTP", handler, cfg.Address, cfg.ShutdownTimeout.Std(), logger),
		logger:     logger,
	}

	if cfg.MetricsAddress != "" {
		if metrics == nil {
			return nil, errNoMetricsHandler
		}
		s.metricsServer = newHTTPServer("metrics", metrics, cfg.MetricsAddress, cfg.ShutdownTimeout.Std(), logger)
	}

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, srv := range s.servers() {
		srv.Shutdown()
	}
}

func (s *server) servers() []*httpServer {
	if s.metricsServer == nil {
		return []*httpServer{s.httpServer}
	}
	return []*httpServer{s.httpServer, s.metricsServer}
}

func (s *server) run(ctx context.Context) error {
	servers := s.servers()
	listeners := make([]net.Listener, 0, len(servers))

	for _, srv := range servers {
		ln, err := srv.listen()
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return err
		}
		listeners = append(listeners, ln)
	}

	return s.serve(ctx, listeners)
}

// serve runs every server on its listener until ctx is done, then shuts
// them down gracefully. A serve failure stops all of them and is returned.
func (s *server) serve(ctx context.Context, listeners []net.Listener) error {
	servers := s.servers()
	errCh := make(chan error, len(servers))

	for i, srv := range servers {
		srv := srv
		ln := listeners[i]
		s.logger.Info().Str("server", srv.name).Str("address", ln.Addr().String()).Msg("launching server")

		go func() {
			errCh <- srv.serve(ln)
		}()
	}

	pending := len(servers)
	var runErr error

	select {
	case runErr = <-errCh:
		pending--
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	}

	s.Shutdown()

	for ; pending > 0; pending-- {
		if err := <-errCh; err != nil && runErr == nil {
			runErr = err
		}
	}

	if runErr != nil {
		return runErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
