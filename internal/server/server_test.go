// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
)

func testConfig() config.Server {
	return config.Server{
		Address:         "127.0.0.1:0",
		ShutdownTimeout: config.Duration(2 * time.Second),
	}
}

func metricsConfig() config.Server {
	cfg := testConfig()
	cfg.MetricsAddress = "127.0.0.1:0"
	return cfg
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		handler http.Handler
		metrics http.Handler
		cfg     config.Server
		wantErr error
	}{
		{name: "ok", handler: http.NotFoundHandler(), cfg: testConfig()},
		{name: "with metrics listener", handler: http.NotFoundHandler(), metrics: http.NotFoundHandler(), cfg: metricsConfig()},
		{name: "no handler", cfg: testConfig(), wantErr: errNoHandler},
		{name: "no address", handler: http.NotFoundHandler(), cfg: config.Server{}, wantErr: errNoAddress},
		{name: "metrics address without handler", handler: http.NotFoundHandler(), cfg: metricsConfig(), wantErr: errNoMetricsHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handler, tt.metrics, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestServer_GracefulShutdownWaitsForInFlight(t *testing.T) {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("done"))
	})

	srv, err := NewServer(handler, nil, testConfig(), logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ln, err := s.httpServer.listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.serve(ctx, []net.Listener{ln}) }()

	respCh := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			respCh <- "error: " + err.Error()
			return
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		respCh <- string(body)
	}()

	<-started
	cancel()

	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, "done", <-respCh)

	_, err = net.DialTimeout("tcp", ln.Addr().String(), 200*time.Millisecond)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig()
	cfg.Address = busy.Addr().String()

	srv, err := NewServer(http.NotFoundHandler(), nil, cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.ErrorContains(t, err, "HTTP server Listen")
}

func TestServer_MetricsListenerIsSeparate(t *testing.T) {
	public := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("public"))
	})
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})

	srv, err := NewServer(public, metrics, metricsConfig(), logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	publicLn, err := s.httpServer.listen()
	require.NoError(t, err)
	metricsLn, err := s.metricsServer.listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.serve(ctx, []net.Listener{publicLn, metricsLn}) }()

	get := func(ln net.Listener) string {
		resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	assert.Equal(t, "public", get(publicLn))
	assert.Equal(t, "metrics", get(metricsLn))

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = net.DialTimeout("tcp", metricsLn.Addr().String(), 200*time.Millisecond)
	assert.Error(t, err, "metrics listener must be closed after shutdown")
}

func TestServer_RunFailsOnBusyMetricsAddress(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	publicAddr := free.Addr().String()
	require.NoError(t, free.Close())

	cfg := testConfig()
	cfg.Address = publicAddr
	cfg.MetricsAddress = busy.Addr().String()

	srv, err := NewServer(http.NotFoundHandler(), http.NotFoundHandler(), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.ErrorContains(t, err, "metrics server Listen")

	ln, err := net.Listen("tcp", publicAddr)
	require.NoError(t, err, "public listener must be released")
	_ = ln.Close()
}
