// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-webhook-relay/internal/config"
	"github.com/MKhiriev/go-webhook-relay/internal/handler"
	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/server"
	"github.com/MKhiriev/go-webhook-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("edge")
	cfg, err := config.GetEdgeConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("address", cfg.Server.Address).
		Str("metrics_address", cfg.Server.MetricsAddress).
		Int("edge_keys", len(cfg.EdgeKeys)).
		Str("router_url", cfg.RouterURL).
		Dur("request_timeout", cfg.RequestTimeout()).
		Int("max_body_size_mb", cfg.MaxBodySizeMB).
		Int("rate_limit_per_minute", cfg.RateLimitPerMinute).
		Msg("starting edge")

	handlers, err := handler.NewEdgeHandlers(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP, handlers.Metrics.Handler(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := handlers.Close(ctx); err != nil {
		log.Error().Err(err).Msg("error releasing resources")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
