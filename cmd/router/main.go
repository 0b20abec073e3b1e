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
	"github.com/MKhiriev/go-webhook-relay/internal/registry"
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

	log := logger.NewLogger("router")
	cfg, err := config.GetRouterConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	routes, err := registry.Load(cfg.RoutesFile)
	if err != nil {
		log.Fatal().Err(err).Str("routes_file", cfg.RoutesFile).Msg("error loading routes")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("address", cfg.Server.Address).
		Str("routes_file", cfg.RoutesFile).
		Int("destinations", routes.Len()).
		Int("max_body_size_mb", cfg.MaxBodySizeMB).
		Msg("starting router")

	handlers, err := handler.NewRouterHandlers(cfg, routes, log)
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
