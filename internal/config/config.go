// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-webhook-relay/internal/auth"
)

const (
	defaultEdgeAddress     = ":8080"
	defaultRouterAddress   = ":8081"
	defaultMetricsAddress  = ":9090"
	defaultRouterURL       = "http://localhost:8081/ingest"
	defaultRequestTimeout  = 30
	defaultMaxBodySizeMB   = 1
	defaultRateLimit       = 100
	defaultRoutesFile      = "routes.yml"
	defaultShutdownTimeout = 30 * time.Second
)

// Server holds listener settings shared by both tiers.
type Server struct {
	// Address is the TCP address the HTTP server listens on, in
	// "[host]:port" format (e.g. ":8080").
	// Env: ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// stop signal (e.g. "30s").
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`

	// MetricsAddress is a separate listener serving only GET /metrics.
	// The edge defaults to ":9090" and never exposes metrics on Address.
	// The router is internal and also serves /metrics on Address.
	// Env: METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS" json:"metrics_address"`
}

// Redis holds the connection settings of the shared rate limit store.
// When Addr is empty the edge keeps its rate limit counters in memory.
type Redis struct {
	Addr     string `env:"ADDR" json:"addr"`
	Password string `env:"PASSWORD" json:"password"`
	DB       int    `env:"DB" json:"db"`
}

// EdgeConfig is the configuration of the public edge tier.
type EdgeConfig struct {
	Server Server `json:"server"`

	// EdgeKeys is the set of accepted caller credentials.
	// Env: EDGE_KEYS ("name:token,name2:token2")
	EdgeKeys auth.EdgeKeys `env:"EDGE_KEYS" json:"edge_keys"`

	// RouterURL is the router's ingest endpoint.
	// Env: ROUTER_URL
	RouterURL string `env:"ROUTER_URL" json:"router_url"`

	// RouterIngressKey is presented to the router as a bearer token.
	// Env: ROUTER_INGRESS_KEY
	RouterIngressKey auth.IngressKey `env:"ROUTER_INGRESS_KEY" json:"router_ingress_key"`

	// RequestTimeoutSeconds bounds each call to the router.
	// Env: REQUEST_TIMEOUT
	RequestTimeoutSeconds int `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// MaxBodySizeMB caps inbound request bodies.
	// Env: MAX_BODY_SIZE_MB
	MaxBodySizeMB int `env:"MAX_BODY_SIZE_MB" json:"max_body_size_mb"`

	// RateLimitPerMinute caps requests per edge key owner; 0 disables it.
	// Env: RATE_LIMIT_PER_MINUTE
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" json:"rate_limit_per_minute"`

	// Redis, when set, shares rate limit counters between edge instances.
	// Env: REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
	Redis Redis `envPrefix:"REDIS_" json:"redis"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// RequestTimeout returns the per-attempt timeout for calls to the router.
func (c *EdgeConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// MaxBodyBytes returns the inbound body ceiling in bytes.
func (c *EdgeConfig) MaxBodyBytes() int64 {
	return int64(c.MaxBodySizeMB) << 20
}

// RouterConfig is the configuration of the internal router tier.
type RouterConfig struct {
	Server Server `json:"server"`

	// IngressKey is the bearer token the edge must present.
	// Env: ROUTER_INGRESS_KEY
	IngressKey auth.IngressKey `env:"ROUTER_INGRESS_KEY" json:"ingress_key"`

	// RoutesFile is the path of the destinations YAML file.
	// Env: ROUTES_FILE
	RoutesFile string `env:"ROUTES_FILE" json:"routes_file"`

	// MaxBodySizeMB caps inbound request bodies.
	// Env: MAX_BODY_SIZE_MB
	MaxBodySizeMB int `env:"MAX_BODY_SIZE_MB" json:"max_body_size_mb"`

	JSONFilePath string `env:"CONFIG" json:"-"`
}

// MaxBodyBytes returns the inbound body ceiling in bytes.
func (c *RouterConfig) MaxBodyBytes() int64 {
	return int64(c.MaxBodySizeMB) << 20
}

func defaultEdgeConfig() *EdgeConfig {
	return &EdgeConfig{
		Server: Server{
			Address:         defaultEdgeAddress,
			ShutdownTimeout: Duration(defaultShutdownTimeout),
			MetricsAddress:  defaultMetricsAddress,
		},
		RouterURL:             defaultRouterURL,
		RequestTimeoutSeconds: defaultRequestTimeout,
		MaxBodySizeMB:         defaultMaxBodySizeMB,
		RateLimitPerMinute:    defaultRateLimit,
	}
}

func defaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		Server: Server{
			Address:         defaultRouterAddress,
			ShutdownTimeout: Duration(defaultShutdownTimeout),
		},
		RoutesFile:    defaultRoutesFile,
		MaxBodySizeMB: defaultMaxBodySizeMB,
	}
}

// GetEdgeConfig loads, merges, and validates the edge configuration from all
// available sources in the following priority order (later sources win):
//  1. Built-in defaults
//  2. JSON file (path from -c/-config or CONFIG)
//  3. Environment variables
//  4. Command-line flags (non-zero values only)
func GetEdgeConfig(args []string) (*EdgeConfig, error) {
	flags, err := parseEdgeFlags(args)
	if err != nil {
		return nil, err
	}

	return newConfigBuilder(defaultEdgeConfig()).
		withJSON(resolveJSONPath(flags.JSONFilePath)).
		withEnv().
		withFlags(flags).
		build()
}

// GetRouterConfig is the router counterpart of [GetEdgeConfig].
func GetRouterConfig(args []string) (*RouterConfig, error) {
	flags, err := parseRouterFlags(args)
	if err != nil {
		return nil, err
	}

	return newConfigBuilder(defaultRouterConfig()).
		withJSON(resolveJSONPath(flags.JSONFilePath)).
		withEnv().
		withFlags(flags).
		build()
}
