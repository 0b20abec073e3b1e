// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseEdgeFlags parses the edge command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-router-url router ingest URL
//	-timeout router request timeout in seconds
//	-max-body-mb inbound body limit in megabytes
//	-rate-limit requests per minute per edge key
//	-c/-config json file path with configs
func parseEdgeFlags(args []string) (*EdgeConfig, error) {
	fs := flag.NewFlagSet("edge", flag.ContinueOnError)

	var (
		address        NetAddress
		routerURL      string
		requestTimeout int
		maxBodySizeMB  int
		rateLimit      int
		jsonConfigPath string
	)

	fs.Var(&address, "a", "Net address [host]:port")
	fs.StringVar(&routerURL, "router-url", "", "Router ingest URL")
	fs.IntVar(&requestTimeout, "timeout", 0, "Router request timeout in seconds")
	fs.IntVar(&maxBodySizeMB, "max-body-mb", 0, "Maximum request body size in MB")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per edge key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &EdgeConfig{
		Server: Server{
			Address: address.String(),
		},
		RouterURL:             routerURL,
		RequestTimeoutSeconds: requestTimeout,
		MaxBodySizeMB:         maxBodySizeMB,
		RateLimitPerMinute:    rateLimit,
		JSONFilePath:          jsonConfigPath,
	}, nil
}

// parseRouterFlags parses the router command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-routes destinations YAML file
//	-max-body-mb inbound body limit in megabytes
//	-c/-config json file path with configs
func parseRouterFlags(args []string) (*RouterConfig, error) {
	fs := flag.NewFlagSet("router", flag.ContinueOnError)

	var (
		address        NetAddress
		routesFile     string
		maxBodySizeMB  int
		jsonConfigPath string
	)

	fs.Var(&address, "a", "Net address [host]:port")
	fs.StringVar(&routesFile, "routes", "", "Destinations YAML file")
	fs.IntVar(&maxBodySizeMB, "max-body-mb", 0, "Maximum request body size in MB")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &RouterConfig{
		Server: Server{
			Address: address.String(),
		},
		RoutesFile:    routesFile,
		MaxBodySizeMB: maxBodySizeMB,
		JSONFilePath:  jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be an IP
// address or "localhost".
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
