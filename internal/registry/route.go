// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	DefaultMethod  = http.MethodPost
	DefaultTimeout = 25 * time.Second
)

// allowedMethods are the methods that carry the relayed payload as a request
// body. HEAD and OPTIONS are excluded since the outbound client never sends
// a body for them.
var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// Methods returns the HTTP methods a route may use.
func Methods() []string {
	return slices.Clone(allowedMethods)
}

// Route describes how to reach one internal destination.
type Route struct {
	// Name is the key callers put in the envelope's "destination" field.
	Name string

	URL     string
	Method  string
	Timeout time.Duration

	// AuthEnv names the environment variable holding the bearer token for
	// the destination. Empty means the destination is called without
	// an Authorization header.
	AuthEnv string
}

// routeConfig is the YAML shape of a single destination.
type routeConfig struct {
	URL            string `yaml:"url"`
	Method         string `yaml:"method"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	AuthEnv        string `yaml:"auth_env"`
}

func (c routeConfig) toRoute(name string) Route {
	route := Route{
		Name:    name,
		URL:     strings.TrimSpace(c.URL),
		Method:  strings.ToUpper(strings.TrimSpace(c.Method)),
		Timeout: time.Duration(c.TimeoutSeconds) * time.Second,
		AuthEnv: strings.TrimSpace(c.AuthEnv),
	}
	return route.withDefaults()
}

func (r Route) withDefaults() Route {
	if r.Method == "" {
		r.Method = DefaultMethod
	}
	if r.Timeout == 0 {
		r.Timeout = DefaultTimeout
	}

	return r
}

// Validate checks the route's fields.
func (r Route) Validate() error {
	if r.Name == "" {
		return ErrEmptyRouteName
	}

	if r.URL == "" {
		return fmt.Errorf("route %s: %w", r.Name, ErrEmptyRouteURL)
	}

	u, err := url.Parse(r.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("route %s: %w: %q", r.Name, ErrInvalidRouteURL, r.URL)
	}

	if !slices.Contains(allowedMethods, r.Method) {
		return fmt.Errorf("route %s: %w: %q", r.Name, ErrInvalidRouteMethod, r.Method)
	}

	if r.Timeout < 0 {
		return fmt.Errorf("route %s: %w", r.Name, ErrNegativeTimeout)
	}

	return nil
}
