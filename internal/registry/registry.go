// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is the immutable set of destinations the router can dispatch to.
// It is safe for concurrent reads.
type Registry struct {
	routes map[string]Route
}

// routesFile is the YAML shape of the routes file:
//
//	destinations:
//	  billing:
//	    url: http://billing.internal:8000/webhooks
//	    method: POST
//	    timeout_seconds: 10
//	    auth_env: BILLING_TOKEN
type routesFile struct {
	Destinations map[string]routeConfig `yaml:"destinations"`
}

// Load reads and validates the routes file at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routes file: %w", err)
	}

	return Parse(data)
}

// Parse validates routes from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var file routesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing routes YAML: %w", err)
	}

	if file.Destinations == nil {
		return nil, ErrMissingDestinations
	}

	routes := make([]Route, 0, len(file.Destinations))
	for name, cfg := range file.Destinations {
		routes = append(routes, cfg.toRoute(strings.TrimSpace(name)))
	}

	return New(routes...)
}

// New builds a registry from already constructed routes, applying the same
// defaults and validation as the routes file.
func New(routes ...Route) (*Registry, error) {
	r := &Registry{routes: make(map[string]Route, len(routes))}

	var errs []error
	for _, route := range routes {
		route = route.withDefaults()
		if err := route.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := r.routes[route.Name]; exists {
			errs = append(errs, fmt.Errorf("route %s: %w", route.Name, ErrDuplicateRoute))
			continue
		}
		r.routes[route.Name] = route
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid routes: %w", errors.Join(errs...))
	}

	return r, nil
}

// Resolve returns the route registered under name. Matching is exact and
// case-sensitive.
func (r *Registry) Resolve(name string) (Route, error) {
	route, ok := r.routes[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownDestination, name)
	}

	return route, nil
}

// List returns all routes sorted by name.
func (r *Registry) List() []Route {
	routes := make([]Route, 0, len(r.routes))
	for _, route := range r.routes {
		routes = append(routes, route)
	}
	slices.SortFunc(routes, func(a, b Route) int {
		return strings.Compare(a.Name, b.Name)
	})

	return routes
}

// Len returns the number of routes.
func (r *Registry) Len() int {
	return len(r.routes)
}
