// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
)

// validate checks that the final merged [EdgeConfig] is usable at startup.
// Every violation is reported, not only the first one.
func (cfg *EdgeConfig) validate() error {
	var errs []error

	errs = append(errs, cfg.Server.validate())

	if len(cfg.EdgeKeys) == 0 {
		errs = append(errs, ErrNoEdgeKeys)
	}
	errs = append(errs, cfg.EdgeKeys.Check())

	if cfg.RouterIngressKey == "" {
		errs = append(errs, ErrEmptyIngressKey)
	}

	if !isHTTPURL(cfg.RouterURL) {
		errs = append(errs, ErrInvalidRouterURL)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	if cfg.MaxBodySizeMB <= 0 {
		errs = append(errs, ErrInvalidBodySize)
	}

	if cfg.RateLimitPerMinute < 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	return errors.Join(errs...)
}

// validate checks that the final merged [RouterConfig] is usable at startup.
func (cfg *RouterConfig) validate() error {
	var errs []error

	errs = append(errs, cfg.Server.validate())

	if cfg.IngressKey == "" {
		errs = append(errs, ErrEmptyIngressKey)
	}

	if cfg.RoutesFile == "" {
		errs = append(errs, ErrEmptyRoutesFile)
	}

	if cfg.MaxBodySizeMB <= 0 {
		errs = append(errs, ErrInvalidBodySize)
	}

	return errors.Join(errs...)
}

func (s Server) validate() error {
	if s.Address == "" {
		return ErrEmptyAddress
	}

	if s.ShutdownTimeout < 0 {
		return ErrInvalidShutdownTTL
	}

	if s.MetricsAddress != "" && s.MetricsAddress == s.Address {
		return ErrMetricsAddressInUse
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
