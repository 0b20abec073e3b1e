// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth validates bearer credentials for both relay tiers.
//
// The edge accepts a set of named keys (owner:token pairs) and reports which
// owner a request belongs to. The router accepts a single shared ingress key
// that only the edge knows. Both credential sets are loaded once at startup
// and are read-only afterwards, so they are safe for concurrent use.
package auth
