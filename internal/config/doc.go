// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the edge and router binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetEdgeConfig] and [GetRouterConfig].
package config
