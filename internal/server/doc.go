// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs a relay tier's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown bounded by the configured timeout, during
// which in-flight requests are allowed to finish.
package server
