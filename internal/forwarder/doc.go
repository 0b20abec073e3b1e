// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forwarder performs the outbound hop of the relay: it sends a body
// to a target, retries once when the connection cannot be established, and
// classifies transport failures so the HTTP layer can turn them into 502,
// 504 or 500 responses.
//
// Upstream responses are never interpreted. Whatever status and body the
// target returns is handed back unchanged.
package forwarder
