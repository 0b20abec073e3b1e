// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit caps how many webhooks each edge key owner may submit
// per window. Two fixed-window implementations are provided: an in-process
// one for single instance deployments and a Redis-backed one shared by every
// edge instance.
package ratelimit
