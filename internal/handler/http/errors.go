// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Rejections produced by the middleware chain. Envelope errors come from
// the models package, forwarding errors from the forwarder package.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRateLimited     = errors.New("rate limit exceeded")
	ErrPayloadTooLarge = errors.New("request body too large")
)
