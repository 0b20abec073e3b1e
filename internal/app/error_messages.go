// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by both
// relay tiers.
//
// Every Msg* constant ends up in the "error" field of a JSON response body.
// Keeping them in one place keeps the wording identical across the edge
// and the router.
package app

const (
	// MsgUnauthorized is returned when the Authorization header does not
	// carry a known bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgRateLimitExceeded is returned when an edge key owner used up the
	// current minute's allowance.
	MsgRateLimitExceeded = "Rate limit exceeded"

	// MsgBodyTooLarge is returned when the body exceeds MAX_BODY_SIZE_MB.
	MsgBodyTooLarge = "Request body too large"

	// MsgInvalidJSON is returned when the body is not JSON at all.
	MsgInvalidJSON = "Invalid JSON"

	// MsgMissingFields is returned when the body is not an object or lacks
	// "destination" or "payload".
	MsgMissingFields = `Request must contain "destination" and "payload" fields`

	// MsgUnknownDestination prefixes the destination name the router could
	// not resolve.
	MsgUnknownDestination = "Unknown destination: "

	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned for unexpected failures, including
	// recovered panics. The underlying error is only logged.
	MsgInternalServerError = "Internal server error"

	MsgEdgeGatewayTimeout = "Gateway timeout"
	MsgEdgeBadGateway     = "Bad gateway - router unreachable"

	MsgRouterGatewayTimeout = "Gateway timeout - internal service did not respond"
	MsgRouterBadGateway     = "Bad gateway - internal service unreachable"
)
