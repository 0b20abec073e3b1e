// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the relay.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization and
// correlation identifier generation.
package utils

import (
	"context"
)

// CorrelationIDHeader is the header that carries the correlation identifier
// between the caller, the edge, the router and the destination service.
const CorrelationIDHeader = "X-Correlation-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// CorrelationIDCtxKey is the key used to store the correlation identifier
	// of the request being processed.
	CorrelationIDCtxKey = contextKey("correlationID")

	// CallerCtxKey is the key used to store the identity of the authenticated
	// caller: the edge key owner on the edge, the ingress caller on the router.
	CallerCtxKey = contextKey("caller")
)

// WithCorrelationID returns a copy of ctx carrying id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDCtxKey, id)
}

// GetCorrelationIDFromContext retrieves the correlation identifier from the context.
//
// Returns ok == false when the value is missing, empty or has an unexpected type.
func GetCorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CorrelationIDCtxKey).(string)
	return id, ok && id != ""
}

// WithCaller returns a copy of ctx carrying the authenticated caller identity.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the authenticated caller identity from the context.
//
// Example usage:
//
//	owner, ok := utils.GetCallerFromContext(ctx)
//	if !ok {
//	    // request did not pass through the auth middleware
//	}
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok
}
