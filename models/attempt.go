// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FailureKind classifies how an outbound attempt failed.
type FailureKind int

const (
	// FailureNone means the upstream produced an HTTP response, whatever its status.
	FailureNone FailureKind = iota
	// FailureTimeout means no response arrived within the per-attempt deadline.
	FailureTimeout
	// FailureConnection means the connection could not be established or was reset.
	FailureConnection
	// FailureUnavailable means a connection failure persisted after the retry.
	FailureUnavailable
	// FailureUnexpected covers every other transport error.
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection_error"
	case FailureUnavailable:
		return "unavailable"
	case FailureUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// OutboundAttempt describes a single outbound HTTP call. It feeds logs and
// metrics and is never persisted.
type OutboundAttempt struct {
	Target     string
	Method     string
	URL        string
	Attempt    int
	Elapsed    time.Duration
	StatusCode int
	Failure    FailureKind
}

// Outcome is a low-cardinality label for the attempt: the failure kind, or
// the status class ("2xx", "4xx", ...) of the response.
func (a OutboundAttempt) Outcome() string {
	if a.Failure != FailureNone {
		return a.Failure.String()
	}

	switch {
	case a.StatusCode >= 500:
		return "5xx"
	case a.StatusCode >= 400:
		return "4xx"
	case a.StatusCode >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
