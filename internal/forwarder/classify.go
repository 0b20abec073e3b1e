// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"github.com/MKhiriev/go-webhook-relay/models"
)

// Classify reports what kind of failure err represents.
//
// Errors already returned by Send map back to their kind. Raw transport
// errors are sorted into timeouts, connection failures and everything else;
// a timeout always wins over a connection failure.
func Classify(err error) models.FailureKind {
	switch {
	case err == nil:
		return models.FailureNone
	case errors.Is(err, ErrUpstreamTimeout):
		return models.FailureTimeout
	case errors.Is(err, ErrUpstreamUnavailable):
		return models.FailureUnavailable
	case errors.Is(err, ErrUnexpected):
		return models.FailureUnexpected
	case isTimeout(err):
		return models.FailureTimeout
	case isConnectionError(err):
		return models.FailureConnection
	default:
		return models.FailureUnexpected
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// the peer closed the connection before sending a response
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}
