// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/sender_mock.go -package=mock

// Sender delivers a request body to a target.
//
// A nil error means the target produced an HTTP response, whatever its
// status. Errors wrap one of ErrUpstreamTimeout, ErrUpstreamUnavailable or
// ErrUnexpected.
type Sender interface {
	Send(ctx context.Context, target Target, body []byte) (Response, error)
}
