// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import "errors"

var (
	ErrUpstreamTimeout     = errors.New("upstream did not respond in time")
	ErrUpstreamUnavailable = errors.New("upstream unreachable after retry")
	ErrUnexpected          = errors.New("unexpected upstream error")
)
