// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import (
	"net/http"
	"time"
)

const (
	DefaultMethod      = http.MethodPost
	DefaultTimeout     = 30 * time.Second
	DefaultContentType = "application/json"
)

// Target is where and how a body is sent.
type Target struct {
	// Name identifies the target in logs and metrics.
	Name string

	URL     string
	Method  string
	Timeout time.Duration

	// Token is sent as "Authorization: Bearer <Token>".
	Token string

	// AuthEnv names an environment variable read at send time. When set it
	// takes precedence over Token.
	AuthEnv string
}

func (t Target) method() string {
	if t.Method == "" {
		return DefaultMethod
	}
	return t.Method
}

func (t Target) timeout() time.Duration {
	if t.Timeout <= 0 {
		return DefaultTimeout
	}
	return t.Timeout
}

// Response is the upstream answer, relayed verbatim.
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
}
