// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-webhook-relay/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().SetContext(ctx).SetBody(body).Post(url)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance for outbound
// relay calls.
//
// resty's own retry machinery is disabled: the caller decides when a request
// is retried. Redirects are not followed so that upstream 3xx responses are
// relayed to the caller untouched. GET requests carry their body like any
// other method. resty's internal diagnostics are written through log.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetAllowGetMethodPayload(true).
		SetRedirectPolicy(keepRedirectResponse).
		SetLogger(logger.Resty(log))

	return &HTTPClient{Client: client}
}

// keepRedirectResponse hands the first 3xx response back to the caller
// instead of following it.
var keepRedirectResponse = resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
})
