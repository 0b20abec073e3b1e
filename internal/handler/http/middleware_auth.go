// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

// authenticator maps the raw Authorization header values to the caller's
// identity. The edge passes auth.EdgeKeys.Validate, the router
// auth.IngressKey.Authenticate.
type authenticator func(authorization []string) (string, bool)

// auth rejects requests whose Authorization header does not carry a known
// bearer token with 401, and stores the caller identity in the request
// context under utils.CallerCtxKey otherwise.
func (h *Handler) auth(authenticate authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := authenticate(r.Header.Values("Authorization"))
			if !ok {
				h.reject(w, r, ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithCaller(r.Context(), caller)))
		})
	}
}
