// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

// rateLimit counts requests per edge key owner and answers 429 once the
// owner's window is exhausted. It must run after auth.
//
// A limiter error lets the request through: an unreachable counter store
// should not take the public endpoint down with it.
func (h *EdgeHandler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		owner, _ := utils.GetCallerFromContext(r.Context())

		allowed, err := h.limiter.Allow(r.Context(), owner)
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("edge_key", owner).Msg("rate limiter failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			h.reject(w, r, ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}
