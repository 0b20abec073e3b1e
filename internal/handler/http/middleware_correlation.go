// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

// maxCorrelationIDLength bounds caller-supplied identifiers; longer ones are
// replaced with a generated value.
const maxCorrelationIDLength = 128

// withCorrelationID reuses the caller's X-Correlation-ID or generates one,
// echoes it on the response, and attaches it to the request context together
// with a child logger carrying a "correlation_id" field.
func (h *Handler) withCorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := r.Header.Get(utils.CorrelationIDHeader)
		if correlationID == "" || len(correlationID) > maxCorrelationIDLength {
			correlationID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("correlation_id", correlationID)
		})

		ctx := utils.WithCorrelationID(r.Context(), correlationID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(utils.CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r)
	})
}
