// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// limitBody enforces the body ceiling. A declared Content-Length above the
// ceiling is rejected before anything is read; bodies of unknown length are
// cut off by http.MaxBytesReader and rejected when the handler reads them.
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxBodyBytes <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		if r.ContentLength > h.maxBodyBytes {
			h.reject(w, r, ErrPayloadTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
