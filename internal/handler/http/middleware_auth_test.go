// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-webhook-relay/internal/auth"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
)

func TestAuth_StoresCaller(t *testing.T) {
	tests := []struct {
		name         string
		authenticate authenticator
		header       string
		wantStatus   int
		wantCaller   string
	}{
		{
			name:         "edge key owner",
			authenticate: auth.EdgeKeys{"tok-1": "acme", "tok-2": "globex"}.Validate,
			header:       "Bearer tok-2",
			wantStatus:   http.StatusOK,
			wantCaller:   "globex",
		},
		{
			name:         "ingress key",
			authenticate: auth.IngressKey("ingress").Authenticate,
			header:       "Bearer ingress",
			wantStatus:   http.StatusOK,
			wantCaller:   auth.IngressCaller,
		},
		{
			name:         "rejected",
			authenticate: auth.IngressKey("ingress").Authenticate,
			header:       "Bearer other",
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var caller string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				caller, _ = utils.GetCallerFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.Header.Set("Authorization", tt.header)
			rr := httptest.NewRecorder()
			h.auth(tt.authenticate)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCaller, caller)
		})
	}
}
