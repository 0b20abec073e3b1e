// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "crypto/subtle"

// IngressCaller is the caller identity recorded for requests that present the
// router ingress key.
const IngressCaller = "edge"

// IngressKey is the shared secret the edge presents to the router.
type IngressKey string

// Validate reports whether the Authorization header values carry exactly this key.
// An empty key never validates.
func (k IngressKey) Validate(headerValues []string) bool {
	if k == "" {
		return false
	}

	token, ok := ParseBearer(headerValues)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(k)) == 1
}

// Authenticate is Validate in the owner-returning form used by the HTTP
// auth middleware.
func (k IngressKey) Authenticate(headerValues []string) (string, bool) {
	if !k.Validate(headerValues) {
		return "", false
	}

	return IngressCaller, true
}

// String masks the key so it never ends up in logs verbatim.
func (k IngressKey) String() string {
	if k == "" {
		return ""
	}

	return "***"
}
