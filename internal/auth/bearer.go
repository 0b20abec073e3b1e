// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "strings"

const bearerScheme = "bearer"

// ParseBearer extracts the token from the values of the Authorization header.
//
// The header must be present exactly once and look like "Bearer <token>":
// two parts separated by a single space, the scheme compared
// case-insensitively. Anything else yields ok == false.
func ParseBearer(values []string) (string, bool) {
	if len(values) != 1 {
		return "", false
	}

	parts := strings.Split(values[0], " ")
	if len(parts) != 2 {
		return "", false
	}

	if !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
