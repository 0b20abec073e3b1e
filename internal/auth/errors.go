// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrMalformedEdgeKey = errors.New("edge key must be in name:token form")
	ErrDuplicateEdgeKey = errors.New("edge key token is assigned to more than one owner")
	ErrNoEdgeKeys       = errors.New("no edge keys configured")
)
