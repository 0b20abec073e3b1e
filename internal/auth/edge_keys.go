// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// EdgeKeys maps a bearer token to the name of the party that owns it.
type EdgeKeys map[string]string

// ParseEdgeKeys parses a comma-separated list of name:token pairs, e.g.
//
//	stripe:sk_live_abc,github:ghp_xyz
//
// Whitespace around entries is trimmed and empty entries are skipped. The
// token may itself contain ':' since only the first separator counts.
func ParseEdgeKeys(raw string) (EdgeKeys, error) {
	keys := make(EdgeKeys)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		owner, token, found := strings.Cut(entry, ":")
		owner, token = strings.TrimSpace(owner), strings.TrimSpace(token)
		if !found || owner == "" || token == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdgeKey, entry)
		}

		if existing, ok := keys[token]; ok && existing != owner {
			return nil, fmt.Errorf("%w: owners %q and %q", ErrDuplicateEdgeKey, existing, owner)
		}
		keys[token] = owner
	}

	if len(keys) == 0 {
		return nil, ErrNoEdgeKeys
	}

	return keys, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so the key set can be
// decoded straight from the environment.
func (k *EdgeKeys) UnmarshalText(text []byte) error {
	keys, err := ParseEdgeKeys(string(text))
	if err != nil {
		return err
	}

	*k = keys
	return nil
}

// UnmarshalJSON accepts only the name:token string form so that JSON
// configuration goes through the same checks as EDGE_KEYS.
func (k *EdgeKeys) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: edge_keys must be a \"name:token,...\" string", ErrMalformedEdgeKey)
	}

	return k.UnmarshalText([]byte(raw))
}

// Check reports entries with an empty token or owner. Sets built by
// [ParseEdgeKeys] always pass.
func (k EdgeKeys) Check() error {
	var errs []error
	for token, owner := range k {
		if strings.TrimSpace(token) == "" || strings.TrimSpace(owner) == "" {
			errs = append(errs, fmt.Errorf("%w: owner %q", ErrMalformedEdgeKey, owner))
		}
	}

	return errors.Join(errs...)
}

// Validate returns the owner of the bearer token carried by the Authorization
// header values.
func (k EdgeKeys) Validate(headerValues []string) (string, bool) {
	token, ok := ParseBearer(headerValues)
	if !ok {
		return "", false
	}

	owner, ok := k[token]
	return owner, ok
}

// Owners returns the distinct owner names in sorted order.
func (k EdgeKeys) Owners() []string {
	owners := make([]string, 0, len(k))
	for _, owner := range k {
		if !slices.Contains(owners, owner) {
			owners = append(owners, owner)
		}
	}
	slices.Sort(owners)

	return owners
}
