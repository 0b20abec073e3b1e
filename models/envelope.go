// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
)

var (
	// ErrInvalidJSON is returned when the request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMissingEnvelopeFields is returned when the body is not a JSON object
	// or lacks "destination" or "payload".
	ErrMissingEnvelopeFields = errors.New(`request must contain "destination" and "payload" fields`)

	// ErrInvalidDestination is returned when "destination" is present but is
	// not a non-empty string.
	ErrInvalidDestination = errors.New(`"destination" must be a non-empty string`)
)

// WebhookEnvelope is the body both tiers accept:
//
//	{"destination": "billing", "payload": {...}}
//
// Payload is kept as raw bytes so the router can forward it to the
// destination exactly as received.
type WebhookEnvelope struct {
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
}

// ParseEnvelope validates data and extracts the envelope.
//
// Any JSON value is accepted as payload, including null; the key itself must
// be present.
func ParseEnvelope(data []byte) (WebhookEnvelope, error) {
	if !json.Valid(data) {
		return WebhookEnvelope{}, ErrInvalidJSON
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return WebhookEnvelope{}, ErrMissingEnvelopeFields
	}

	rawDestination, hasDestination := fields["destination"]
	payload, hasPayload := fields["payload"]
	if !hasDestination || !hasPayload {
		return WebhookEnvelope{}, ErrMissingEnvelopeFields
	}

	var destination string
	if err := json.Unmarshal(rawDestination, &destination); err != nil || destination == "" {
		return WebhookEnvelope{}, ErrInvalidDestination
	}

	return WebhookEnvelope{
		Destination: destination,
		Payload:     payload,
	}, nil
}
