// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-webhook-relay/internal/forwarder"
	"github.com/MKhiriev/go-webhook-relay/models"
)

// readEnvelope reads the request body and validates it as a webhook
// envelope. The raw body is returned alongside the parsed envelope so the
// edge can relay it byte for byte.
func (h *Handler) readEnvelope(r *http.Request) ([]byte, models.WebhookEnvelope, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, models.WebhookEnvelope{}, ErrPayloadTooLarge
		}
		return nil, models.WebhookEnvelope{}, fmt.Errorf("%w: reading body: %w", models.ErrInvalidJSON, err)
	}

	envelope, err := models.ParseEnvelope(body)
	if err != nil {
		return nil, models.WebhookEnvelope{}, err
	}

	return body, envelope, nil
}

// writeUpstream relays an upstream answer: status, body and content type.
func writeUpstream(w http.ResponseWriter, resp forwarder.Response) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}
