// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forwarder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-webhook-relay/internal/logger"
	"github.com/MKhiriev/go-webhook-relay/internal/metrics"
	"github.com/MKhiriev/go-webhook-relay/internal/utils"
	"github.com/MKhiriev/go-webhook-relay/models"
)

// DefaultRetryBackoff is the pause before the single connection retry.
const DefaultRetryBackoff = time.Second

// Forwarder is the resty-backed Sender shared by both tiers.
type Forwarder struct {
	client   *utils.HTTPClient
	recorder metrics.Recorder

	// backoff is the pause before the connection retry.
	backoff time.Duration
	// getenv resolves Target.AuthEnv.
	getenv func(string) string
}

// NewForwarder creates a Forwarder sending through client and reporting every
// attempt to recorder.
func NewForwarder(client *utils.HTTPClient, recorder metrics.Recorder) *Forwarder {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Forwarder{
		client:   client,
		recorder: recorder,
		backoff:  DefaultRetryBackoff,
		getenv:   os.Getenv,
	}
}

// Send delivers body to target.
//
// Each attempt gets its own deadline of target.Timeout. Only a connection
// failure on the first attempt is retried, once, after the backoff. A
// timeout is never retried since the target may already be processing
// the request.
func (f *Forwarder) Send(ctx context.Context, target Target, body []byte) (Response, error) {
	log := logger.FromContext(ctx)
	headers := f.headers(ctx, target)

	log.Info().
		Str("target", target.Name).
		Str("url", target.URL).
		Str("method", target.method()).
		Msg("forwarding request")

	resp, attempt, err := f.attempt(ctx, target, headers, body, 1)
	if err == nil {
		return resp, nil
	}

	switch attempt.Failure {
	case models.FailureTimeout:
		log.Error().
			Err(err).
			Str("target", target.Name).
			Dur("timeout", target.timeout()).
			Int64("duration_ms", attempt.Elapsed.Milliseconds()).
			Msg("upstream timeout")
		return Response{}, fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)

	case models.FailureConnection:
		log.Warn().
			Err(err).
			Str("target", target.Name).
			Str("url", target.URL).
			Int64("duration_ms", attempt.Elapsed.Milliseconds()).
			Msg("upstream connection failed")
		return f.retry(ctx, target, headers, body)

	default:
		log.Error().
			Err(err).
			Str("target", target.Name).
			Str("url", target.URL).
			Int64("duration_ms", attempt.Elapsed.Milliseconds()).
			Msg("unexpected upstream error")
		return Response{}, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
}

func (f *Forwarder) retry(ctx context.Context, target Target, headers map[string]string, body []byte) (Response, error) {
	log := logger.FromContext(ctx)

	timer := time.NewTimer(f.backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Response{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ctx.Err())
	case <-timer.C:
	}

	log.Info().Str("target", target.Name).Msg("retrying upstream connection")

	resp, attempt, err := f.attempt(ctx, target, headers, body, 2)
	if err != nil {
		log.Error().
			Err(err).
			Str("target", target.Name).
			Str("failure", attempt.Failure.String()).
			Int64("duration_ms", attempt.Elapsed.Milliseconds()).
			Msg("retry failed")
		return Response{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	log.Info().
		Str("target", target.Name).
		Int("status_code", resp.StatusCode).
		Msg("retry succeeded")

	return resp, nil
}

// attempt performs one outbound call and reports it to the recorder.
func (f *Forwarder) attempt(
	ctx context.Context,
	target Target,
	headers map[string]string,
	body []byte,
	n int,
) (Response, models.OutboundAttempt, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, target.timeout())
	defer cancel()

	record := models.OutboundAttempt{
		Target:  target.Name,
		Method:  target.method(),
		URL:     target.URL,
		Attempt: n,
	}

	start := time.Now()
	resp, err := f.client.R().
		SetContext(attemptCtx).
		SetHeaders(headers).
		SetBody(body).
		Execute(target.method(), target.URL)
	record.Elapsed = time.Since(start)

	if err != nil {
		record.Failure = Classify(err)
		f.recorder.RecordAttempt(ctx, record)
		return Response{}, record, err
	}

	record.StatusCode = resp.StatusCode()
	f.recorder.RecordAttempt(ctx, record)

	logger.FromContext(ctx).Info().
		Str("target", target.Name).
		Str("method", record.Method).
		Int("status_code", record.StatusCode).
		Int("attempt", n).
		Int64("duration_ms", record.Elapsed.Milliseconds()).
		Msg("upstream responded")

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}

	return Response{
		StatusCode:  resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: contentType,
	}, record, nil
}

func (f *Forwarder) headers(ctx context.Context, target Target) map[string]string {
	headers := map[string]string{
		"Content-Type": DefaultContentType,
	}

	if id, ok := utils.GetCorrelationIDFromContext(ctx); ok {
		headers[utils.CorrelationIDHeader] = id
	}

	token := target.Token
	if target.AuthEnv != "" {
		token = f.getenv(target.AuthEnv)
		if token == "" {
			// TODO: make a missing destination token a startup error once every
			// deployment defines its auth_env variables.
			logger.FromContext(ctx).Warn().
				Str("target", target.Name).
				Str("auth_env", target.AuthEnv).
				Msg("auth token env var not set, sending without Authorization")
		}
	}

	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return headers
}

var _ Sender = (*Forwarder)(nil)
