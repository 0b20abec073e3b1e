// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/MKhiriev/go-webhook-relay/models"
)

const instrumentationName = "github.com/MKhiriev/go-webhook-relay"

// OTelExporter records relay metrics with OpenTelemetry instruments and
// serves them from a dedicated Prometheus registry.
type OTelExporter struct {
	service       string
	registry      *prometheus.Registry
	meterProvider *sdkmetric.MeterProvider

	attempts   metric.Int64Counter
	duration   metric.Float64Histogram
	rejections metric.Int64Counter
}

// NewOTelExporter creates an exporter whose series are labelled with service.
func NewOTelExporter(service string) (*OTelExporter, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		service:       service,
		registry:      registry,
		meterProvider: meterProvider,
	}

	if err := oe.registerInstruments(meter); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

func (oe *OTelExporter) registerInstruments(meter metric.Meter) error {
	var err error

	oe.attempts, err = meter.Int64Counter(
		"webhook.forward.attempts",
		metric.WithDescription("Outbound forwarding attempts by target and outcome"),
		metric.WithUnit("{attempts}"),
	)
	if err != nil {
		return fmt.Errorf("creating attempts counter: %w", err)
	}

	oe.duration, err = meter.Float64Histogram(
		"webhook.forward.duration",
		metric.WithDescription("Duration of outbound forwarding attempts"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000),
	)
	if err != nil {
		return fmt.Errorf("creating duration histogram: %w", err)
	}

	oe.rejections, err = meter.Int64Counter(
		"webhook.requests.rejected",
		metric.WithDescription("Inbound requests rejected before forwarding"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return fmt.Errorf("creating rejections counter: %w", err)
	}

	return nil
}

// RecordAttempt counts the attempt and records its duration.
func (oe *OTelExporter) RecordAttempt(ctx context.Context, attempt models.OutboundAttempt) {
	attrs := metric.WithAttributes(
		attribute.String("service", oe.service),
		attribute.String("target", attempt.Target),
		attribute.String("outcome", attempt.Outcome()),
		attribute.String("attempt", strconv.Itoa(attempt.Attempt)),
	)

	oe.attempts.Add(ctx, 1, attrs)
	oe.duration.Record(ctx, float64(attempt.Elapsed.Microseconds())/1000, attrs)
}

// RecordRejection counts a request rejected for reason.
func (oe *OTelExporter) RecordRejection(ctx context.Context, reason string) {
	oe.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", oe.service),
		attribute.String("reason", reason),
	))
}

// Handler serves the Prometheus exposition of this exporter's registry.
func (oe *OTelExporter) Handler() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if err := oe.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down meter provider: %w", err)
	}

	return nil
}
