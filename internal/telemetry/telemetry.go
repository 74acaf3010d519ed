// Package telemetry provides OpenTelemetry tracing for example runs.
package telemetry

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "runex"

// Config holds the configuration for telemetry
type Config struct {
	Enabled        bool
	Endpoint       string // OTLP/HTTP collector endpoint, host:port
	ServiceVersion string
}

// Provider manages the tracing pipeline. A disabled provider is inert: no
// exporter is constructed and every span it starts is a no-op
type Provider struct {
	enabled        bool
	tracerProvider *sdktrace.TracerProvider
	tracer         trace.Tracer
}

// NewProvider creates a new telemetry provider
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	if !config.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(serviceName)}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(config.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(config.ServiceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	log.Printf("[telemetry] exporting traces to %s", config.Endpoint)

	return &Provider{
		enabled:        true,
		tracerProvider: tracerProvider,
		tracer:         tracerProvider.Tracer(serviceName),
	}, nil
}

// StartRun opens the root span covering one full run. The returned function
// ends the span
func (p *Provider) StartRun(ctx context.Context, runID string, exampleCount int) (context.Context, func()) {
	ctx, span := p.tracer.Start(ctx, "runex.run", trace.WithAttributes(
		attribute.String("runex.run_id", runID),
		attribute.Int("runex.example_count", exampleCount),
	))
	return ctx, func() { span.End() }
}

// StartInvocation opens a span covering one example invocation. The returned
// function records the outcome and ends the span
func (p *Provider) StartInvocation(ctx context.Context, name string) (context.Context, func(exitCode int, err error)) {
	ctx, span := p.tracer.Start(ctx, "runex.invoke", trace.WithAttributes(
		attribute.String("runex.example", name),
	))
	return ctx, func(exitCode int, err error) {
		span.SetAttributes(attribute.Int("runex.exit_code", exitCode))
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case exitCode != 0:
			span.SetStatus(codes.Error, fmt.Sprintf("exit status %d", exitCode))
		default:
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// Shutdown flushes buffered spans and stops the tracing pipeline
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	return p.tracerProvider.Shutdown(ctx)
}

// NewRunID generates a unique identifier for one runner invocation
func NewRunID() string {
	return uuid.New().String()
}
