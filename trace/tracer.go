// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"errors"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	DefaultEndpoint = "http://localhost:9411/api/v2/spans"

	tracerExportTimeout = 10 * time.Second
	// [tracerProviderShutdownTimeout] is longer than [tracerExportTimeout] so
	// in-flight exports can finish before the tracer provider shuts down.
	tracerProviderShutdownTimeout = 15 * time.Second
)

var ErrInvalidSampleRate = errors.New("trace sample rate must be in [0, 1]")

type Config struct {
	Enabled bool `yaml:"enabled"`

	// The fraction of traces to sample.
	SampleRate float64 `yaml:"sample_rate"`

	// Zipkin collector receiving exported spans.
	Endpoint string `yaml:"endpoint"`
}

func (c *Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return ErrInvalidSampleRate
	}
	return nil
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), tracerProviderShutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a tracer exporting spans for [appName] to the configured
// zipkin endpoint, or a no-op tracer when tracing is disabled.
func New(appName string, version string, config *Config) (trace.Tracer, error) {
	if config == nil || !config.Enabled {
		return Noop(appName), nil
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	endpoint := config.Endpoint
	if len(endpoint) == 0 {
		endpoint = DefaultEndpoint
	}
	exporter, err := zipkin.New(endpoint)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(tracerExportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", version),
				semconv.ServiceNameKey.String(appName),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.SampleRate)),
	)
	return &tracer{
		Tracer: tracerProvider.Tracer(appName),
		tp:     tracerProvider,
	}, nil
}
