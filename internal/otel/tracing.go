package otel

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"pokedex/internal/config"
	"pokedex/internal/logging"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs the global propagator and, unless tracing is disabled, an OTLP-backed tracer provider.
// Exporter failures degrade to the default no-op provider instead of failing startup.
func Init(ctx context.Context, cfg config.TracingConfig, l *logging.Logger) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if cfg.Disabled {
		l.Info("tracing_configured", logging.Fields{"tracing_enabled": false})
		return noopShutdown, nil
	}

	exporter, err := newExporter(ctx, cfg.Protocol)
	if err != nil {
		l.Error("tracing_init_failed", err, nil)
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
		),
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
	)
	if err != nil {
		// Partial detection (e.g. no user entry in a scratch container) still yields usable attributes.
		if !errors.Is(err, resource.ErrPartialResource) {
			_ = exporter.Shutdown(ctx)
			return nil, fmt.Errorf("failed to create resource: %w", err)
		}
		l.Error("tracing_resource_partial", err, nil)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(newSampler(cfg.Sampler, cfg.SamplerArg)),
	)
	otel.SetTracerProvider(tp)

	l.Info("tracing_configured", logging.Fields{
		"tracing_enabled": true,
		"otlp_protocol":   cfg.Protocol,
		"otlp_endpoint":   cfg.Endpoint,
		"sampler":         cfg.Sampler,
		"sampler_arg":     cfg.SamplerArg,
	})

	return tp.Shutdown, nil
}

// newExporter picks the OTLP transport; endpoints and headers come from the OTEL_* env vars.
func newExporter(ctx context.Context, protocol string) (*otlptrace.Exporter, error) {
	switch protocol {
	case "", "grpc":
		return otlptracegrpc.New(ctx)
	case "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol: %s", protocol)
	}
}

func newSampler(name, arg string) trace.Sampler {
	ratio, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		ratio = 1.0
	}

	switch name {
	case "always_on":
		return trace.AlwaysSample()
	case "always_off":
		return trace.NeverSample()
	case "traceidratio":
		return trace.TraceIDRatioBased(ratio)
	case "parentbased_always_on":
		return trace.ParentBased(trace.AlwaysSample())
	case "parentbased_always_off":
		return trace.ParentBased(trace.NeverSample())
	case "parentbased_traceidratio":
		return trace.ParentBased(trace.TraceIDRatioBased(ratio))
	default:
		return trace.ParentBased(trace.AlwaysSample())
	}
}
