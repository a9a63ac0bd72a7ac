package portal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/inkwell/metal/env"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracerProvider wraps the OpenTelemetry tracer provider. Provider is nil when
// tracing is disabled.
type TracerProvider struct {
	Provider *sdktrace.TracerProvider
}

func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if !environment.Tracing.Enabled {
		slog.Info("opentelemetry tracing is disabled")

		return &TracerProvider{}, nil
	}

	ctx := context.Background()

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(getEndpointHost(environment.Tracing.Endpoint)),
	}

	if !environment.App.IsProduction() {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", environment.App.Name),
			attribute.String("deployment.environment", environment.App.Type),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	slog.Info("opentelemetry tracing initialised", "endpoint", environment.Tracing.Endpoint)

	return &TracerProvider{Provider: tp}, nil
}

func (tp *TracerProvider) Shutdown() error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown tracer provider: %w", err)
	}

	return nil
}

// Wrap starts a server span for every request handled by handler. With
// tracing disabled the spans go to the global no-op provider.
func (tp *TracerProvider) Wrap(handler http.Handler, service string) http.Handler {
	opts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}

	if tp != nil && tp.Provider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(tp.Provider))
	}

	return otelhttp.NewHandler(handler, service, opts...)
}

// getEndpointHost reduces "http://localhost:4318" to "localhost:4318".
func getEndpointHost(endpoint string) string {
	parsed, err := url.Parse(endpoint)

	if err != nil || parsed.Host == "" {
		return endpoint
	}

	return parsed.Host
}
