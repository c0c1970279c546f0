package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracing holds the tracer provider exporting spans to Jaeger.
type Tracing struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracing installs a Jaeger-backed tracer provider. An empty endpoint
// falls back to the exporter's default collector URL.
func NewTracing(serviceName, endpoint string) *Tracing {
	opts := []jaeger.CollectorEndpointOption{}
	if endpoint != "" {
		opts = append(opts, jaeger.WithEndpoint(endpoint))
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(opts...))
	if err != nil {
		log.Printf("Failed to create Jaeger exporter: %v", err)
		return &Tracing{}
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return &Tracing{
		provider: provider,
		tracer:   provider.Tracer(serviceName),
	}
}

// StartSpan opens a server span for one request; the caller must End it.
func (t *Tracing) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if t.tracer == nil {
		return trace.NewNoopTracerProvider().Tracer("").Start(ctx, name)
	}
	return t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindServer))
}

func (t *Tracing) Shutdown() {
	if t.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		t.provider.Shutdown(ctx)
	}
}
