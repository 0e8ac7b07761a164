package tracing

import (
	"fmt"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GlobalTracer is used across handlers and repos to start spans.
var GlobalTracer = otel.Tracer("gymflow-backend")

// HoneycombSetup wires the OpenTelemetry SDK to export to Honeycomb.
// Exporter endpoint and API key come from the standard OTEL_* /
// HONEYCOMB_* env vars. The returned func flushes and shuts the
// exporter down.
func HoneycombSetup(serviceName string) (shutdown func(), err error) {
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, fmt.Errorf("configure opentelemetry: %w", err)
	}

	return otelShutdown, nil
}

// EndSpanWithErrCheck records err on the span (if any) before ending it.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}
