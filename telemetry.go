package cardcrypto

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the engine's tracer and meter.
const instrumentationName = "github.com/rbaliyan/card-crypto"

// initTelemetry wires the engine's tracer and outcome counter. Only call
// counts, failure categories, and field lengths are recorded; payload and
// key bytes never reach telemetry.
func (e *Engine) initTelemetry(tp trace.TracerProvider, mp metric.MeterProvider) error {
	e.tracer = tp.Tracer(instrumentationName)

	var err error
	e.encryptions, err = mp.Meter(instrumentationName).Int64Counter(
		"cardcrypto.encryptions",
		metric.WithDescription("Card number encryption attempts, by outcome category."),
	)
	if err != nil {
		return fmt.Errorf("cardcrypto: failed to create encryption counter: %w", err)
	}
	return nil
}

// recordOutcome closes out one Encrypt call on the span and counter.
func (e *Engine) recordOutcome(ctx context.Context, span trace.Span, err error) {
	category := CategoryOf(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(category))
		e.log.WithField("category", category).WithError(err).Error("encryption failed")
	} else {
		span.SetStatus(codes.Ok, "")
	}

	e.encryptions.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("success", err == nil),
		attribute.String("category", string(category)),
	))
}
