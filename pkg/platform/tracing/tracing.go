// Package tracing holds the span helpers shared by services.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "benefitd/pkg/domain-errors"
)

// Start opens a span named "<module>.<operation>" on the module's tracer.
func Start(ctx context.Context, module, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("benefitd/"+module).Start(ctx, module+"."+operation, trace.WithAttributes(attrs...))
}

// End records err on the span and closes it. Only internal errors mark the
// span as failed; rejected calls are expected outcomes and are tagged instead.
func End(span trace.Span, err error) {
	if err != nil {
		code := dErrors.CodeOf(err)
		span.SetAttributes(attribute.String("error.code", string(code)))
		if code == dErrors.CodeInternal {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
