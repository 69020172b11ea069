// Package service walks the associations between questions, replies and
// users on top of the repositories.
//
// A nil entity, such as the result of a Find that matched nothing, has no
// associations: single lookups return nil, lists are empty and counts are 0.
package service

import (
	"context"

	"aaquestions/internal/observability"
)

// tracer starts one span per service call and makes sure the repository
// calls underneath share a correlation id.
type tracer struct {
	service string
	layer   *observability.TraceLayer
}

func newTracer(service string) tracer {
	return tracer{service: service, layer: observability.GetTraceLayer()}
}

func (t tracer) start(ctx context.Context, method string) (context.Context, func(error)) {
	ctx = observability.EnsureCorrelationID(ctx)
	ctx, span := t.layer.TraceServiceToRepository(ctx, t.service, method)
	return ctx, func(err error) {
		observability.RecordSpanError(span, err)
		span.End()
	}
}
