package ports

import "context"

// Span names and attributes shared by the scheduler and the telemetry adapters.
const (
	SpanSubmit = "submit"
	SpanWait   = "wait"

	AttrPlatform   = "dispatch.platform"
	AttrBuildID    = "dispatch.build_id"
	AttrProjectDir = "dispatch.project_dir"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
