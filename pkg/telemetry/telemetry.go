// Package telemetry records component events for observability.
package telemetry

import "context"

// Telemetry records named events with structured payloads.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

// Noop returns a telemetry sink that discards everything.
func Noop() Telemetry { return noopTelemetry{} }

// Normalize substitutes a noop sink for nil so callers never guard.
func Normalize(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}
