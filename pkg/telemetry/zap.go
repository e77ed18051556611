package telemetry

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink forwards telemetry events to a zap logger.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink wraps a zap logger as a telemetry sink.
func NewZapSink(log *zap.Logger) *ZapSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapSink{log: log}
}

// Record logs the event at info level with the payload as fields.
func (s *ZapSink) Record(_ context.Context, event string, payload map[string]any) {
	fields := make([]zap.Field, 0, len(payload))
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	s.log.Info(event, fields...)
}
