package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	dashboard "github.com/certifurb/go-storefront/components/dashboard"
)

// RefreshMetricsInput forces a metrics tick outside the regular interval.
type RefreshMetricsInput struct {
	Reason string
}

type metricsTicker interface {
	Tick(ctx context.Context) dashboard.MetricsEvent
}

// RefreshMetricsCommand advances the live metrics once, notifying every
// subscriber the same way a timed tick would.
type RefreshMetricsCommand struct {
	feed      metricsTicker
	telemetry Telemetry
}

// NewRefreshMetricsCommand creates the command.
func NewRefreshMetricsCommand(feed metricsTicker, telemetry Telemetry) *RefreshMetricsCommand {
	return &RefreshMetricsCommand{feed: feed, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RefreshMetricsInput] = (*RefreshMetricsCommand)(nil)

// Execute ticks the feed once.
func (c *RefreshMetricsCommand) Execute(ctx context.Context, msg RefreshMetricsInput) error {
	if c.feed == nil {
		return errors.New("refresh command requires metrics feed")
	}
	event := c.feed.Tick(ctx)
	c.telemetry.Record(ctx, "dashboard.metrics.refresh", map[string]any{
		"reason":         msg.Reason,
		"series_changed": event.SeriesChanged,
	})
	return nil
}
