package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// TickInterval is how often the live metrics advance.
const TickInterval = 5 * time.Second

// SeriesDays is the length of the trend series.
const SeriesDays = 30

// seriesRegenThreshold: the series is regenerated on a tick when the draw
// exceeds it, so roughly three ticks in ten.
const seriesRegenThreshold = 0.7

// DefaultSnapshot returns the metric block the dashboard opens with.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		TotalOrders:     16247,
		NewCustomers:    356,
		OrdersChange:    -6.8,
		CustomersChange: 26.5,
		NewOrders:       57,
		OrdersOnHold:    5,
		OutOfStock:      15,
	}
}

// GenerateSeries builds a 30-day trend ending today.
func GenerateSeries(now time.Time, rng *rand.Rand) []TrendPoint {
	series := make([]TrendPoint, SeriesDays)
	for i := range series {
		day := now.AddDate(0, 0, -(SeriesDays - 1 - i))
		series[i] = TrendPoint{
			Date:      day.Format(time.DateOnly),
			Sales:     float64(rng.Intn(5000) + 1000),
			Customers: float64(rng.Intn(100) + 20),
			Orders:    float64(rng.Intn(200) + 50),
		}
	}
	return series
}

// MetricsFeed owns the live dashboard numbers. Run advances them on a fixed
// interval and fans each tick out to the registered hooks.
type MetricsFeed struct {
	interval  time.Duration
	telemetry telemetry.Telemetry

	mu     sync.RWMutex
	rng    *rand.Rand
	snap   Snapshot
	series []TrendPoint
	hooks  []MetricsHook
}

// MetricsFeedOption customizes feed behavior.
type MetricsFeedOption func(*MetricsFeed)

// WithTickInterval overrides the 5 second default.
func WithTickInterval(d time.Duration) MetricsFeedOption {
	return func(f *MetricsFeed) {
		if d > 0 {
			f.interval = d
		}
	}
}

// WithMetricsSeed makes the feed deterministic.
func WithMetricsSeed(seed int64) MetricsFeedOption {
	return func(f *MetricsFeed) {
		f.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetricsTelemetry attaches a telemetry sink.
func WithMetricsTelemetry(t telemetry.Telemetry) MetricsFeedOption {
	return func(f *MetricsFeed) {
		f.telemetry = telemetry.Normalize(t)
	}
}

// NewMetricsFeed seeds the feed with the default snapshot and a fresh
// series.
func NewMetricsFeed(opts ...MetricsFeedOption) *MetricsFeed {
	f := &MetricsFeed{
		interval:  TickInterval,
		telemetry: telemetry.Noop(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		snap:      DefaultSnapshot(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.series = GenerateSeries(time.Now(), f.rng)
	return f
}

// AddHook registers a tick subscriber.
func (f *MetricsFeed) AddHook(hook MetricsHook) {
	if hook == nil {
		return
	}
	f.mu.Lock()
	f.hooks = append(f.hooks, hook)
	f.mu.Unlock()
}

// Snapshot returns the current headline metrics.
func (f *MetricsFeed) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// Series returns a copy of the current trend series.
func (f *MetricsFeed) Series() []TrendPoint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]TrendPoint(nil), f.series...)
}

// Tick advances the metrics one step and notifies hooks.
func (f *MetricsFeed) Tick(ctx context.Context) MetricsEvent {
	f.mu.Lock()
	f.snap.TotalOrders += f.rng.Intn(10)
	f.snap.NewCustomers += f.rng.Intn(3)
	f.snap.NewOrders = f.rng.Intn(20) + 40
	f.snap.OrdersOnHold = f.rng.Intn(10) + 2
	f.snap.OutOfStock = f.rng.Intn(25) + 10

	seriesChanged := f.rng.Float64() > seriesRegenThreshold
	if seriesChanged {
		f.series = GenerateSeries(time.Now(), f.rng)
	}
	event := MetricsEvent{
		Snapshot:      f.snap,
		Series:        append([]TrendPoint(nil), f.series...),
		SeriesChanged: seriesChanged,
	}
	hooks := append([]MetricsHook(nil), f.hooks...)
	f.mu.Unlock()

	for _, hook := range hooks {
		if err := hook.MetricsUpdated(ctx, event); err != nil {
			f.telemetry.Record(ctx, "dashboard.metrics.hook_error", map[string]any{
				"error": err.Error(),
			})
		}
	}
	return event
}

// Run ticks until the context is cancelled.
func (f *MetricsFeed) Run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.Tick(ctx)
		}
	}
}
