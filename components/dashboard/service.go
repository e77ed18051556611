package dashboard

import (
	"context"
	"errors"
	"fmt"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// ErrForbidden is returned when the session's role may not open the
// dashboard.
var ErrForbidden = errors.New("dashboard: role not permitted")

// Options configures the dashboard service.
type Options struct {
	Metrics   *MetricsFeed
	Charts    *ChartSet
	Products  catalog.ProductSource
	Users     UserSource
	Telemetry telemetry.Telemetry
}

// Service assembles the dashboard page model.
type Service struct {
	metrics   *MetricsFeed
	charts    *ChartSet
	products  catalog.ProductSource
	users     UserSource
	telemetry telemetry.Telemetry
}

// NewService wires the dashboard with safe defaults.
func NewService(opts Options) (*Service, error) {
	if opts.Metrics == nil {
		return nil, fmt.Errorf("dashboard: metrics feed is required")
	}
	charts := opts.Charts
	if charts == nil {
		charts = NewChartSet()
	}
	return &Service{
		metrics:   opts.Metrics,
		charts:    charts,
		products:  opts.Products,
		users:     opts.Users,
		telemetry: telemetry.Normalize(opts.Telemetry),
	}, nil
}

// OverviewCharts carries the rendered chart markup.
type OverviewCharts struct {
	SalesHTML         string
	WeeklyOrdersHTML  string
	PaymentStatusHTML string
	CouponsHTML       string
}

// Overview is the full dashboard page model.
type Overview struct {
	Viewer       admin.Session
	Snapshot     Snapshot
	Series       []TrendPoint
	Charts       OverviewCharts
	UserCount    int
	ProductCount int
	// DataDegraded is set when the user or product fetch failed; the
	// dashboard still renders with the counts it has.
	DataDegraded bool
}

// Overview builds the page model for a session. Roles outside the dashboard
// gate get ErrForbidden. Backend fetch failures degrade the page instead of
// failing it.
func (s *Service) Overview(ctx context.Context, session admin.Session) (Overview, error) {
	if !session.CanViewDashboard() {
		s.telemetry.Record(ctx, "dashboard.overview.denied", map[string]any{
			"role": session.Role,
		})
		return Overview{}, ErrForbidden
	}

	out := Overview{
		Viewer:   session,
		Snapshot: s.metrics.Snapshot(),
		Series:   s.metrics.Series(),
	}

	if s.users != nil {
		users, err := s.users.FetchUsers(ctx)
		if err != nil {
			out.DataDegraded = true
			s.telemetry.Record(ctx, "dashboard.overview.users_error", map[string]any{
				"error": err.Error(),
			})
		} else {
			out.UserCount = len(users)
		}
	}
	if s.products != nil {
		products, err := s.products.FetchProducts(ctx)
		if err != nil {
			out.DataDegraded = true
			s.telemetry.Record(ctx, "dashboard.overview.products_error", map[string]any{
				"error": err.Error(),
			})
		} else {
			out.ProductCount = len(products)
		}
	}

	var err error
	if out.Charts.SalesHTML, err = s.charts.SalesLineChart(out.Series); err != nil {
		return Overview{}, fmt.Errorf("dashboard: render sales chart: %w", err)
	}
	if out.Charts.WeeklyOrdersHTML, err = s.charts.WeeklyOrdersBar(); err != nil {
		return Overview{}, fmt.Errorf("dashboard: render weekly orders chart: %w", err)
	}
	if out.Charts.PaymentStatusHTML, err = s.charts.PaymentStatusPie(); err != nil {
		return Overview{}, fmt.Errorf("dashboard: render payment status chart: %w", err)
	}
	if out.Charts.CouponsHTML, err = s.charts.TopCouponsPie(); err != nil {
		return Overview{}, fmt.Errorf("dashboard: render coupons chart: %w", err)
	}

	s.telemetry.Record(ctx, "dashboard.overview.built", map[string]any{
		"role":     session.Role,
		"users":    out.UserCount,
		"products": out.ProductCount,
	})
	return out, nil
}

// Metrics exposes the live feed for transports.
func (s *Service) Metrics() *MetricsFeed {
	return s.metrics
}
