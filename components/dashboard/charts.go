package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

// projectedFactor scales the actual sales line into the dashed projection.
const projectedFactor = 0.8

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
var weeklyOrderCounts = []float64{20, 35, 45, 30, 55, 40, 60}

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartSet renders the dashboard's charts server-side with go-echarts.
type ChartSet struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// ChartSetOption customizes chart rendering.
type ChartSetOption func(*ChartSet)

// WithChartCache injects a render cache.
func WithChartCache(cache RenderCache) ChartSetOption {
	return func(c *ChartSet) {
		c.cache = cache
	}
}

// WithChartTheme sets the echarts theme (defaults to Westeros).
func WithChartTheme(theme string) ChartSetOption {
	return func(c *ChartSet) {
		c.theme = theme
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) ChartSetOption {
	return func(c *ChartSet) {
		c.assetsHost = host
	}
}

// NewChartSet builds the chart renderer.
func NewChartSet(options ...ChartSetOption) *ChartSet {
	c := &ChartSet{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// SalesLineChart plots the 30-day sales trend with a projected line at 80%
// of actuals.
func (c *ChartSet) SalesLineChart(series []TrendPoint) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("dashboard: sales chart requires a series")
	}
	render := func() (string, error) {
		line := charts.NewLine()
		line.SetGlobalOptions(c.globalChartOptions("Sales over time", "Last 30 days")...)

		dates := make([]string, len(series))
		actual := make([]opts.LineData, len(series))
		projected := make([]opts.LineData, len(series))
		for i, point := range series {
			dates[i] = point.Date
			actual[i] = opts.LineData{Value: point.Sales}
			projected[i] = opts.LineData{Value: point.Sales * projectedFactor}
		}
		line.SetXAxis(dates)
		line.AddSeries("Actual", actual)
		line.AddSeries("Projected", projected)
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	}
	if c.cache != nil {
		return c.cache.GetOrRender("sales:"+seriesHash(series), render)
	}
	return render()
}

// WeeklyOrdersBar renders the fixed Mon through Sun order counts.
func (c *ChartSet) WeeklyOrdersBar() (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(c.globalChartOptions("Orders this week", "")...)
	bar.SetXAxis(weekdayLabels)
	data := make([]opts.BarData, len(weeklyOrderCounts))
	for i, v := range weeklyOrderCounts {
		data[i] = opts.BarData{Value: v}
	}
	bar.AddSeries("Orders", data)
	return renderChart(bar)
}

// PaymentStatusPie renders the completed versus pending payment split.
func (c *ChartSet) PaymentStatusPie() (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(c.globalChartOptions("Payment status", "")...)
	pie.AddSeries("Payments", []opts.PieData{
		{Name: "Completed", Value: 52},
		{Name: "Pending Payment", Value: 48},
	})
	return renderChart(pie)
}

// TopCouponsPie renders the coupon type breakdown.
func (c *ChartSet) TopCouponsPie() (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(c.globalChartOptions("Top coupons", "")...)
	pie.AddSeries("Coupons", []opts.PieData{
		{Name: "Percentage Discount", Value: 72},
		{Name: "Fixed Cart Discount", Value: 18},
		{Name: "Fixed Product Discount", Value: 10},
	})
	return renderChart(pie)
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *ChartSet) globalChartOptions(title, subtitle string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  c.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if c.assetsHost != "" {
		initOpts.AssetsHost = c.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}
