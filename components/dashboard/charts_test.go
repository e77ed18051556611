package dashboard

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingCache struct {
	renders int
}

func (c *countingCache) GetOrRender(key string, render func() (string, error)) (string, error) {
	c.renders++
	return render()
}

func testSeries(t *testing.T) []TrendPoint {
	t.Helper()
	return GenerateSeries(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), rand.New(rand.NewSource(3)))
}

func TestSalesLineChart(t *testing.T) {
	set := NewChartSet(WithChartCache(nil))
	series := testSeries(t)

	html, err := set.SalesLineChart(series)
	require.NoError(t, err)
	require.Contains(t, html, "2024-05-30")
	require.Contains(t, html, "Actual")
	require.Contains(t, html, "Projected")
}

func TestSalesLineChartRequiresSeries(t *testing.T) {
	set := NewChartSet()
	_, err := set.SalesLineChart(nil)
	require.Error(t, err)
}

func TestSalesLineChartUsesCache(t *testing.T) {
	cache := NewChartCache(time.Minute)
	set := NewChartSet(WithChartCache(cache))
	series := testSeries(t)

	first, err := set.SalesLineChart(series)
	require.NoError(t, err)
	second, err := set.SalesLineChart(series)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// A regenerated series misses the cache.
	other := GenerateSeries(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), rand.New(rand.NewSource(9)))
	require.NotEqual(t, seriesHash(series), seriesHash(other))
}

func TestFixedCharts(t *testing.T) {
	set := NewChartSet()

	bar, err := set.WeeklyOrdersBar()
	require.NoError(t, err)
	for _, day := range weekdayLabels {
		require.Contains(t, bar, day)
	}

	payments, err := set.PaymentStatusPie()
	require.NoError(t, err)
	require.Contains(t, payments, "Pending Payment")
	require.Contains(t, payments, "52")

	coupons, err := set.TopCouponsPie()
	require.NoError(t, err)
	require.Contains(t, coupons, "Percentage Discount")
	require.Contains(t, coupons, "Fixed Product Discount")
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(10 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "html", nil
	}

	for i := 0; i < 3; i++ {
		html, err := cache.GetOrRender("key", render)
		require.NoError(t, err)
		require.Equal(t, "html", html)
	}
	require.Equal(t, 1, calls)

	time.Sleep(20 * time.Millisecond)
	_, err := cache.GetOrRender("key", render)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestSeriesHashIsStable(t *testing.T) {
	series := testSeries(t)
	require.Equal(t, seriesHash(series), seriesHash(series))
	require.Equal(t, "empty", seriesHash(nil))
	require.False(t, strings.Contains(seriesHash(series), " "))
}
