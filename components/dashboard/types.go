// Package dashboard drives the CMS sales dashboard: live metrics, the
// 30-day trend series, and the server-rendered charts.
package dashboard

import "context"

// StoreUser is a backend CMS account as listed by the users endpoint.
type StoreUser struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// UserSource fetches the CMS user list.
type UserSource interface {
	FetchUsers(ctx context.Context) ([]StoreUser, error)
}

// Snapshot is the headline metric block at the top of the dashboard.
type Snapshot struct {
	TotalOrders     int     `json:"total_orders"`
	NewCustomers    int     `json:"new_customers"`
	OrdersChange    float64 `json:"orders_change"`
	CustomersChange float64 `json:"customers_change"`
	NewOrders       int     `json:"new_orders"`
	OrdersOnHold    int     `json:"orders_on_hold"`
	OutOfStock      int     `json:"out_of_stock"`
}

// TrendPoint is one day of the 30-day trend series.
type TrendPoint struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Customers float64 `json:"customers"`
	Orders    float64 `json:"orders"`
}

// MetricsEvent is published to subscribers on every tick.
type MetricsEvent struct {
	Snapshot      Snapshot     `json:"snapshot"`
	Series        []TrendPoint `json:"series"`
	SeriesChanged bool         `json:"series_changed"`
}

// MetricsHook receives tick notifications. Hooks must not block.
type MetricsHook interface {
	MetricsUpdated(ctx context.Context, event MetricsEvent) error
}
