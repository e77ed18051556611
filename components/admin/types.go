// Package admin implements the CMS console: paginated customer/order list
// views, the login flow, sessions, and the refund screen.
package admin

import "context"

// Customer is one row of the customers table, already display-shaped by the
// backend (total spent arrives formatted).
type Customer struct {
	ID         string
	Name       string
	Email      string
	Orders     int
	TotalSpent string
	City       string
	HasCard    bool
	LastSeen   string
	LastOrder  string
}

// Order is one row of the orders table.
type Order struct {
	ID                string
	Number            string
	Total             string
	CustomerName      string
	PaymentStatus     string
	FulfillmentStatus string
	DeliveryType      string
	PlacedAt          string
}

// DefaultPageSize is the fixed page size for admin list endpoints.
const DefaultPageSize = 10

// ListQuery is the server-side filter for paginated admin endpoints.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize fills the defaults a handler-supplied query may omit.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	return q
}

// PageInfo mirrors the pagination block admin endpoints return alongside a
// page of records.
type PageInfo struct {
	TotalPages int
	TotalItems int
}

// CustomerDirectory fetches server-filtered customer pages.
type CustomerDirectory interface {
	ListCustomers(ctx context.Context, q ListQuery) ([]Customer, PageInfo, error)
}

// OrderBook fetches server-filtered order pages.
type OrderBook interface {
	ListOrders(ctx context.Context, q ListQuery) ([]Order, PageInfo, error)
}

// Authenticator exchanges credentials for a session at the login endpoint.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (Session, error)
}

// AuthError carries the application-level failure message returned by the
// login endpoint, as opposed to a transport failure.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "admin: login failed: " + e.Message
}
