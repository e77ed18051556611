package storeapi

import (
	"context"
	"strings"
	"sync"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
)

// MockData seeds deterministic backend responses for tests or local demos.
type MockData struct {
	Products  []catalog.Product
	Customers []admin.Customer
	Orders    []admin.Order
	Users     []dashboard.StoreUser
	Accounts  map[string]MockAccount
}

// MockAccount pairs a password with the session the login endpoint returns.
type MockAccount struct {
	Password string
	Session  admin.Session
}

// MockClient implements the component data-source interfaces from in-memory
// fixtures, paginating and searching the way the backend does.
type MockClient struct {
	mu   sync.RWMutex
	data MockData
}

// NewMockClient builds a mock store client from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	return &MockClient{data: data}
}

var (
	_ catalog.ProductSource   = (*MockClient)(nil)
	_ admin.CustomerDirectory = (*MockClient)(nil)
	_ admin.OrderBook         = (*MockClient)(nil)
	_ admin.Authenticator     = (*MockClient)(nil)
	_ dashboard.UserSource    = (*MockClient)(nil)
)

// SetProducts replaces the product fixtures.
func (c *MockClient) SetProducts(products []catalog.Product) {
	c.mu.Lock()
	c.data.Products = append([]catalog.Product(nil), products...)
	c.mu.Unlock()
}

// FetchProducts returns the product fixtures.
func (c *MockClient) FetchProducts(context.Context) ([]catalog.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]catalog.Product(nil), c.data.Products...), nil
}

// ListCustomers pages through the customer fixtures, matching the search
// term against name and email.
func (c *MockClient) ListCustomers(_ context.Context, q admin.ListQuery) ([]admin.Customer, admin.PageInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	matched := make([]admin.Customer, 0, len(c.data.Customers))
	for _, customer := range c.data.Customers {
		if matchesSearch(q.Search, customer.Name, customer.Email) {
			matched = append(matched, customer)
		}
	}
	page, info := paginate(matched, q)
	return page, info, nil
}

// ListOrders pages through the order fixtures, matching the search term
// against order number and customer name.
func (c *MockClient) ListOrders(_ context.Context, q admin.ListQuery) ([]admin.Order, admin.PageInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	matched := make([]admin.Order, 0, len(c.data.Orders))
	for _, order := range c.data.Orders {
		if matchesSearch(q.Search, order.Number, order.CustomerName) {
			matched = append(matched, order)
		}
	}
	page, info := paginate(matched, q)
	return page, info, nil
}

// Login checks credentials against the account fixtures.
func (c *MockClient) Login(_ context.Context, email, password string) (admin.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	account, ok := c.data.Accounts[strings.ToLower(email)]
	if !ok || account.Password != password {
		return admin.Session{}, &admin.AuthError{Message: "Invalid email or password"}
	}
	return account.Session, nil
}

// FetchUsers returns the user fixtures.
func (c *MockClient) FetchUsers(context.Context) ([]dashboard.StoreUser, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]dashboard.StoreUser(nil), c.data.Users...), nil
}

func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func paginate[T any](rows []T, q admin.ListQuery) ([]T, admin.PageInfo) {
	q = q.Normalize()
	total := len(rows)
	pages := (total + q.Limit - 1) / q.Limit
	start := (q.Page - 1) * q.Limit
	if start >= total {
		return nil, admin.PageInfo{TotalPages: pages, TotalItems: total}
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return append([]T(nil), rows[start:end]...), admin.PageInfo{TotalPages: pages, TotalItems: total}
}
