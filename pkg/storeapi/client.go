// Package storeapi is the typed REST client for the Certifurb backend. It
// implements the data-source interfaces the catalog, admin, and dashboard
// components declare.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
)

// APIError is an application-level rejection: the backend answered but
// reported failure in its response envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("storeapi: remote error %d: %s", e.Status, e.Message)
	}
	return "storeapi: remote error: " + e.Message
}

// ParseError marks a response body the client could not decode.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("storeapi: decode %s response: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// HTTPConfig configures the HTTP store client.
type HTTPConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// HTTPClient talks to the backend REST API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a client for a live backend.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("storeapi: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{baseURL: cfg.BaseURL, client: httpClient}, nil
}

var (
	_ catalog.ProductSource   = (*HTTPClient)(nil)
	_ admin.CustomerDirectory = (*HTTPClient)(nil)
	_ admin.OrderBook         = (*HTTPClient)(nil)
	_ admin.Authenticator     = (*HTTPClient)(nil)
	_ dashboard.UserSource    = (*HTTPClient)(nil)
)

// FetchProducts implements catalog.ProductSource via GET /api/products.
func (c *HTTPClient) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &wire); err != nil {
		return nil, err
	}
	products := make([]catalog.Product, len(wire))
	for i, w := range wire {
		products[i] = w.toProduct()
	}
	return products, nil
}

// ListCustomers implements admin.CustomerDirectory via GET /api/cms/customers.
func (c *HTTPClient) ListCustomers(ctx context.Context, q admin.ListQuery) ([]admin.Customer, admin.PageInfo, error) {
	var page customerPage
	if err := c.do(ctx, http.MethodGet, "/api/cms/customers?"+listParams(q), nil, &page); err != nil {
		return nil, admin.PageInfo{}, err
	}
	customers := make([]admin.Customer, len(page.Customers))
	for i, w := range page.Customers {
		customers[i] = w.toCustomer()
	}
	return customers, page.Pagination.toPageInfo(), nil
}

// ListOrders implements admin.OrderBook via GET /api/cms/orders.
func (c *HTTPClient) ListOrders(ctx context.Context, q admin.ListQuery) ([]admin.Order, admin.PageInfo, error) {
	var page orderPage
	if err := c.do(ctx, http.MethodGet, "/api/cms/orders?"+listParams(q), nil, &page); err != nil {
		return nil, admin.PageInfo{}, err
	}
	orders := make([]admin.Order, len(page.Orders))
	for i, w := range page.Orders {
		orders[i] = w.toOrder()
	}
	return orders, page.Pagination.toPageInfo(), nil
}

// Login implements admin.Authenticator via POST /api/cms/login. An envelope
// rejection surfaces as *admin.AuthError so the login form can show the
// backend's own message.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (admin.Session, error) {
	var wire wireSession
	err := c.do(ctx, http.MethodPost, "/api/cms/login", loginRequest{Email: email, Password: password}, &wire)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return admin.Session{}, &admin.AuthError{Message: apiErr.Message}
		}
		return admin.Session{}, err
	}
	return wire.toSession(), nil
}

// FetchUsers implements dashboard.UserSource via GET /api/cms/users.
func (c *HTTPClient) FetchUsers(ctx context.Context) ([]dashboard.StoreUser, error) {
	var wire []wireUser
	if err := c.do(ctx, http.MethodGet, "/api/cms/users", nil, &wire); err != nil {
		return nil, err
	}
	users := make([]dashboard.StoreUser, len(wire))
	for i, w := range wire {
		users[i] = w.toUser()
	}
	return users, nil
}

func listParams(q admin.ListQuery) string {
	q = q.Normalize()
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	return params.Encode()
}

// do issues one request and unwraps the backend's response envelope into
// target. Envelope failures come back as *APIError, undecodable bodies as
// *ParseError.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any, target any) error {
	var reqBody *bytes.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("storeapi: encode payload: %w", err)
		}
		reqBody = bytes.NewReader(body)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("storeapi: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("storeapi: http request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &ParseError{Path: path, Err: err}
	}
	rejected := env.Success != nil && !*env.Success
	if env.Success == nil && len(env.Data) == 0 {
		rejected = true
	}
	if rejected {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
