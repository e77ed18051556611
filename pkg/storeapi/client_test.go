package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
)

func TestHTTPClientFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"ProductID": 7, "ProductName": "HP EliteBook 840 G5", "ProductPrice": 130000, "ProductCategory": "Laptop", "ProductBrand": "HP"},
				{"ProductID": 8, "ProductName": "Dell S2421H", "ProductCategory": "LCD", "ProductBrand": "Dell"}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("fetch products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ID != "7" || products[0].Price != "PKR 130,000" {
		t.Fatalf("unexpected first product: %#v", products[0])
	}
	if products[0].Specs != catalog.DefaultSpecs || products[0].Image != catalog.DefaultImage {
		t.Fatalf("display defaults not applied: %#v", products[0])
	}
	if products[1].Price != "" {
		t.Fatalf("missing price must stay empty, got %q", products[1].Price)
	}
}

func TestHTTPClientListCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cms/customers" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "10" || q.Get("search") != "ali" {
			t.Fatalf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"customers": [{"id": 11, "name": "Ali Raza", "email": "ali@certifurb.com", "orders": 4, "totalSpent": "PKR 210,000", "hasCard": true, "lastOrderDate": "2024-05-01"}],
				"pagination": {"totalPages": 4, "totalItems": 34}
			}
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	customers, info, err := client.ListCustomers(context.Background(), admin.ListQuery{Page: 2, Search: "ali"})
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != "11" || customers[0].LastOrder != "2024-05-01" {
		t.Fatalf("unexpected customers: %#v", customers)
	}
	if info != (admin.PageInfo{TotalPages: 4, TotalItems: 34}) {
		t.Fatalf("unexpected page info: %+v", info)
	}
}

func TestHTTPClientListOrdersStatusShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"orders": [
					{"id": 1, "orderNumber": "#1001", "total": "PKR 95,000", "customer": {"name": "Sana"}, "paymentStatus": {"text": "PAID"}, "fulfillmentStatus": {"text": "ORDER FULFILLED"}, "deliveryType": "Cash on delivery", "date": "2024-05-02"},
					{"id": 2, "orderNumber": "#1002", "total": "PKR 40,000", "customer": {"name": "Omar"}, "paymentStatus": "PENDING", "fulfillmentStatus": "READY TO PICKUP", "deliveryType": "Free shipping", "date": "2024-05-03"}
				],
				"pagination": {"totalPages": 1, "totalItems": 2}
			}
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	orders, _, err := client.ListOrders(context.Background(), admin.ListQuery{})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if orders[0].PaymentStatus != "PAID" || orders[0].CustomerName != "Sana" {
		t.Fatalf("object-shaped status not decoded: %#v", orders[0])
	}
	if orders[1].PaymentStatus != "PENDING" || orders[1].FulfillmentStatus != "READY TO PICKUP" {
		t.Fatalf("string-shaped status not decoded: %#v", orders[1])
	}
}

func TestHTTPClientLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cms/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if req.Password != "secret" {
			_, _ = w.Write([]byte(`{"success": false, "message": "Invalid email or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "data": {"email": "admin@certifurb.com", "name": "Admin", "role": "admin"}}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	session, err := client.Login(context.Background(), "admin@certifurb.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Role != "admin" {
		t.Fatalf("unexpected session: %#v", session)
	}

	_, err = client.Login(context.Background(), "admin@certifurb.com", "wrong")
	var authErr *admin.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "Invalid email or password" {
		t.Fatalf("unexpected message %q", authErr.Message)
	}
}

func TestHTTPClientFetchUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cms/users" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		// The users endpoint answers {data: [...]} with no success flag.
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "email": "admin@certifurb.com", "name": "Admin", "role": "admin"},
				{"id": 2, "email": "sales@certifurb.com", "name": "Sales", "role": "sales"}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	users, err := client.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "1" || users[0].Role != "admin" {
		t.Fatalf("unexpected first user: %#v", users[0])
	}
}

func TestHTTPClientEnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "Failed to fetch customers"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, _, err = client.ListCustomers(context.Background(), admin.ListQuery{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Failed to fetch customers" {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}

func TestHTTPClientEnvelopeWithoutSuccessOrData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message": "maintenance"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.FetchUsers(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable || apiErr.Message != "maintenance" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestHTTPClientMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!doctype html><html>down for maintenance</html>`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.FetchProducts(context.Background())
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestMockClientPaginatesAndSearches(t *testing.T) {
	customers := make([]admin.Customer, 23)
	for i := range customers {
		customers[i] = admin.Customer{ID: string(rune('a' + i)), Name: "Customer", Email: "c@certifurb.com"}
	}
	customers[3].Name = "Ali Raza"
	client := NewMockClient(MockData{Customers: customers})

	page, info, err := client.ListCustomers(context.Background(), admin.ListQuery{Page: 3})
	if err != nil {
		t.Fatalf("list customers: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("last page = %d rows, want 3", len(page))
	}
	if info.TotalPages != 3 || info.TotalItems != 23 {
		t.Fatalf("unexpected info %+v", info)
	}

	page, info, err = client.ListCustomers(context.Background(), admin.ListQuery{Search: "ali"})
	if err != nil {
		t.Fatalf("search customers: %v", err)
	}
	if len(page) != 1 || page[0].Name != "Ali Raza" {
		t.Fatalf("unexpected search result %#v", page)
	}
	if info.TotalItems != 1 {
		t.Fatalf("unexpected info %+v", info)
	}
}
