package storeapi

import (
	"encoding/json"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
	"github.com/certifurb/go-storefront/pkg/price"
)

// envelope is the response wrapper the backend endpoints use. Success is a
// pointer because the users endpoint answers {data: [...]} with no success
// flag at all; only an explicit false is a rejection.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type wireProduct struct {
	ProductID         json.Number `json:"ProductID"`
	ProductName       string      `json:"ProductName"`
	ProductDesc       string      `json:"ProductDesc"`
	ProductPrice      *float64    `json:"ProductPrice"`
	ProductImageURL   string      `json:"ProductImageURL"`
	ProductCategory   string      `json:"ProductCategory"`
	ProductBrand      string      `json:"ProductBrand"`
	ProductStorage    string      `json:"ProductStorage"`
	ProductRam        string      `json:"ProductRam"`
	ProductKeyboard   string      `json:"ProductKeyboard"`
	ProductScreenSize string      `json:"ProductScreenSize"`
}

// toProduct maps wire naming onto the catalog type and applies the display
// defaults for fields the backend leaves empty.
func (w wireProduct) toProduct() catalog.Product {
	p := catalog.Product{
		ID:         w.ProductID.String(),
		Name:       w.ProductName,
		Specs:      w.ProductDesc,
		Image:      w.ProductImageURL,
		Category:   w.ProductCategory,
		Brand:      w.ProductBrand,
		Storage:    w.ProductStorage,
		RAM:        w.ProductRam,
		Keyboard:   w.ProductKeyboard,
		ScreenSize: w.ProductScreenSize,
		Discount:   catalog.DefaultDiscount,
	}
	if p.Specs == "" {
		p.Specs = catalog.DefaultSpecs
	}
	if p.Image == "" {
		p.Image = catalog.DefaultImage
	}
	if w.ProductPrice != nil {
		p.Price = price.Format(*w.ProductPrice)
	}
	return p
}

type wirePagination struct {
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

func (w wirePagination) toPageInfo() admin.PageInfo {
	return admin.PageInfo{TotalPages: w.TotalPages, TotalItems: w.TotalItems}
}

type wireCustomer struct {
	ID            json.Number `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Orders        int         `json:"orders"`
	TotalSpent    string      `json:"totalSpent"`
	City          string      `json:"city"`
	HasCard       bool        `json:"hasCard"`
	LastSeen      string      `json:"lastSeen"`
	LastOrderDate string      `json:"lastOrderDate"`
}

func (w wireCustomer) toCustomer() admin.Customer {
	return admin.Customer{
		ID:         w.ID.String(),
		Name:       w.Name,
		Email:      w.Email,
		Orders:     w.Orders,
		TotalSpent: w.TotalSpent,
		City:       w.City,
		HasCard:    w.HasCard,
		LastSeen:   w.LastSeen,
		LastOrder:  w.LastOrderDate,
	}
}

type customerPage struct {
	Customers  []wireCustomer `json:"customers"`
	Pagination wirePagination `json:"pagination"`
}

// wireStatus tolerates statuses sent either as a bare string or as a
// {text, color} object.
type wireStatus struct {
	Text string
}

func (s *wireStatus) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Text = plain
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Text = obj.Text
	return nil
}

type wireOrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type wireOrder struct {
	ID                json.Number       `json:"id"`
	OrderNumber       string            `json:"orderNumber"`
	Total             string            `json:"total"`
	Customer          wireOrderCustomer `json:"customer"`
	PaymentStatus     wireStatus        `json:"paymentStatus"`
	FulfillmentStatus wireStatus        `json:"fulfillmentStatus"`
	DeliveryType      string            `json:"deliveryType"`
	Date              string            `json:"date"`
}

func (w wireOrder) toOrder() admin.Order {
	return admin.Order{
		ID:                w.ID.String(),
		Number:            w.OrderNumber,
		Total:             w.Total,
		CustomerName:      w.Customer.Name,
		PaymentStatus:     w.PaymentStatus.Text,
		FulfillmentStatus: w.FulfillmentStatus.Text,
		DeliveryType:      w.DeliveryType,
		PlacedAt:          w.Date,
	}
}

type orderPage struct {
	Orders     []wireOrder    `json:"orders"`
	Pagination wirePagination `json:"pagination"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type wireSession struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (w wireSession) toSession() admin.Session {
	return admin.Session{Email: w.Email, Name: w.Name, Role: w.Role}
}

type wireUser struct {
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  string      `json:"role"`
}

func (w wireUser) toUser() dashboard.StoreUser {
	return dashboard.StoreUser{ID: w.ID.String(), Email: w.Email, Name: w.Name, Role: w.Role}
}
