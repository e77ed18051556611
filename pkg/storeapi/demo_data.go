package storeapi

import (
	"fmt"

	admin "github.com/certifurb/go-storefront/components/admin"
	catalog "github.com/certifurb/go-storefront/components/catalog"
	dashboard "github.com/certifurb/go-storefront/components/dashboard"
)

// DemoData returns the fixture set used by the offline demo backend: a
// small product snapshot spanning every storefront category plus the sample
// customer and order rows the console renders when no backend is reachable.
func DemoData() MockData {
	products := []catalog.Product{
		{
			ID:       "1",
			Name:     "HP EliteBook 840 G5",
			Specs:    "Core i5 8th Gen, 8GB RAM, 256GB SSD",
			Price:    "PKR 130,000",
			Category: "Laptop",
			Brand:    "HP",
			Storage:  "256GB",
			RAM:      "8GB",
		},
		{
			ID:       "2",
			Name:     "Dell Latitude 7490",
			Specs:    "Core i7 8th Gen, 16GB RAM, 512GB SSD",
			Price:    "PKR 165,000",
			Category: "Laptop",
			Brand:    "Dell",
			Storage:  "512GB",
			RAM:      "16GB",
		},
		{
			ID:       "3",
			Name:     "Lenovo ThinkPad T480",
			Specs:    "Core i5 8th Gen, 8GB RAM, 256GB SSD",
			Price:    "PKR 118,000",
			Category: "Laptop",
			Brand:    "Lenovo",
			Storage:  "256GB",
			RAM:      "8GB",
		},
		{
			ID:       "4",
			Name:     "Dell S2421H 24\" Monitor",
			Specs:    "1080p IPS, 75Hz",
			Price:    "PKR 42,000",
			Category: "LCD",
			Brand:    "Dell",
		},
		{
			ID:       "5",
			Name:     "Samsung 27\" LED Monitor",
			Specs:    "1080p VA, 60Hz",
			Price:    "PKR 48,500",
			Category: "LED",
			Brand:    "Samsung",
		},
		{
			ID:       "6",
			Name:     "Apple MacBook Air M1",
			Specs:    "Apple M1, 8GB RAM, 256GB SSD",
			Price:    "PKR 210,000",
			Category: "GOAT Product",
			Brand:    "Apple",
			Storage:  "256GB",
			RAM:      "8GB",
		},
		{
			ID:       "7",
			Name:     "HP EliteDesk 800 G4",
			Specs:    "Core i5 8th Gen, 8GB RAM, 500GB HDD",
			Price:    "PKR 65,000",
			Category: "Desktop PC",
			Brand:    "HP",
			Storage:  "500GB",
			RAM:      "8GB",
		},
		{
			ID:       "8",
			Name:     "Logitech MX Keys",
			Specs:    "Wireless keyboard, backlit",
			Price:    "PKR 28,000",
			Category: "Accessories",
			Brand:    "Logitech",
		},
	}

	customers := []admin.Customer{
		{ID: "1", Name: "Carry Anna", Email: "annac34@gmail.com", Orders: 89, TotalSpent: "$23,987", City: "Budapest", HasCard: true, LastSeen: "34 min ago", LastOrder: "Dec 12, 12:56 PM"},
		{ID: "2", Name: "Mitind Mikuja", Email: "mimiku@yahoo.com", Orders: 76, TotalSpent: "$21,567", City: "Manchester", HasCard: false, LastSeen: "6 hours ago", LastOrder: "Dec 9, 2:28 PM"},
		{ID: "3", Name: "Stanly Drinkwater", Email: "stnlwasser@hotmail.com", Orders: 69, TotalSpent: "$19,872", City: "Smallville", HasCard: true, LastSeen: "43 min ago", LastOrder: "Dec 4, 12:56 PM"},
		{ID: "4", Name: "Josef Stravinsky", Email: "Josefsky@sni.it", Orders: 67, TotalSpent: "$17,996", City: "Metropolis", HasCard: false, LastSeen: "2 hours ago", LastOrder: "Dec 1, 4:07 AM"},
		{ID: "5", Name: "Igor Borvibson", Email: "vibigorr@technext.it", Orders: 61, TotalSpent: "$16,785", City: "Central city", HasCard: true, LastSeen: "5 days ago", LastOrder: "Nov 28, 7:28 PM"},
	}

	orders := []admin.Order{
		{ID: "1", Number: "#2453", Total: "$87", CustomerName: "Carry Anna", PaymentStatus: "PAID", FulfillmentStatus: "ORDER FULFILLED", DeliveryType: "Cash on delivery", PlacedAt: "Dec 12, 12:56 PM"},
		{ID: "2", Number: "#2452", Total: "$7,264", CustomerName: "Mitind Mikuja", PaymentStatus: "CANCELLED", FulfillmentStatus: "READY TO PICKUP", DeliveryType: "Free shipping", PlacedAt: "Dec 9, 2:28 PM"},
		{ID: "3", Number: "#2451", Total: "$375", CustomerName: "Stanly Drinkwater", PaymentStatus: "PENDING", FulfillmentStatus: "PARTIAL FULFILLED", DeliveryType: "Local pickup", PlacedAt: "Dec 4, 12:56 PM"},
		{ID: "4", Number: "#2450", Total: "$657", CustomerName: "Josef Stravinsky", PaymentStatus: "CANCELLED", FulfillmentStatus: "ORDER CANCELLED", DeliveryType: "Standard shipping", PlacedAt: "Dec 1, 4:07 AM"},
		{ID: "5", Number: "#2449", Total: "$9,562", CustomerName: "Igor Borvibson", PaymentStatus: "FAILED", FulfillmentStatus: "ORDER FULFILLED", DeliveryType: "Express", PlacedAt: "Nov 28, 7:28 PM"},
	}

	users := make([]dashboard.StoreUser, 0, len(customers))
	for i, c := range customers {
		users = append(users, dashboard.StoreUser{
			ID:    fmt.Sprintf("u-%d", i+1),
			Email: c.Email,
			Name:  c.Name,
			Role:  "customer",
		})
	}

	return MockData{
		Products:  products,
		Customers: customers,
		Orders:    orders,
		Users:     users,
		Accounts: map[string]MockAccount{
			"admin@certifurb.com": {
				Password: "admin123",
				Session:  admin.Session{Email: "admin@certifurb.com", Name: "Demo Admin", Role: admin.RoleAdmin},
			},
			"sales@certifurb.com": {
				Password: "sales123",
				Session:  admin.Session{Email: "sales@certifurb.com", Name: "Demo Sales", Role: admin.RoleSales},
			},
		},
	}
}
