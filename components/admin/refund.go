package admin

// RefundItem is a product line on the refund screen.
type RefundItem struct {
	ID    int
	Name  string
	Size  string
	Image string
}

// RefundSummary is the cost breakdown panel of the refund screen.
type RefundSummary struct {
	Subtotal string
	Discount string
	Tax      string
	Shipping string
	Total    string
}

// RefundOrder is the refund screen's order detail.
type RefundOrder struct {
	OrderID    string
	CustomerID string
	Items      []RefundItem
	Summary    RefundSummary
	Amount     string
}

// DemoRefund returns the fixture order the refund screen displays. The
// backend has no refund endpoint yet; the screen renders this sample until
// one exists.
func DemoRefund() RefundOrder {
	return RefundOrder{
		OrderID:    "#349",
		CustomerID: "2364847",
		Items: []RefundItem{
			{ID: 1, Name: "Fitbit Sense Advanced Smartwatch with Tools for Heart Health, Stress Management & Skin Temperature Trends...", Size: "42", Image: "/mini-laptop.png"},
			{ID: 2, Name: "2021 Apple 12.9-inch iPad Pro (Wi-Fi, 128GB) - Space Gray", Size: "Pro", Image: "/mini-laptop.png"},
			{ID: 3, Name: "PlayStation 5 DualSense Wireless Controller", Size: "Regular", Image: "/mini-laptop.png"},
			{ID: 4, Name: "Apple MacBook Pro 13 inch-M1-8/256GB-space", Size: "Pro", Image: "/mini-laptop.png"},
			{ID: 5, Name: "Apple iMac 24\" 4K Retina Display M1 8 Core CPU, 7 Core GPU, 256GB SSD, Green (MIV832P/A) 2021", Size: "21\"", Image: "/mini-laptop.png"},
			{ID: 6, Name: "Apple Magic Mouse (Wireless, Rechargable) - Silver", Size: "Regular", Image: "/mini-laptop.png"},
		},
		Summary: RefundSummary{
			Subtotal: "$7,686",
			Discount: "-$59",
			Tax:      "$126.2",
			Shipping: "$30",
			Total:    "$695.20",
		},
		Amount: "$500",
	}
}
