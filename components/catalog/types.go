package catalog

import "context"

// Product is an immutable snapshot row from the products endpoint. Price is
// the display-formatted string produced by pkg/price; components that need
// the numeric value parse it back through the same codec.
type Product struct {
	ID         string
	Name       string
	Specs      string
	Price      string
	Discount   string
	Image      string
	Category   string
	Brand      string
	Storage    string
	RAM        string
	Keyboard   string
	ScreenSize string
}

// Placeholder values applied at the API boundary when optional fields are
// missing, instead of erroring.
const (
	DefaultSpecs    = "High-quality refurbished product"
	DefaultImage    = "/laptop.png"
	DefaultDiscount = "45% vs. new"
)

// ProductSource fetches the full product snapshot for storefront views.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}
