package catalog

import (
	"strings"

	"github.com/certifurb/go-storefront/pkg/price"
)

// CategoryMonitors is the aggregate category label. Selecting it matches
// products in either of the two underlying monitor categories.
const CategoryMonitors = "Monitors"

var monitorCategories = [...]string{"LCD", "LED"}

// Selection is the active facet state for the category browser. Empty
// category or brand means "match all"; facets combine with AND.
type Selection struct {
	Category string
	Brand    string
	Price    PriceRange
}

// NewSelection returns a selection with no facet set and full price bounds.
func NewSelection() Selection {
	return Selection{Price: NewPriceRange()}
}

// Matches reports whether p satisfies every facet of the selection. A product
// whose price is missing or unparseable never matches. Category comparison is
// case-sensitive, brand comparison is not.
func (s Selection) Matches(p Product) bool {
	v, err := price.Parse(p.Price)
	if err != nil {
		return false
	}
	if !s.Price.Contains(v) {
		return false
	}
	if s.Category != "" && !s.matchesCategory(p.Category) {
		return false
	}
	if s.Brand != "" {
		if p.Brand == "" || !strings.EqualFold(p.Brand, s.Brand) {
			return false
		}
	}
	return true
}

func (s Selection) matchesCategory(category string) bool {
	if s.Category == CategoryMonitors {
		for _, c := range monitorCategories {
			if category == c {
				return true
			}
		}
		return false
	}
	return category == s.Category
}

// Filter returns the products matching s in their original fetch order.
func Filter(products []Product, s Selection) []Product {
	var matched []Product
	for _, p := range products {
		if s.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
